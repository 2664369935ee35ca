package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
	"github.com/you-humble/consultancy-desk/platform/logger"
)

type service struct {
	processor PaymentProcessor
	publisher ResolvedPublisher

	mu    sync.RWMutex
	forms map[uuid.UUID]*Form
}

func NewPaymentService(processor PaymentProcessor, publisher ResolvedPublisher) *service {
	return &service{
		processor: processor,
		publisher: publisher,
		forms:     map[uuid.UUID]*Form{},
	}
}

func (svc *service) Services(_ context.Context) []model.Service {
	return model.Catalogue()
}

func (svc *service) Open(ctx context.Context) (model.FormState, error) {
	form := NewForm(uuid.New(), svc.processor, svc.publisher)

	svc.mu.Lock()
	svc.forms[form.ID()] = form
	open := len(svc.forms)
	svc.mu.Unlock()

	logger.Info(ctx, "payment form opened",
		logger.String("form_id", form.ID().String()),
		logger.Int("open_forms", open),
	)

	return form.State(), nil
}

func (svc *service) State(_ context.Context, id uuid.UUID) (model.FormState, error) {
	const op = "payment.service.State"

	form, err := svc.form(id)
	if err != nil {
		return model.FormState{}, fmt.Errorf("%s: %w", op, err)
	}
	return form.State(), nil
}

// Edit applies edits in order and stops at the first rejected one.
func (svc *service) Edit(ctx context.Context, id uuid.UUID, edits []model.FieldEdit) (model.FormState, error) {
	const op = "payment.service.Edit"

	form, err := svc.form(id)
	if err != nil {
		return model.FormState{}, fmt.Errorf("%s: %w", op, err)
	}

	state := form.State()
	for _, e := range edits {
		state, err = form.Edit(e.Field, e.Value)
		if err != nil {
			logger.Warn(ctx, "payment form edit rejected",
				logger.String("form_id", id.String()),
				logger.String("field", string(e.Field)),
				logger.ErrorF(err),
			)
			return state, fmt.Errorf("%s: %w", op, err)
		}
	}

	return state, nil
}

func (svc *service) Submit(ctx context.Context, id uuid.UUID) (model.FormState, error) {
	const op = "payment.service.Submit"

	form, err := svc.form(id)
	if err != nil {
		return model.FormState{}, fmt.Errorf("%s: %w", op, err)
	}

	state, err := form.Submit(ctx)
	if err != nil {
		return state, fmt.Errorf("%s: %w", op, err)
	}
	return state, nil
}

func (svc *service) Await(ctx context.Context, id uuid.UUID) (model.FormState, error) {
	const op = "payment.service.Await"

	form, err := svc.form(id)
	if err != nil {
		return model.FormState{}, fmt.Errorf("%s: %w", op, err)
	}

	state, err := form.Await(ctx)
	if err != nil {
		return state, fmt.Errorf("%s: %w", op, err)
	}
	return state, nil
}

func (svc *service) Reset(_ context.Context, id uuid.UUID) (model.FormState, error) {
	const op = "payment.service.Reset"

	form, err := svc.form(id)
	if err != nil {
		return model.FormState{}, fmt.Errorf("%s: %w", op, err)
	}

	state, err := form.Reset()
	if err != nil {
		return state, fmt.Errorf("%s: %w", op, err)
	}
	return state, nil
}

func (svc *service) Retry(_ context.Context, id uuid.UUID) (model.FormState, error) {
	const op = "payment.service.Retry"

	form, err := svc.form(id)
	if err != nil {
		return model.FormState{}, fmt.Errorf("%s: %w", op, err)
	}

	state, err := form.Retry()
	if err != nil {
		return state, fmt.Errorf("%s: %w", op, err)
	}
	return state, nil
}

// Close drops the form; nothing about it is kept.
func (svc *service) Close(ctx context.Context, id uuid.UUID) error {
	const op = "payment.service.Close"

	svc.mu.Lock()
	form, ok := svc.forms[id]
	delete(svc.forms, id)
	svc.mu.Unlock()

	if !ok {
		return fmt.Errorf("%s: %w", op, model.ErrFormNotFound)
	}

	form.Close()
	logger.Info(ctx, "payment form closed", logger.String("form_id", id.String()))

	return nil
}

// CloseAll closes every open form. Used on shutdown.
func (svc *service) CloseAll(ctx context.Context) error {
	svc.mu.Lock()
	forms := svc.forms
	svc.forms = map[uuid.UUID]*Form{}
	svc.mu.Unlock()

	for _, form := range forms {
		form.Close()
	}
	logger.Info(ctx, "payment forms closed", logger.Int("count", len(forms)))

	return nil
}

func (svc *service) form(id uuid.UUID) (*Form, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	form, ok := svc.forms[id]
	if !ok {
		return nil, model.ErrFormNotFound
	}
	return form, nil
}
