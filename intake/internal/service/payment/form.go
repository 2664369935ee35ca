package payment

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
	"github.com/you-humble/consultancy-desk/platform/logger"
)

type PaymentProcessor interface {
	Process(ctx context.Context, draft model.PaymentDraft) (bool, error)
}

type ResolvedPublisher interface {
	PublishResolved(ctx context.Context, event model.PaymentResolved) error
}

// Form is one open payment dialog. All of its state is private to the instance.
type Form struct {
	id        uuid.UUID
	processor PaymentProcessor
	publisher ResolvedPublisher
	now       func() time.Time

	mu     sync.Mutex
	draft  model.PaymentDraft
	errs   model.ValidationErrors
	status model.PaymentStatus
	closed bool
	// gen changes whenever an in-flight result must be discarded.
	gen      uint64
	cancel   context.CancelFunc
	inflight chan struct{}
}

func NewForm(id uuid.UUID, processor PaymentProcessor, publisher ResolvedPublisher) *Form {
	return &Form{
		id:        id,
		processor: processor,
		publisher: publisher,
		now:       time.Now,
		errs:      model.ValidationErrors{},
		status:    model.StatusIdle,
	}
}

func (f *Form) ID() uuid.UUID { return f.id }

func (f *Form) State() model.FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

// Edit applies a single keystroke-level change and clears that field's error.
func (f *Form) Edit(field model.Field, value string) (model.FormState, error) {
	const op = "payment.Form.Edit"

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return f.snapshot(), fmt.Errorf("%s: %w", op, model.ErrFormClosed)
	}

	switch field {
	case model.FieldCardNumber:
		value = FormatCardNumber(value)
	case model.FieldServiceCode:
		if _, ok := model.LookupService(model.ServiceCode(value)); value != "" && !ok {
			return f.snapshot(), fmt.Errorf("%s: %w %q", op, model.ErrUnknownService, value)
		}
	}

	if !f.draft.Set(field, value) {
		return f.snapshot(), fmt.Errorf("%s: %w %q", op, model.ErrUnknownField, field)
	}

	if field == model.FieldServiceCode {
		if amount, ok := model.ServiceCode(value).DefaultAmount(); ok {
			f.draft.Amount = amount
		}
	}

	delete(f.errs, field)

	return f.snapshot(), nil
}

// Submit validates the draft and, when it is valid, starts processing in the background.
// The returned state is either the validation failure or the processing state.
func (f *Form) Submit(ctx context.Context) (model.FormState, error) {
	const op = "payment.Form.Submit"
	log := logger.With(logger.String("form_id", f.id.String()))

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return f.snapshot(), fmt.Errorf("%s: %w", op, model.ErrFormClosed)
	}
	switch f.status {
	case model.StatusIdle:
	case model.StatusProcessing:
		return f.snapshot(), fmt.Errorf("%s: %w", op, model.ErrSubmitInProgress)
	default:
		// A resolved form returns to idle through Reset or Retry first.
		return f.snapshot(), fmt.Errorf("%s: %w", op, model.ErrNotIdle)
	}

	f.errs = f.draft.Validate()
	if len(f.errs) > 0 {
		log.Info(ctx, "payment draft rejected", logger.Int("errors", len(f.errs)))
		return f.snapshot(), fmt.Errorf("%s: %w", op, maps.Clone(f.errs))
	}

	// The request that triggered the submit ends long before the processor answers.
	pctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	f.gen++
	f.status = model.StatusProcessing
	f.cancel = cancel
	f.inflight = done

	go f.process(pctx, f.gen, f.draft, done)

	log.Info(ctx, "payment processing started",
		logger.String("service", string(f.draft.Service)),
		logger.String("amount", f.draft.Amount),
	)

	return f.snapshot(), nil
}

func (f *Form) process(ctx context.Context, gen uint64, draft model.PaymentDraft, done chan struct{}) {
	defer close(done)

	log := logger.With(logger.String("form_id", f.id.String()))
	start := time.Now()

	approved, err := f.callProcessor(ctx, draft)

	status := model.StatusSuccess
	switch {
	case err != nil:
		status = model.StatusError
		log.Warn(ctx, "payment processor failed", logger.ErrorF(fmt.Errorf("%w: %w", model.ErrPaymentDeclined, err)))
	case !approved:
		status = model.StatusError
		log.Info(ctx, "payment declined", logger.ErrorF(model.ErrPaymentDeclined))
	}

	f.mu.Lock()
	if f.closed || f.gen != gen {
		f.mu.Unlock()
		log.Info(ctx, "late payment result ignored", logger.String("status", string(status)))
		return
	}
	f.status = status
	f.cancel()
	f.cancel = nil
	f.mu.Unlock()

	log.Info(ctx, "payment resolved",
		logger.String("status", string(status)),
		logger.Duration("dur", time.Since(start)),
	)

	if f.publisher == nil {
		return
	}

	event := model.PaymentResolved{
		EventID:        uuid.New(),
		FormID:         f.id,
		Service:        draft.Service,
		Amount:         draft.AmountValue(),
		Status:         status,
		Email:          draft.Email,
		CardholderName: draft.CardholderName,
		CardLast4:      draft.CardLast4(),
		ResolvedAt:     f.now().UTC(),
	}
	if err := f.publisher.PublishResolved(context.WithoutCancel(ctx), event); err != nil {
		log.Error(ctx, "publish payment resolved", logger.ErrorF(err))
	}
}

func (f *Form) callProcessor(ctx context.Context, draft model.PaymentDraft) (approved bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			approved, err = false, fmt.Errorf("payment processor panic: %v", r)
		}
	}()
	return f.processor.Process(ctx, draft)
}

// Await blocks until no submission is in flight or ctx is done.
func (f *Form) Await(ctx context.Context) (model.FormState, error) {
	f.mu.Lock()
	done := f.inflight
	f.mu.Unlock()

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			return f.State(), ctx.Err()
		}
	}

	return f.State(), nil
}

// Reset restores an empty draft, clears all errors and returns to idle.
func (f *Form) Reset() (model.FormState, error) {
	const op = "payment.Form.Reset"

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkIdleable(); err != nil {
		return f.snapshot(), fmt.Errorf("%s: %w", op, err)
	}

	f.draft = model.PaymentDraft{}
	f.errs = model.ValidationErrors{}
	f.status = model.StatusIdle

	return f.snapshot(), nil
}

// Retry returns to idle keeping the draft as it was submitted.
func (f *Form) Retry() (model.FormState, error) {
	const op = "payment.Form.Retry"

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkIdleable(); err != nil {
		return f.snapshot(), fmt.Errorf("%s: %w", op, err)
	}

	f.status = model.StatusIdle

	return f.snapshot(), nil
}

func (f *Form) checkIdleable() error {
	if f.closed {
		return model.ErrFormClosed
	}
	if f.status == model.StatusProcessing {
		return model.ErrSubmitInProgress
	}
	return nil
}

// Close cancels an in-flight submission; its result, if any, is discarded.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	f.gen++
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *Form) snapshot() model.FormState {
	return model.FormState{
		ID:           f.id,
		Draft:        f.draft,
		Errors:       maps.Clone(f.errs),
		Status:       f.status,
		StateOptions: model.ParseCountry(f.draft.Billing.Country).States(),
	}
}
