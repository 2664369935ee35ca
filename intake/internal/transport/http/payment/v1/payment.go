package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/you-humble/consultancy-desk/intake/internal/converter"
	"github.com/you-humble/consultancy-desk/intake/internal/model"
	"github.com/you-humble/consultancy-desk/intake/internal/transport/http/dto"
	"github.com/you-humble/consultancy-desk/intake/internal/transport/http/render"
	"github.com/you-humble/consultancy-desk/platform/logger"
)

type PaymentService interface {
	Services(ctx context.Context) []model.Service
	Open(ctx context.Context) (model.FormState, error)
	State(ctx context.Context, id uuid.UUID) (model.FormState, error)
	Edit(ctx context.Context, id uuid.UUID, edits []model.FieldEdit) (model.FormState, error)
	Submit(ctx context.Context, id uuid.UUID) (model.FormState, error)
	Await(ctx context.Context, id uuid.UUID) (model.FormState, error)
	Reset(ctx context.Context, id uuid.UUID) (model.FormState, error)
	Retry(ctx context.Context, id uuid.UUID) (model.FormState, error)
	Close(ctx context.Context, id uuid.UUID) error
}

type handler struct {
	svc          PaymentService
	awaitTimeout time.Duration
}

func NewPaymentHandler(service PaymentService, awaitTimeout time.Duration) *handler {
	return &handler{svc: service, awaitTimeout: awaitTimeout}
}

// Register mounts the catalogue and payment form routes on r.
func (h *handler) Register(r chi.Router) {
	r.Get("/services", h.ListServices)

	r.Route("/payment-forms", func(r chi.Router) {
		r.Post("/", h.OpenForm)
		r.Route("/{formID}", func(r chi.Router) {
			r.Get("/", h.GetForm)
			r.Delete("/", h.CloseForm)
			r.Patch("/fields", h.EditFields)
			r.Post("/submit", h.SubmitForm)
			r.Post("/reset", h.ResetForm)
			r.Post("/retry", h.RetryForm)
		})
	})
}

func (h *handler) ListServices(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, converter.ServicesToDTO(h.svc.Services(r.Context())))
}

func (h *handler) OpenForm(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Open(r.Context())
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, converter.FormStateToDTO(state))
}

func (h *handler) GetForm(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	if !wait {
		state, err := h.svc.State(r.Context(), id)
		if err != nil {
			mapError(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, converter.FormStateToDTO(state))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.awaitTimeout)
	defer cancel()

	// A timed out wait still reports the current state.
	state, err := h.svc.Await(ctx, id)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		mapError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, converter.FormStateToDTO(state))
}

func (h *handler) EditFields(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	var req dto.EditFieldsRequest
	if err := render.Decode(r, &req); err != nil {
		mapError(w, r, err)
		return
	}

	state, err := h.svc.Edit(r.Context(), id, converter.EditsFromDTO(req))
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, converter.FormStateToDTO(state))
}

func (h *handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	state, err := h.svc.Submit(r.Context(), id)
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, http.StatusAccepted, converter.FormStateToDTO(state))
}

func (h *handler) ResetForm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Reset)
}

func (h *handler) RetryForm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Retry)
}

func (h *handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, uuid.UUID) (model.FormState, error),
) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	state, err := fn(r.Context(), id)
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, converter.FormStateToDTO(state))
}

func (h *handler) CloseForm(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Close(r.Context(), id); err != nil {
		mapError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func formID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "formID"))
	if err != nil {
		render.Error(w, http.StatusBadRequest, "BadRequest", "invalid form id") // 400
		return uuid.Nil, false
	}
	return id, true
}

func mapError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs model.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		render.JSON(w, http.StatusUnprocessableEntity, dto.Error{ // 422
			Code:    http.StatusUnprocessableEntity,
			Kind:    "ValidationError",
			Message: model.ErrValidation.Error(),
			Fields:  converter.FieldErrorsToDTO(verrs),
		})
	case errors.Is(err, model.ErrFormNotFound):
		render.Error(w, http.StatusNotFound, "NotFound", err.Error()) // 404
	case errors.Is(err, model.ErrSubmitInProgress),
		errors.Is(err, model.ErrNotIdle),
		errors.Is(err, model.ErrFormClosed):
		render.Error(w, http.StatusConflict, "Conflict", err.Error()) // 409
	case errors.Is(err, model.ErrUnknownField),
		errors.Is(err, model.ErrUnknownService),
		errors.Is(err, render.ErrBadJSON):
		render.Error(w, http.StatusBadRequest, "BadRequest", err.Error()) // 400
	default:
		logger.Error(r.Context(), "payment request failed", logger.ErrorF(err))
		render.Error(w, http.StatusInternalServerError, "Internal", "internal error") // 500
	}
}
