package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/consultancy-desk/intake/internal/converter"
	"github.com/you-humble/consultancy-desk/intake/internal/model"
	"github.com/you-humble/consultancy-desk/intake/internal/transport/http/dto"
	"github.com/you-humble/consultancy-desk/intake/internal/transport/http/render"
	"github.com/you-humble/consultancy-desk/platform/logger"
)

type ContactService interface {
	Topics(ctx context.Context) []string
	SendEmail(ctx context.Context, req model.ContactRequest) (model.Acknowledgement, error)
	ChatHandoff(ctx context.Context, req model.ContactRequest) (model.Handoff, error)
}

type handler struct {
	svc ContactService
}

func NewContactHandler(service ContactService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/contact", func(r chi.Router) {
		r.Get("/topics", h.ListTopics)
		r.Post("/email", h.SendEmail)
		r.Post("/whatsapp", h.ChatHandoff)
	})
}

func (h *handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, h.svc.Topics(r.Context()))
}

func (h *handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := render.Decode(r, &req); err != nil {
		mapError(w, r, err)
		return
	}

	ack, err := h.svc.SendEmail(r.Context(), converter.ContactRequestFromDTO(req))
	if err != nil {
		mapError(w, r, err)
		return
	}

	// A failed relay is still an answer for the visitor, not a server error.
	render.JSON(w, http.StatusOK, converter.AcknowledgementToDTO(ack))
}

func (h *handler) ChatHandoff(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := render.Decode(r, &req); err != nil {
		mapError(w, r, err)
		return
	}

	handoff, err := h.svc.ChatHandoff(r.Context(), converter.ContactRequestFromDTO(req))
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, converter.HandoffToDTO(handoff))
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
	case errors.Is(err, render.ErrBadJSON):
		render.Error(w, http.StatusBadRequest, "BadRequest", err.Error()) // 400
	default:
		logger.Error(r.Context(), "contact request failed", logger.ErrorF(err))
		render.Error(w, http.StatusInternalServerError, "Internal", "internal error") // 500
	}
}
