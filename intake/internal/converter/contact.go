package converter

import (
	"github.com/you-humble/consultancy-desk/intake/internal/model"
	"github.com/you-humble/consultancy-desk/intake/internal/transport/http/dto"
)

func ContactRequestFromDTO(req dto.ContactRequest) model.ContactRequest {
	return model.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Service: req.Service,
		Message: req.Message,
	}
}

func AcknowledgementToDTO(a model.Acknowledgement) dto.Acknowledgement {
	return dto.Acknowledgement{
		Delivered:    a.Delivered,
		Message:      a.Message,
		DialogClosed: a.DialogClosed,
	}
}

func HandoffToDTO(h model.Handoff) dto.Handoff {
	return dto.Handoff{URL: h.URL, DialogClosed: h.DialogClosed}
}
