package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
	"github.com/you-humble/consultancy-desk/intake/internal/transport/http/dto"
)

func ServicesToDTO(services []model.Service) []dto.Service {
	return lo.Map(services, func(s model.Service, _ int) dto.Service {
		return dto.Service{
			Code:  string(s.Code),
			Label: s.Label,
			Price: s.Price.String(),
		}
	})
}

func FieldErrorsToDTO(errs model.ValidationErrors) map[string]dto.FieldError {
	out := make(map[string]dto.FieldError, len(errs))
	for f, e := range errs {
		out[string(f)] = dto.FieldError{Kind: string(e.Kind), Message: e.Message}
	}
	return out
}

func FormStateToDTO(s model.FormState) dto.PaymentForm {
	d := s.Draft

	form := dto.PaymentForm{
		ID:     s.ID.String(),
		Status: string(s.Status),
		Draft: dto.PaymentDraft{
			Email:          d.Email,
			CardNumber:     d.CardNumber,
			ExpiryDate:     d.ExpiryDate,
			CVV:            d.CVV,
			CardholderName: d.CardholderName,
			Amount:         d.Amount,
			ServiceCode:    string(d.Service),
			BillingAddress: dto.BillingAddress{
				Street:  d.Billing.Street,
				City:    d.Billing.City,
				State:   d.Billing.State,
				ZipCode: d.Billing.ZipCode,
				Country: d.Billing.Country,
			},
		},
		Errors:    FieldErrorsToDTO(s.Errors),
		CanSubmit: s.Status == model.StatusIdle,
	}

	if s.StateOptions != nil {
		form.StateOptions = lo.Map(s.StateOptions, func(st model.State, _ int) dto.State {
			return dto.State{Code: st.Code, Name: st.Name}
		})
	}

	if p, ok := s.Status.Panel(); ok {
		form.Panel = &dto.StatusPanel{Title: p.Title, Message: p.Message}
	}

	return form
}

func EditsFromDTO(req dto.EditFieldsRequest) []model.FieldEdit {
	return lo.Map(req.Edits, func(e dto.FieldEdit, _ int) model.FieldEdit {
		return model.FieldEdit{Field: model.Field(e.Field), Value: e.Value}
	})
}
