package model

import "errors"

var (
	ErrValidation       = errors.New("validation error")         // 422
	ErrUnknownField     = errors.New("unknown field")            // 400
	ErrUnknownService   = errors.New("unknown service")          // 400
	ErrFormNotFound     = errors.New("payment form not found")   // 404
	ErrFormClosed       = errors.New("payment form closed")      // 409
	ErrSubmitInProgress = errors.New("payment is processing")    // 409
	ErrNotIdle          = errors.New("payment already resolved") // 409
	ErrPaymentDeclined  = errors.New("payment declined")         // status only
	ErrMailDelivery     = errors.New("mail delivery failed")     // acknowledgement only
)
