package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentResolved struct {
	EventID        uuid.UUID
	FormID         uuid.UUID
	Service        string
	Amount         decimal.Decimal
	Status         string
	Email          string
	CardholderName string
	CardLast4      string
	ResolvedAt     time.Time
}

// Succeeded reports whether the processor approved the payment.
func (e PaymentResolved) Succeeded() bool { return e.Status == "success" }

type PaymentResolvedNotification struct {
	FormID         string
	Service        string
	Amount         string
	Succeeded      bool
	Email          string
	CardholderName string
	CardLast4      string
	ResolvedAt     string
}
