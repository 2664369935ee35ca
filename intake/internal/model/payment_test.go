package model

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() PaymentDraft {
	return PaymentDraft{
		Email:          gofakeit.Email(),
		CardNumber:     "4111 1111 1111 1111",
		ExpiryDate:     "12/29",
		CVV:            "123",
		CardholderName: gofakeit.Name(),
		Amount:         "150",
		Service:        ServiceConsultation,
		Billing: BillingAddress{
			Street:  gofakeit.Street(),
			City:    gofakeit.City(),
			Country: "Australia",
		},
	}
}

func TestPaymentDraftValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(d *PaymentDraft)
		want   ValidationErrors
	}{
		{
			name:   "ok/complete draft",
			mutate: func(d *PaymentDraft) {},
			want:   ValidationErrors{},
		},
		{
			name:   "required/empty draft reports all seven fields",
			mutate: func(d *PaymentDraft) { *d = PaymentDraft{} },
			want: ValidationErrors{
				FieldEmail:          {KindRequiredFieldMissing, "Email is required"},
				FieldCardNumber:     {KindRequiredFieldMissing, "Card number is required"},
				FieldExpiryDate:     {KindRequiredFieldMissing, "Expiry date is required"},
				FieldCVV:            {KindRequiredFieldMissing, "CVV is required"},
				FieldCardholderName: {KindRequiredFieldMissing, "Cardholder name is required"},
				FieldAmount:         {KindRequiredFieldMissing, "Amount is required"},
				FieldServiceCode:    {KindRequiredFieldMissing, "Service selection is required"},
			},
		},
		{
			name:   "required/whitespace counts as empty",
			mutate: func(d *PaymentDraft) { d.CardholderName = "   " },
			want: ValidationErrors{
				FieldCardholderName: {KindRequiredFieldMissing, "Cardholder name is required"},
			},
		},
		{
			name:   "format/email without domain dot",
			mutate: func(d *PaymentDraft) { d.Email = "a@b" },
			want: ValidationErrors{
				FieldEmail: {KindInvalidFormat, "Please enter a valid email address"},
			},
		},
		{
			name:   "format/card shorter than 13 digits",
			mutate: func(d *PaymentDraft) { d.CardNumber = "4111 1111 1111" },
			want: ValidationErrors{
				FieldCardNumber: {KindInvalidFormat, "Please enter a valid card number"},
			},
		},
		{
			name:   "format/card of exactly 13 digits passes",
			mutate: func(d *PaymentDraft) { d.CardNumber = "4111 1111 1111 1" },
			want:   ValidationErrors{},
		},
		{
			name:   "format/cvv too short",
			mutate: func(d *PaymentDraft) { d.CVV = "12" },
			want: ValidationErrors{
				FieldCVV: {KindInvalidFormat, "CVV must be 3 or 4 digits"},
			},
		},
		{
			name:   "format/cvv too long",
			mutate: func(d *PaymentDraft) { d.CVV = "12345" },
			want: ValidationErrors{
				FieldCVV: {KindInvalidFormat, "CVV must be 3 or 4 digits"},
			},
		},
		{
			name:   "format/four digit cvv passes",
			mutate: func(d *PaymentDraft) { d.CVV = "1234" },
			want:   ValidationErrors{},
		},
		{
			name:   "billing/address is never required",
			mutate: func(d *PaymentDraft) { d.Billing = BillingAddress{} },
			want:   ValidationErrors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := validDraft()
			tt.mutate(&d)

			assert.Equal(t, tt.want, d.Validate())
		})
	}
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{}
	errs.Add(FieldEmail, KindRequiredFieldMissing, "first")
	errs.Add(FieldEmail, KindInvalidFormat, "second")
	errs.Add(FieldCVV, KindInvalidFormat, "cvv")

	require.Len(t, errs, 2)
	assert.Equal(t, "first", errs[FieldEmail].Message)
	assert.ErrorIs(t, errs, ErrValidation)
	assert.EqualError(t, errs, "validation error: cvv, email")
}

func TestPaymentDraftCardLast4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card string
		want string
	}{
		{"4111 1111 1111 1234", "1234"},
		{"123", "123"},
		{"", ""},
		{"12-34 56", "3456"},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PaymentDraft{CardNumber: tt.card}.CardLast4())
		})
	}
}

func TestPaymentDraftAmountValue(t *testing.T) {
	t.Parallel()

	assert.True(t, decimal.NewFromFloat(99.5).Equal(PaymentDraft{Amount: " 99.50 "}.AmountValue()))
	assert.True(t, PaymentDraft{Amount: "abc"}.AmountValue().IsZero())
}

func TestPaymentStatusPanel(t *testing.T) {
	t.Parallel()

	p, ok := StatusSuccess.Panel()
	require.True(t, ok)
	assert.Equal(t, "Payment Successful!", p.Title)

	p, ok = StatusError.Panel()
	require.True(t, ok)
	assert.Equal(t, "Payment Failed", p.Title)

	_, ok = StatusIdle.Panel()
	assert.False(t, ok)
	_, ok = StatusProcessing.Panel()
	assert.False(t, ok)
}
