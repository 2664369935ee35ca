package model

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	Field         string
	ErrorKind     string
	PaymentStatus string
)

const (
	FieldEmail          Field = "email"
	FieldCardNumber     Field = "cardNumber"
	FieldExpiryDate     Field = "expiryDate"
	FieldCVV            Field = "cvv"
	FieldCardholderName Field = "cardholderName"
	FieldAmount         Field = "amount"
	FieldServiceCode    Field = "serviceCode"
	FieldBillingStreet  Field = "billing.street"
	FieldBillingCity    Field = "billing.city"
	FieldBillingState   Field = "billing.state"
	FieldBillingZipCode Field = "billing.zipCode"
	FieldBillingCountry Field = "billing.country"
)

const (
	KindRequiredFieldMissing ErrorKind = "RequiredFieldMissing"
	KindInvalidFormat        ErrorKind = "InvalidFormat"
)

const (
	StatusIdle       PaymentStatus = "idle"
	StatusProcessing PaymentStatus = "processing"
	StatusSuccess    PaymentStatus = "success"
	StatusError      PaymentStatus = "error"
)

// FieldEdit is one change to a draft field, applied in order.
type FieldEdit struct {
	Field Field
	Value string
}

type BillingAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// PaymentDraft is the unsaved record edited by a payment form.
type PaymentDraft struct {
	Email          string
	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardholderName string
	Amount         string
	Service        ServiceCode
	Billing        BillingAddress
}

// Set stores value into the draft field without any formatting.
func (d *PaymentDraft) Set(f Field, value string) bool {
	switch f {
	case FieldEmail:
		d.Email = value
	case FieldCardNumber:
		d.CardNumber = value
	case FieldExpiryDate:
		d.ExpiryDate = value
	case FieldCVV:
		d.CVV = value
	case FieldCardholderName:
		d.CardholderName = value
	case FieldAmount:
		d.Amount = value
	case FieldServiceCode:
		d.Service = ServiceCode(value)
	case FieldBillingStreet:
		d.Billing.Street = value
	case FieldBillingCity:
		d.Billing.City = value
	case FieldBillingState:
		d.Billing.State = value
	case FieldBillingZipCode:
		d.Billing.ZipCode = value
	case FieldBillingCountry:
		d.Billing.Country = value
	default:
		return false
	}
	return true
}

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has the local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailShape.MatchString(s)
}

// Validate checks every rule in a fixed order and collects all failures.
func (d PaymentDraft) Validate() ValidationErrors {
	errs := ValidationErrors{}

	required := []struct {
		field Field
		value string
		msg   string
	}{
		{FieldEmail, d.Email, "Email is required"},
		{FieldCardNumber, d.CardNumber, "Card number is required"},
		{FieldExpiryDate, d.ExpiryDate, "Expiry date is required"},
		{FieldCVV, d.CVV, "CVV is required"},
		{FieldCardholderName, d.CardholderName, "Cardholder name is required"},
		{FieldAmount, d.Amount, "Amount is required"},
		{FieldServiceCode, string(d.Service), "Service selection is required"},
	}
	for _, r := range required {
		if blank(r.value) {
			errs.Add(r.field, KindRequiredFieldMissing, r.msg)
		}
	}

	if !blank(d.Email) && !ValidEmail(d.Email) {
		errs.Add(FieldEmail, KindInvalidFormat, "Please enter a valid email address")
	}

	if !blank(d.CardNumber) && utf8.RuneCountInString(strings.Join(strings.Fields(d.CardNumber), "")) < 13 {
		errs.Add(FieldCardNumber, KindInvalidFormat, "Please enter a valid card number")
	}

	if n := utf8.RuneCountInString(d.CVV); !blank(d.CVV) && (n < 3 || n > 4) {
		errs.Add(FieldCVV, KindInvalidFormat, "CVV must be 3 or 4 digits")
	}

	return errs
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// CardLast4 returns the last four card digits for receipts and events.
func (d PaymentDraft) CardLast4() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, d.CardNumber)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// AmountValue parses the amount text; unparsable text yields zero.
func (d PaymentDraft) AmountValue() decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
	if err != nil {
		return decimal.Zero
	}
	return v
}

type FieldError struct {
	Kind    ErrorKind
	Message string
}

// ValidationErrors maps a field to its message. It is an error that matches ErrValidation.
type ValidationErrors map[Field]FieldError

// Add keeps the first failure recorded for a field.
func (v ValidationErrors) Add(f Field, kind ErrorKind, msg string) {
	if _, ok := v[f]; ok {
		return
	}
	v[f] = FieldError{Kind: kind, Message: msg}
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	return ErrValidation.Error() + ": " + strings.Join(fields, ", ")
}

func (v ValidationErrors) Unwrap() error { return ErrValidation }

// StatusPanel is the full-panel outcome message shown for a terminal status.
type StatusPanel struct {
	Title   string
	Message string
}

var statusPanels = map[PaymentStatus]StatusPanel{
	StatusSuccess: {
		Title:   "Payment Successful!",
		Message: "Thank you for your payment. You will receive a confirmation email shortly.",
	},
	StatusError: {
		Title:   "Payment Failed",
		Message: "There was an issue processing your payment. Please try again or contact support.",
	},
}

func (s PaymentStatus) Panel() (StatusPanel, bool) {
	p, ok := statusPanels[s]
	return p, ok
}

// FormState is a point-in-time copy of a payment form.
type FormState struct {
	ID     uuid.UUID
	Draft  PaymentDraft
	Errors ValidationErrors
	Status PaymentStatus
	// StateOptions is nil when the billing state is free text.
	StateOptions []State
}

// PaymentResolved is emitted once a submission reaches a terminal status.
type PaymentResolved struct {
	EventID        uuid.UUID
	FormID         uuid.UUID
	Service        ServiceCode
	Amount         decimal.Decimal
	Status         PaymentStatus
	Email          string
	CardholderName string
	CardLast4      string
	ResolvedAt     time.Time
}
