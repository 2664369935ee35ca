// Package dto holds the JSON shapes of the intake HTTP API.
package dto

type Error struct {
	Code    int                   `json:"code"`
	Kind    string                `json:"kind"`
	Message string                `json:"message"`
	Fields  map[string]FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Service struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Price string `json:"price"`
}

type BillingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type PaymentDraft struct {
	Email          string         `json:"email"`
	CardNumber     string         `json:"cardNumber"`
	ExpiryDate     string         `json:"expiryDate"`
	CVV            string         `json:"cvv"`
	CardholderName string         `json:"cardholderName"`
	Amount         string         `json:"amount"`
	ServiceCode    string         `json:"serviceCode"`
	BillingAddress BillingAddress `json:"billingAddress"`
}

type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type StatusPanel struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type PaymentForm struct {
	ID           string                `json:"id"`
	Status       string                `json:"status"`
	Draft        PaymentDraft          `json:"draft"`
	Errors       map[string]FieldError `json:"errors"`
	StateOptions []State               `json:"stateOptions"`
	CanSubmit    bool                  `json:"canSubmit"`
	Panel        *StatusPanel          `json:"panel,omitempty"`
}

type FieldEdit struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type EditFieldsRequest struct {
	Edits []FieldEdit `json:"edits"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

type Acknowledgement struct {
	Delivered    bool   `json:"delivered"`
	Message      string `json:"message"`
	DialogClosed bool   `json:"dialogClosed"`
}

type Handoff struct {
	URL          string `json:"url"`
	DialogClosed bool   `json:"dialogClosed"`
}
