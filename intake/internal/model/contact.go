package model

import (
	"strings"

	"github.com/samber/lo"
)

const (
	ContactFieldName    Field = "name"
	ContactFieldEmail   Field = "email"
	ContactFieldCompany Field = "company"
	ContactFieldService Field = "service"
	ContactFieldMessage Field = "message"
)

const noCompany = "N/A"

// contactTopics are the services a visitor can ask about.
var contactTopics = []string{
	"Software Development",
	"Data Engineering / Analysis",
	"IT Audit",
	"Support & Maintenance",
	"Hardware Sales",
}

func ContactTopics() []string { return append([]string(nil), contactTopics...) }

type ContactRequest struct {
	Name    string
	Email   string
	Company string
	Service string
	Message string
}

// CompanyOrNA returns the company or "N/A" when it was left empty.
func (r ContactRequest) CompanyOrNA() string {
	if strings.TrimSpace(r.Company) == "" {
		return noCompany
	}
	return r.Company
}

func (r ContactRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if blank(r.Name) {
		errs.Add(ContactFieldName, KindRequiredFieldMissing, "Name is required")
	}
	if blank(r.Email) {
		errs.Add(ContactFieldEmail, KindRequiredFieldMissing, "Email is required")
	} else if !ValidEmail(r.Email) {
		errs.Add(ContactFieldEmail, KindInvalidFormat, "Please enter a valid email address")
	}
	if blank(r.Service) {
		errs.Add(ContactFieldService, KindRequiredFieldMissing, "Service selection is required")
	} else if !lo.Contains(contactTopics, r.Service) {
		errs.Add(ContactFieldService, KindInvalidFormat, "Please select a listed service")
	}
	if blank(r.Message) {
		errs.Add(ContactFieldMessage, KindRequiredFieldMissing, "Message is required")
	}

	return errs
}

// TemplateParams is the fixed field set handed to the mail relay.
func (r ContactRequest) TemplateParams() map[string]string {
	return map[string]string{
		"name":    r.Name,
		"email":   r.Email,
		"company": r.CompanyOrNA(),
		"service": r.Service,
		"message": r.Message,
	}
}

type MailMessage struct {
	ServiceID  string
	TemplateID string
	Params     map[string]string
}

// Acknowledgement is what the visitor sees after the email handoff.
type Acknowledgement struct {
	Delivered    bool
	Message      string
	DialogClosed bool
}

// Handoff is an external link the visitor's browser opens in a new context.
type Handoff struct {
	URL          string
	DialogClosed bool
}
