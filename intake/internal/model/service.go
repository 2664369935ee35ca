package model

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type ServiceCode string

const (
	ServiceConsultation   ServiceCode = "consultation"
	ServiceDevelopment    ServiceCode = "development"
	ServiceCloudMigration ServiceCode = "cloud-migration"
	ServiceSecurityAudit  ServiceCode = "security-audit"
	ServiceMobileApp      ServiceCode = "mobile-app"
	ServiceCustom         ServiceCode = "custom"
)

// Service is one entry of the priced catalogue shown in the payment form.
type Service struct {
	Code  ServiceCode
	Label string
	// Price in AUD. Zero means the amount is entered by the customer.
	Price decimal.Decimal
}

var catalogue = []Service{
	{Code: ServiceConsultation, Label: "IT Consultation - A$150/hour", Price: decimal.NewFromInt(150)},
	{Code: ServiceDevelopment, Label: "Custom Development - A$200/hour", Price: decimal.NewFromInt(200)},
	{Code: ServiceCloudMigration, Label: "Cloud Migration - A$5000", Price: decimal.NewFromInt(5000)},
	{Code: ServiceSecurityAudit, Label: "Security Audit - A$2500", Price: decimal.NewFromInt(2500)},
	{Code: ServiceMobileApp, Label: "Mobile App Development - A$15000", Price: decimal.NewFromInt(15000)},
	{Code: ServiceCustom, Label: "Custom Service", Price: decimal.Zero},
}

// Catalogue returns a copy of the service catalogue in display order.
func Catalogue() []Service {
	return append([]Service(nil), catalogue...)
}

func LookupService(code ServiceCode) (Service, bool) {
	return lo.Find(catalogue, func(s Service) bool { return s.Code == code })
}

// DefaultAmount returns the amount text a service preselects, if it has a listed price.
func (c ServiceCode) DefaultAmount() (string, bool) {
	s, ok := LookupService(c)
	if !ok || !s.Price.IsPositive() {
		return "", false
	}
	return s.Price.String(), true
}
