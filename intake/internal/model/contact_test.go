package model

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRequestValidate(t *testing.T) {
	t.Parallel()

	valid := func() ContactRequest {
		return ContactRequest{
			Name:    gofakeit.Name(),
			Email:   gofakeit.Email(),
			Service: "IT Audit",
			Message: gofakeit.Sentence(8),
		}
	}

	tests := []struct {
		name       string
		mutate     func(r *ContactRequest)
		wantFields []Field
	}{
		{name: "ok/company is optional", mutate: func(r *ContactRequest) {}},
		{
			name:       "required/everything missing",
			mutate:     func(r *ContactRequest) { *r = ContactRequest{} },
			wantFields: []Field{ContactFieldName, ContactFieldEmail, ContactFieldService, ContactFieldMessage},
		},
		{
			name:       "format/bad email",
			mutate:     func(r *ContactRequest) { r.Email = "nobody" },
			wantFields: []Field{ContactFieldEmail},
		},
		{
			name:       "format/unlisted service",
			mutate:     func(r *ContactRequest) { r.Service = "Gardening" },
			wantFields: []Field{ContactFieldService},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := valid()
			tt.mutate(&r)
			errs := r.Validate()

			require.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestContactRequestTemplateParams(t *testing.T) {
	t.Parallel()

	r := ContactRequest{Name: "Ann", Email: "ann@example.com", Service: "IT Audit", Message: "hi"}
	assert.Equal(t, map[string]string{
		"name":    "Ann",
		"email":   "ann@example.com",
		"company": "N/A",
		"service": "IT Audit",
		"message": "hi",
	}, r.TemplateParams())

	r.Company = "Acme"
	assert.Equal(t, "Acme", r.TemplateParams()["company"])
}

func TestContactTopicsIsACopy(t *testing.T) {
	t.Parallel()

	topics := ContactTopics()
	require.Len(t, topics, 5)
	topics[0] = "changed"
	assert.Equal(t, "Software Development", ContactTopics()[0])
}
