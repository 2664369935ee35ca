package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func encode(t *testing.T, fields map[string]any) []byte {
	t.Helper()

	pb, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	data, err := proto.Marshal(pb)
	require.NoError(t, err)
	return data
}

func record(eventID, formID uuid.UUID) map[string]any {
	return map[string]any{
		"event_uuid":  eventID.String(),
		"form_uuid":   formID.String(),
		"service":     "cloud-migration",
		"amount":      "5000",
		"status":      "success",
		"email":       "jo@x.io",
		"cardholder":  "Jo Smith",
		"card_last4":  "4242",
		"resolved_at": "2026-03-01T10:30:00.5Z",
	}
}

func TestPaymentResolvedToModel(t *testing.T) {
	t.Parallel()

	eventID, formID := uuid.New(), uuid.New()

	got, err := NewKafkaConverter().PaymentResolvedToModel(encode(t, record(eventID, formID)))
	require.NoError(t, err)

	assert.Equal(t, eventID, got.EventID)
	assert.Equal(t, formID, got.FormID)
	assert.Equal(t, "cloud-migration", got.Service)
	assert.Equal(t, "5000", got.Amount.String())
	assert.True(t, got.Succeeded())
	assert.Equal(t, "Jo Smith", got.CardholderName)
	assert.Equal(t, "4242", got.CardLast4)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 500_000_000, time.UTC), got.ResolvedAt)
}

func TestPaymentResolvedToModelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"bad event uuid", func(m map[string]any) { m["event_uuid"] = "x" }},
		{"missing form uuid", func(m map[string]any) { delete(m, "form_uuid") }},
		{"bad amount", func(m map[string]any) { m["amount"] = "lots" }},
		{"bad timestamp", func(m map[string]any) { m["resolved_at"] = "yesterday" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := record(uuid.New(), uuid.New())
			tt.mutate(r)

			_, err := NewKafkaConverter().PaymentResolvedToModel(encode(t, r))
			require.Error(t, err)
		})
	}

	t.Run("not protobuf", func(t *testing.T) {
		t.Parallel()

		_, err := NewKafkaConverter().PaymentResolvedToModel([]byte{0xff, 0xff, 0xff})
		require.Error(t, err)
	})
}
