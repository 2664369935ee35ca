package converter

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

// PaymentResolvedToPayload encodes the event as a protobuf Struct record.
// Card data beyond the last four digits never leaves the form.
func (c *kafkaConverter) PaymentResolvedToPayload(m model.PaymentResolved) ([]byte, error) {
	pb, err := structpb.NewStruct(map[string]any{
		"event_uuid":  m.EventID.String(),
		"form_uuid":   m.FormID.String(),
		"service":     string(m.Service),
		"amount":      m.Amount.String(),
		"status":      string(m.Status),
		"email":       m.Email,
		"cardholder":  m.CardholderName,
		"card_last4":  m.CardLast4,
		"resolved_at": m.ResolvedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build payment resolved record: %w", err)
	}

	payload, err := proto.Marshal(pb)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf: %w", err)
	}

	return payload, nil
}
