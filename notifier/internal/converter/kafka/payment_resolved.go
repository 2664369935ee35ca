package converter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/you-humble/consultancy-desk/notifier/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) PaymentResolvedToModel(data []byte) (model.PaymentResolved, error) {
	var pb structpb.Struct
	if err := proto.Unmarshal(data, &pb); err != nil {
		return model.PaymentResolved{}, fmt.Errorf("failed to unmarshal protobuf: %w", err)
	}

	fields := pb.GetFields()
	str := func(key string) string { return fields[key].GetStringValue() }

	eventID, err := uuid.Parse(str("event_uuid"))
	if err != nil {
		return model.PaymentResolved{}, fmt.Errorf("event_uuid: %w", err)
	}

	formID, err := uuid.Parse(str("form_uuid"))
	if err != nil {
		return model.PaymentResolved{}, fmt.Errorf("form_uuid: %w", err)
	}

	amount, err := decimal.NewFromString(str("amount"))
	if err != nil {
		return model.PaymentResolved{}, fmt.Errorf("amount: %w", err)
	}

	resolvedAt, err := time.Parse(time.RFC3339Nano, str("resolved_at"))
	if err != nil {
		return model.PaymentResolved{}, fmt.Errorf("resolved_at: %w", err)
	}

	return model.PaymentResolved{
		EventID:        eventID,
		FormID:         formID,
		Service:        str("service"),
		Amount:         amount,
		Status:         str("status"),
		Email:          str("email"),
		CardholderName: str("cardholder"),
		CardLast4:      str("card_last4"),
		ResolvedAt:     resolvedAt,
	}, nil
}
