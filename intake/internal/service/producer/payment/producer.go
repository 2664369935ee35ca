package pmtproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
	"github.com/you-humble/consultancy-desk/platform/kafka"
)

type Converter interface {
	PaymentResolvedToPayload(m model.PaymentResolved) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewPaymentProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) PublishResolved(ctx context.Context, event model.PaymentResolved) error {
	payload, err := s.conv.PaymentResolvedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter payment_resolved_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(event.FormID.String()), payload); err != nil {
		return fmt.Errorf("producer to payment.resolved topic error: %w", err)
	}

	return nil
}
