package prconsumer

import (
	"context"
	"fmt"

	"github.com/you-humble/consultancy-desk/notifier/internal/model"
	"github.com/you-humble/consultancy-desk/platform/kafka"
	"github.com/you-humble/consultancy-desk/platform/logger"
)

type PaymentResolvedConverter interface {
	PaymentResolvedToModel(data []byte) (model.PaymentResolved, error)
}

type PaymentResolvedNotifier interface {
	NotifyPaymentResolved(ctx context.Context, event model.PaymentResolved) error
}

type paymentResolvedConsumer struct {
	consumer kafka.Consumer
	conv     PaymentResolvedConverter
	svc      PaymentResolvedNotifier
}

func NewPaymentResolvedConsumer(
	consumer kafka.Consumer,
	conv PaymentResolvedConverter,
	svc PaymentResolvedNotifier,
) *paymentResolvedConsumer {
	return &paymentResolvedConsumer{
		consumer: consumer,
		conv:     conv,
		svc:      svc,
	}
}

func (s *paymentResolvedConsumer) RunPaymentResolvedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting payment resolved consumer")

	if err := s.consumer.Consume(ctx, s.paymentResolvedHandler); err != nil {
		logger.Error(ctx, "Consume from payment.resolved topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *paymentResolvedConsumer) paymentResolvedHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.PaymentResolvedToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode PaymentResolved record",
			logger.Int64("offset", msg.Offset),
			logger.ErrorF(err),
		)
		return fmt.Errorf("converter payment_resolved_to_model error: %w", err)
	}

	if err := s.svc.NotifyPaymentResolved(ctx, event); err != nil {
		logger.Error(ctx, "Failed to notify about PaymentResolved",
			logger.String("event_id", event.EventID.String()),
			logger.ErrorF(err),
		)
		return err
	}

	return nil
}
