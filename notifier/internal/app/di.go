package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-telegram/bot"

	tgclient "github.com/you-humble/consultancy-desk/notifier/internal/client/http/telegram"
	"github.com/you-humble/consultancy-desk/notifier/internal/config"
	converter "github.com/you-humble/consultancy-desk/notifier/internal/converter/kafka"
	prconsumer "github.com/you-humble/consultancy-desk/notifier/internal/service/consumer/payment_resolved"
	service "github.com/you-humble/consultancy-desk/notifier/internal/service/telegram"
	"github.com/you-humble/consultancy-desk/platform/closer"
	"github.com/you-humble/consultancy-desk/platform/kafka"
	"github.com/you-humble/consultancy-desk/platform/kafka/consumer"
	"github.com/you-humble/consultancy-desk/platform/kafka/middleware"
	"github.com/you-humble/consultancy-desk/platform/logger"
)

type TelegramService interface {
	prconsumer.PaymentResolvedNotifier
	AddChatID(ctx context.Context, chatID int64)
}

type PaymentResolvedConsumer interface {
	RunPaymentResolvedConsume(ctx context.Context) error
}

type di struct {
	converter prconsumer.PaymentResolvedConverter

	paymentResolvedConsumerGroup sarama.ConsumerGroup
	paymentResolvedKafkaConsumer kafka.Consumer
	paymentResolvedConsumer      PaymentResolvedConsumer

	tgBot     *bot.Bot
	tgClient  service.MessageSender
	tgService TelegramService
}

func NewDI() *di { return &di{} }

func (d *di) KafkaConverter(_ context.Context) prconsumer.PaymentResolvedConverter {
	if d.converter == nil {
		d.converter = converter.NewKafkaConverter()
	}

	return d.converter
}

func (d *di) PaymentResolvedConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.paymentResolvedConsumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.PaymentResolvedConsumerGroupID(),
			cfg.Kafka.PaymentResolvedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create payment.resolved consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka payment.resolved consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.paymentResolvedConsumerGroup = consumerGroup
	}

	return d.paymentResolvedConsumerGroup
}

func (d *di) PaymentResolvedKafkaConsumer(ctx context.Context) kafka.Consumer {
	if d.paymentResolvedKafkaConsumer == nil {
		d.paymentResolvedKafkaConsumer = consumer.NewConsumer(
			d.PaymentResolvedConsumerGroup(ctx),
			[]string{
				config.C().Kafka.PaymentResolvedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.paymentResolvedKafkaConsumer
}

func (d *di) PaymentResolvedConsumer(ctx context.Context) PaymentResolvedConsumer {
	if d.paymentResolvedConsumer == nil {
		d.paymentResolvedConsumer = prconsumer.NewPaymentResolvedConsumer(
			d.PaymentResolvedKafkaConsumer(ctx),
			d.KafkaConverter(ctx),
			d.TelegramService(ctx),
		)
	}

	return d.paymentResolvedConsumer
}

func (d *di) TelegramBot(_ context.Context) *bot.Bot {
	if d.tgBot == nil {
		b, err := bot.New(config.C().Telegram.BotToken())
		if err != nil {
			panic(fmt.Sprintf("failed to create telegram bot: %s\n", err.Error()))
		}
		// Polling stops with the run context; no close call is made.
		d.tgBot = b
	}

	return d.tgBot
}

func (d *di) TelegramClient(ctx context.Context) service.MessageSender {
	if d.tgClient == nil {
		d.tgClient = tgclient.NewClient(d.TelegramBot(ctx))
	}

	return d.tgClient
}

func (d *di) TelegramService(ctx context.Context) TelegramService {
	if d.tgService == nil {
		d.tgService = service.NewTgService(d.TelegramClient(ctx))
	}

	return d.tgService
}
