package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"

	mailclient "github.com/you-humble/consultancy-desk/intake/internal/client/http/mail"
	"github.com/you-humble/consultancy-desk/intake/internal/config"
	"github.com/you-humble/consultancy-desk/intake/internal/converter"
	"github.com/you-humble/consultancy-desk/intake/internal/service/contact"
	"github.com/you-humble/consultancy-desk/intake/internal/service/payment"
	"github.com/you-humble/consultancy-desk/intake/internal/service/processor"
	pmtproducer "github.com/you-humble/consultancy-desk/intake/internal/service/producer/payment"
	contacthttp "github.com/you-humble/consultancy-desk/intake/internal/transport/http/contact/v1"
	paymenthttp "github.com/you-humble/consultancy-desk/intake/internal/transport/http/payment/v1"
	"github.com/you-humble/consultancy-desk/platform/closer"
	"github.com/you-humble/consultancy-desk/platform/kafka"
	"github.com/you-humble/consultancy-desk/platform/kafka/producer"
	"github.com/you-humble/consultancy-desk/platform/logger"
)

type PaymentService interface {
	paymenthttp.PaymentService
	CloseAll(ctx context.Context) error
}

type Routes interface {
	Register(r chi.Router)
}

type di struct {
	syncProducer            sarama.SyncProducer
	paymentResolvedProducer kafka.Producer
	resolvedPublisher       payment.ResolvedPublisher

	processor  payment.PaymentProcessor
	mailClient contact.MailSender

	paymentService PaymentService
	contactService contacthttp.ContactService

	paymentHandler Routes
	contactHandler Routes

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.PaymentResolvedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) PaymentResolvedProducer(ctx context.Context) kafka.Producer {
	if d.paymentResolvedProducer == nil {
		d.paymentResolvedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.PaymentResolvedTopic(),
			logger.L(),
			producer.WithHeader("content-type", "application/x-protobuf"),
		)
	}

	return d.paymentResolvedProducer
}

func (d *di) ResolvedPublisher(ctx context.Context) payment.ResolvedPublisher {
	if d.resolvedPublisher == nil {
		d.resolvedPublisher = pmtproducer.NewPaymentProducer(
			d.PaymentResolvedProducer(ctx),
			converter.NewKafkaConverter(),
		)
	}

	return d.resolvedPublisher
}

func (d *di) Processor(_ context.Context) payment.PaymentProcessor {
	if d.processor == nil {
		cfg := config.C()
		d.processor = processor.NewSimulated(
			cfg.Payment.ProcessingDelay(),
			cfg.Payment.SuccessRate(),
		)
	}

	return d.processor
}

func (d *di) MailClient(_ context.Context) contact.MailSender {
	if d.mailClient == nil {
		cfg := config.C()
		d.mailClient = mailclient.NewClient(
			cfg.Mail.BaseURL(),
			cfg.Mail.PublicKey(),
			&http.Client{Timeout: cfg.Mail.Timeout()},
		)
	}

	return d.mailClient
}

func (d *di) PaymentService(ctx context.Context) PaymentService {
	if d.paymentService == nil {
		svc := payment.NewPaymentService(
			d.Processor(ctx),
			d.ResolvedPublisher(ctx),
		)
		closer.AddNamed("Payment forms", svc.CloseAll)

		d.paymentService = svc
	}

	return d.paymentService
}

func (d *di) ContactService(ctx context.Context) contacthttp.ContactService {
	if d.contactService == nil {
		cfg := config.C()
		d.contactService = contact.NewContactService(
			d.MailClient(ctx),
			contact.MailRouting{
				ServiceID:  cfg.Mail.ServiceID(),
				TemplateID: cfg.Mail.TemplateID(),
			},
			contact.ChatRouting{
				Host:  cfg.Chat.ProviderHost(),
				Phone: cfg.Chat.Phone(),
			},
		)
	}

	return d.contactService
}

func (d *di) PaymentHandler(ctx context.Context) Routes {
	if d.paymentHandler == nil {
		d.paymentHandler = paymenthttp.NewPaymentHandler(
			d.PaymentService(ctx),
			config.C().Server.AwaitTimeout(),
		)
	}

	return d.paymentHandler
}

func (d *di) ContactHandler(ctx context.Context) Routes {
	if d.contactHandler == nil {
		d.contactHandler = contacthttp.NewContactHandler(d.ContactService(ctx))
	}

	return d.contactHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
