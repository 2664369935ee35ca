package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	AwaitTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Payment interface {
	ProcessingDelay() time.Duration
	SuccessRate() float64
}

type Mail interface {
	BaseURL() string
	ServiceID() string
	TemplateID() string
	PublicKey() string
	Timeout() time.Duration
}

type Chat interface {
	ProviderHost() string
	Phone() string
}

type Kafka interface {
	Brokers() []string
	PaymentResolvedTopic() string
	PaymentResolvedProducerConfig() *sarama.Config
}
