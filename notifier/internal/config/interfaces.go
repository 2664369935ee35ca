package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Kafka interface {
	Brokers() []string
	PaymentResolvedTopic() string
	PaymentResolvedConsumerGroupID() string
	PaymentResolvedConsumerConfig() *sarama.Config
}

type Telegram interface {
	BotToken() string
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type App interface {
	ShutdownTimeout() time.Duration
}
