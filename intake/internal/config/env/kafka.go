package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                  []string `env:"KAFKA_BROKERS,required"`
	PaymentResolvedTopicName string   `env:"PAYMENT_RESOLVED_TOPIC_NAME" envDefault:"payment.resolved"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string            { return cfg.raw.Brokers }
func (cfg *kafka) PaymentResolvedTopic() string { return cfg.raw.PaymentResolvedTopicName }

func (cfg *kafka) PaymentResolvedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	return config
}
