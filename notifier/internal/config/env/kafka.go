package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                        []string `env:"KAFKA_BROKERS,required"`
	PaymentResolvedTopicName       string   `env:"PAYMENT_RESOLVED_TOPIC_NAME" envDefault:"payment.resolved"`
	PaymentResolvedConsumerGroupID string   `env:"PAYMENT_RESOLVED_CONSUMER_GROUP_ID,required"`
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
func (cfg *kafka) PaymentResolvedConsumerGroupID() string {
	return cfg.raw.PaymentResolvedConsumerGroupID
}

func (cfg *kafka) PaymentResolvedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}
