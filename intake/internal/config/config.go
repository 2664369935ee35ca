package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/consultancy-desk/intake/internal/config/env"
)

var cfg *config

type config struct {
	Server  Server
	Logger  Logger
	Payment Payment
	Mail    Mail
	Chat    Chat
	Kafka   Kafka
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	paymentCfg, err := envconfig.NewPaymentConfig()
	if err != nil {
		return fmt.Errorf("%s Payment: %w", op, err)
	}

	mailCfg, err := envconfig.NewMailConfig()
	if err != nil {
		return fmt.Errorf("%s Mail: %w", op, err)
	}

	chatCfg, err := envconfig.NewChatConfig()
	if err != nil {
		return fmt.Errorf("%s Chat: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	cfg = &config{
		Server:  serverCfg,
		Logger:  loggerCfg,
		Payment: paymentCfg,
		Mail:    mailCfg,
		Chat:    chatCfg,
		Kafka:   kafkaCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
