package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type paymentEnv struct {
	ProcessingDelay time.Duration `env:"PAYMENT_PROCESSING_DELAY" envDefault:"3s"`
	SuccessRate     float64       `env:"PAYMENT_SUCCESS_RATE" envDefault:"0.8"`
}

type payment struct {
	raw paymentEnv
}

func NewPaymentConfig() (*payment, error) {
	var raw paymentEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.SuccessRate < 0 || raw.SuccessRate > 1 {
		return nil, fmt.Errorf("PAYMENT_SUCCESS_RATE must be within [0, 1], got %v", raw.SuccessRate)
	}
	return &payment{raw: raw}, nil
}

func (cfg *payment) ProcessingDelay() time.Duration { return cfg.raw.ProcessingDelay }
func (cfg *payment) SuccessRate() float64           { return cfg.raw.SuccessRate }
