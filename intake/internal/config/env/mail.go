package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type mailEnv struct {
	BaseURL    string        `env:"MAIL_BASE_URL" envDefault:"https://api.emailjs.com"`
	ServiceID  string        `env:"MAIL_SERVICE_ID,required"`
	TemplateID string        `env:"MAIL_TEMPLATE_ID,required"`
	PublicKey  string        `env:"MAIL_PUBLIC_KEY,required"`
	Timeout    time.Duration `env:"MAIL_TIMEOUT" envDefault:"10s"`
}

type mail struct {
	raw mailEnv
}

func NewMailConfig() (*mail, error) {
	var raw mailEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mail{raw: raw}, nil
}

func (cfg *mail) BaseURL() string        { return cfg.raw.BaseURL }
func (cfg *mail) ServiceID() string      { return cfg.raw.ServiceID }
func (cfg *mail) TemplateID() string     { return cfg.raw.TemplateID }
func (cfg *mail) PublicKey() string      { return cfg.raw.PublicKey }
func (cfg *mail) Timeout() time.Duration { return cfg.raw.Timeout }
