package envconfig

import "github.com/caarlos0/env/v11"

type chatEnv struct {
	ProviderHost string `env:"CHAT_PROVIDER_HOST" envDefault:"api.whatsapp.com"`
	Phone        string `env:"CHAT_PHONE,required"`
}

type chat struct {
	raw chatEnv
}

func NewChatConfig() (*chat, error) {
	var raw chatEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &chat{raw: raw}, nil
}

func (cfg *chat) ProviderHost() string { return cfg.raw.ProviderHost }
func (cfg *chat) Phone() string        { return cfg.raw.Phone }
