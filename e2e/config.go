package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// SANTA_E2E_SMTP_HOST selects the live server; scenarios skip when unset
	Host     string `envconfig:"SANTA_E2E_SMTP_HOST"`
	Port     int    `envconfig:"SANTA_E2E_SMTP_PORT" default:"587"`
	Username string `envconfig:"SANTA_E2E_SMTP_USERNAME"`
	Password string `envconfig:"SANTA_E2E_SMTP_PASSWORD"`
	// SANTA_E2E_RECIPIENT receives every message of the scenario
	Recipient string `envconfig:"SANTA_E2E_RECIPIENT"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
