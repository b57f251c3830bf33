package internal

import (
	"time"
)

// Config carries the operational knobs shared by the binaries. Everything
// has a default: a roster file alone is enough to run.
type Config struct {
	SMTPHost    string        `env:"SANTA_SMTP_HOST,default=smtp.gmail.com"`
	SMTPPort    int           `env:"SANTA_SMTP_PORT,default=587"`
	MaxAttempts int           `env:"SANTA_MAX_ATTEMPTS,default=4"`
	SendTimeout time.Duration `env:"SANTA_SEND_TIMEOUT,default=30s"`

	// HistoryPath enables the run-history sink; BlugePath additionally
	// enables full-text search over it. Both stay off unless set.
	HistoryPath string `env:"SANTA_HISTORY_PATH"`
	BlugePath   string `env:"SANTA_BLUGE_PATH"`

	LogLevel string `env:"LOG_LEVEL,default=INFO"`
	Colours  bool   `env:"SANTA_COLOURS,default=true"`
}
