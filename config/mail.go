package config

import (
	"strings"
	"time"
)

// MailConfig controls outbound notification mail (SMTP).
type MailConfig struct {
	Enabled  bool   `env:"ENABLED"  envDefault:"false"`
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"587"`
	Username string `env:"USERNAME" envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`

	// From is the configured default sender address.
	From string `env:"FROM" envDefault:"no-reply@pyar.example"`

	// Timeout bounds a single send attempt.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to mail configuration values.
func (m *MailConfig) Sanitize() {
	m.Host = strings.TrimSpace(m.Host)
	m.From = strings.TrimSpace(m.From)
	if m.Host == "" || m.From == "" {
		m.Enabled = false
	}
	if m.Port <= 0 {
		m.Port = 587
	}
	if m.Timeout <= 0 {
		m.Timeout = 10 * time.Second
	}
}
