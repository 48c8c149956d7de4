package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains engine configuration parameters.
type Config struct {
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`
	Files    Files  `envPrefix:"FILES_"`
	JWT      JWT    `envPrefix:"JWT_"`
	Digest   Digest `envPrefix:"DIGEST_"`
}

// Files contains the backing file paths for each persisted collection
// and the append-only sinks.
type Files struct {
	Users         string `env:"USERS" envDefault:"users.csv"`
	Courses       string `env:"COURSES" envDefault:"courses.csv"`
	Enrollments   string `env:"ENROLLMENTS" envDefault:"enrollments.csv"`
	Announcements string `env:"ANNOUNCEMENTS" envDefault:"announcements.txt"`
	AuditLog      string `env:"AUDIT_LOG" envDefault:"audit.log"`
	ReportDir     string `env:"REPORT_DIR" envDefault:"."`
}

// JWT contains session token parameters.
type JWT struct {
	Secret string `env:"SECRET" envDefault:"devsecret"`
}

// Digest contains credential digest parameters.
type Digest struct {
	Algorithm string `env:"ALGORITHM" envDefault:"sha256"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
