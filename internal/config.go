package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the process configuration, bound from environment variables
// with sensible single-store defaults.
type Config struct {
	Env      string
	LogLevel string
	Port     uint16
	Business BusinessConfig
	NATS     NATSConfig
}

// BusinessConfig carries the branding that shows up in customer messages.
type BusinessConfig struct {
	// Name is the display name used in message headers.
	Name string

	// CurrencyPrefix is prepended to money amounts, e.g. "Bs".
	CurrencyPrefix string

	// DateTimeLayout is the Go reference layout for customer-facing
	// timestamps. Kept configurable so template output stays deterministic
	// regardless of runtime locale.
	DateTimeLayout string
}

// NATSConfig configures the order handoff broker. When disabled, finalized
// orders are only kept in process memory.
type NATSConfig struct {
	Enabled bool
	URL     string
}

// NewConfig loads configuration from the environment, with .env discovery in
// the working directory and up to two parent directories.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		dir, _ := os.Getwd()
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				break
			}
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", 3000)
	v.SetDefault("BUSINESS_NAME", "Lavandería Burbuja")
	v.SetDefault("CURRENCY_PREFIX", "Bs")
	v.SetDefault("DATETIME_LAYOUT", "02/01/2006 15:04")
	v.SetDefault("NATS_ENABLED", false)
	v.SetDefault("NATS_URL", "nats://localhost:4222")

	cfg := &Config{
		Env:      v.GetString("ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),
		Port:     uint16(v.GetUint32("PORT")),
		Business: BusinessConfig{
			Name:           v.GetString("BUSINESS_NAME"),
			CurrencyPrefix: v.GetString("CURRENCY_PREFIX"),
			DateTimeLayout: v.GetString("DATETIME_LAYOUT"),
		},
		NATS: NATSConfig{
			Enabled: v.GetBool("NATS_ENABLED"),
			URL:     v.GetString("NATS_URL"),
		},
	}

	if cfg.Env != "dev" && cfg.Env != "prod" {
		return nil, fmt.Errorf("invalid ENV %q: must be dev or prod", cfg.Env)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		cfg.LogLevel = "info"
	}

	if cfg.NATS.Enabled && cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS_URL required when NATS_ENABLED is set")
	}

	return cfg, nil
}
