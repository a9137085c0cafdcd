package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix scopes every environment variable read by the console.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App       AppConfig
	Inventory InventoryAPIConfig
	Session   SessionConfig
	Metrics   MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Inventory.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AUTOFLEX_APP_ENV" required:"true"`
	Port         string `envconfig:"AUTOFLEX_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AUTOFLEX_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AUTOFLEX_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// InventoryAPIConfig locates the upstream inventory service that owns all
// persistent state. The console never talks to a database of its own.
type InventoryAPIConfig struct {
	BaseURL        string        `envconfig:"AUTOFLEX_INVENTORY_API_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"AUTOFLEX_INVENTORY_API_TIMEOUT" default:"15s"`
}

func (c InventoryAPIConfig) validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("AUTOFLEX_INVENTORY_API_URL is required")
	}
	return nil
}

// SessionConfig bounds how long an idle BOM editor session survives before
// the registry sweeps it.
type SessionConfig struct {
	IdleTTL       time.Duration `envconfig:"AUTOFLEX_SESSION_IDLE_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"AUTOFLEX_SESSION_SWEEP_INTERVAL" default:"5m"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"AUTOFLEX_METRICS_ENABLED" default:"true"`
}
