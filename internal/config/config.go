package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	env "github.com/netflix/go-env"
)

const (
	BackendEnv = "env"
	BackendAWS = "aws"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port     string `env:"PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	SecretsBackend string `env:"SECRETS_BACKEND,default=env"`
	AWSSecretID    string `env:"AWS_SECRET_ID"`
	AWSRegion      string `env:"AWS_REGION,default=ap-northeast-2"`

	ProvidersFile     string        `env:"PROVIDERS_FILE"`
	ProvidersStr      string        `env:"PROVIDERS,default=career-major"`
	ProviderTimeout   time.Duration `env:"PROVIDER_TIMEOUT,default=10s"`
	ProviderRateLimit float64       `env:"PROVIDER_RATE_LIMIT,default=0"`

	DBURL       string `env:"DB_URL"`
	RabbitMQURL string `env:"RABBITMQ_URL"`

	OTelEnabled     bool   `env:"OTEL_ENABLED,default=false"`
	OTelEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelServiceName string `env:"OTEL_SERVICE_NAME,default=edulookup"`

	// Providers is parsed from ProvidersStr.
	Providers []string
}

// Load reads .env (when present) and the environment, then validates.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &ConfigurationError{Key: ".env", Message: "cannot read dotenv file", Cause: err}
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, &ConfigurationError{Message: "failed to parse environment variables", Cause: err}
	}

	cfg.Providers = splitList(cfg.ProvidersStr)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	switch c.SecretsBackend {
	case BackendEnv:
	case BackendAWS:
		if c.AWSSecretID == "" {
			errs = append(errs, &ConfigurationError{Key: "AWS_SECRET_ID", Message: "required when SECRETS_BACKEND=aws"})
		}
	default:
		errs = append(errs, &ConfigurationError{Key: "SECRETS_BACKEND", Message: fmt.Sprintf("unknown backend %q (want env or aws)", c.SecretsBackend)})
	}
	if c.ProviderTimeout <= 0 {
		errs = append(errs, &ConfigurationError{Key: "PROVIDER_TIMEOUT", Message: "must be positive"})
	}
	if c.ProviderRateLimit < 0 {
		errs = append(errs, &ConfigurationError{Key: "PROVIDER_RATE_LIMIT", Message: "must not be negative"})
	}
	if c.OTelEnabled && c.OTelEndpoint == "" {
		errs = append(errs, &ConfigurationError{Key: "OTEL_EXPORTER_OTLP_ENDPOINT", Message: "required when OTEL_ENABLED=true"})
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, &ConfigurationError{Key: "LOG_LEVEL", Message: err.Error()})
	}
	return errors.Join(errs...)
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
	}
	return lvl, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
