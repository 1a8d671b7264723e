package observability

import (
	"fmt"
	"strings"
	"time"
)

const (
	resourceServiceNameKey      = "service.name"
	defaultServiceName          = "edulookup"
	defaultMetricExportInterval = 60 * time.Second
)

// Config controls how the tracer and meter providers are built.
type Config struct {
	Enabled              bool
	ServiceName          string
	ExporterEndpoint     string
	MetricExportInterval time.Duration
	ResourceAttributes   map[string]string
}

// NewConfig fills defaults and checks that an enabled config has somewhere
// to export to.
func NewConfig(enabled bool, serviceName, endpoint string) (*Config, error) {
	cfg := &Config{
		Enabled:              enabled,
		ServiceName:          strings.TrimSpace(serviceName),
		ExporterEndpoint:     strings.TrimSpace(endpoint),
		MetricExportInterval: defaultMetricExportInterval,
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}
	if cfg.Enabled && cfg.ExporterEndpoint == "" {
		return nil, fmt.Errorf("observability: exporter endpoint is required when OpenTelemetry is enabled")
	}
	return cfg, nil
}
