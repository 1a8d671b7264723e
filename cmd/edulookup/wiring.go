package main

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/http"

	_ "github.com/lib/pq"
	"golang.org/x/time/rate"

	"github.com/mwhite7112/edulookup/internal/clients"
	"github.com/mwhite7112/edulookup/internal/config"
	"github.com/mwhite7112/edulookup/internal/db"
	"github.com/mwhite7112/edulookup/internal/secrets"
	"github.com/mwhite7112/edulookup/internal/service"
)

// buildRegistry resolves every enabled provider's secrets up front and
// binds each to a LookupService. Any missing token fails the whole build.
func buildRegistry(ctx context.Context, cfg *config.Config, store secrets.Store, transport service.Transport, opts ...service.LookupOption) (*service.Registry, error) {
	settings, err := resolveProviders(ctx, cfg, store)
	if err != nil {
		return nil, err
	}
	return newRegistry(settings, transport, opts...), nil
}

// resolveProviders selects the enabled profiles and reads their secrets.
// It touches nothing but the catalog and the secret store.
func resolveProviders(ctx context.Context, cfg *config.Config, store secrets.Store) ([]config.ProviderSettings, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	profiles, err := cat.Select(cfg.Providers)
	if err != nil {
		return nil, &config.ConfigurationError{Key: "PROVIDERS", Message: "cannot select providers", Cause: err}
	}
	return config.ResolveProviders(ctx, profiles, store)
}

func newRegistry(settings []config.ProviderSettings, transport service.Transport, opts ...service.LookupOption) *service.Registry {
	services := make([]*service.LookupService, 0, len(settings))
	for _, s := range settings {
		services = append(services, service.NewLookupService(s.Profile, s.Token, s.Domain, transport, opts...))
	}
	return service.NewRegistry(services...)
}

func newTransport(cfg *config.Config) *clients.ProviderClient {
	httpClient := &http.Client{Timeout: cfg.ProviderTimeout}
	opts := []clients.Option{clients.WithUserAgent("edulookup/" + version)}
	if cfg.ProviderRateLimit > 0 {
		burst := int(math.Ceil(cfg.ProviderRateLimit))
		opts = append(opts, clients.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.ProviderRateLimit), burst)))
	}
	return clients.NewProviderClient(httpClient, opts...)
}

func openDB(ctx context.Context, dbURL string) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Migrate(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return sqlDB, nil
}
