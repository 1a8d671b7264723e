package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/mwhite7112/edulookup/internal/provider"
	"github.com/mwhite7112/edulookup/internal/secrets"
)

// ProviderSettings is a profile together with its resolved secrets.
type ProviderSettings struct {
	Profile provider.Profile
	Token   string
	// Domain is empty when the store has no override; the profile's
	// default domain is used then.
	Domain string
}

// Catalog loads PROVIDERS_FILE when set, otherwise the built-in profiles.
func (c *Config) Catalog() (*provider.Catalog, error) {
	if c.ProvidersFile == "" {
		return provider.Default()
	}
	cat, err := provider.LoadFile(c.ProvidersFile)
	if err != nil {
		return nil, &ConfigurationError{Key: "PROVIDERS_FILE", Message: "cannot load provider profiles", Cause: err}
	}
	return cat, nil
}

// SecretStore builds the store selected by SECRETS_BACKEND. With the aws
// backend, environment variables still take precedence over the secret.
func (c *Config) SecretStore(ctx context.Context) (secrets.Store, error) {
	switch c.SecretsBackend {
	case BackendAWS:
		s, err := secrets.NewAWSStore(ctx, c.AWSRegion, c.AWSSecretID)
		if err != nil {
			return nil, &ConfigurationError{Key: "AWS_SECRET_ID", Message: "cannot create secrets manager client", Cause: err}
		}
		return secrets.Chain{secrets.NewEnvStore(), s}, nil
	default:
		return secrets.NewEnvStore(), nil
	}
}

// ResolveProviders reads each profile's token and optional domain once.
// A missing token is a ConfigurationError.
func ResolveProviders(ctx context.Context, profiles []provider.Profile, store secrets.Store) ([]ProviderSettings, error) {
	if len(profiles) == 0 {
		return nil, &ConfigurationError{Key: "PROVIDERS", Message: "no providers enabled"}
	}

	out := make([]ProviderSettings, 0, len(profiles))
	for _, p := range profiles {
		token, err := store.Get(ctx, p.TokenSecret)
		switch {
		case errors.Is(err, secrets.ErrNotFound):
			return nil, &ConfigurationError{Key: p.TokenSecret, Message: fmt.Sprintf("service token for provider %q is not set", p.Name)}
		case err != nil:
			return nil, &ConfigurationError{Key: p.TokenSecret, Message: "cannot read service token", Cause: err}
		}

		var domain string
		if p.DomainSecret != "" {
			domain, err = store.Get(ctx, p.DomainSecret)
			if err != nil && !errors.Is(err, secrets.ErrNotFound) {
				return nil, &ConfigurationError{Key: p.DomainSecret, Message: "cannot read service domain", Cause: err}
			}
		}

		out = append(out, ProviderSettings{Profile: p, Token: token, Domain: domain})
	}
	return out, nil
}
