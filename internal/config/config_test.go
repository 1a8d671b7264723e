package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/edulookup/internal/provider"
	"github.com/mwhite7112/edulookup/internal/secrets"
)

// chdirTemp runs the test from an empty directory so a developer's .env
// does not leak into the result.
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	for _, k := range []string{"PORT", "LOG_LEVEL", "SECRETS_BACKEND", "PROVIDERS", "PROVIDER_TIMEOUT", "PROVIDER_RATE_LIMIT", "OTEL_ENABLED"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendEnv, cfg.SecretsBackend)
	assert.Equal(t, []string{"career-major"}, cfg.Providers)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
	assert.Zero(t, cfg.ProviderRateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_Overrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PROVIDERS", " career-major , edu-docs ,,")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("PROVIDER_RATE_LIMIT", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, []string{"career-major", "edu-docs"}, cfg.Providers)
	assert.Equal(t, 3*time.Second, cfg.ProviderTimeout)
	assert.InDelta(t, 2.5, cfg.ProviderRateLimit, 0.001)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\n"), 0o600))
	t.Setenv("PORT", "")
	require.NoError(t, os.Unsetenv("PORT"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		key  string
	}{
		{name: "unknown backend", env: map[string]string{"SECRETS_BACKEND": "vault"}, key: "SECRETS_BACKEND"},
		{name: "aws without secret id", env: map[string]string{"SECRETS_BACKEND": "aws", "AWS_SECRET_ID": ""}, key: "AWS_SECRET_ID"},
		{name: "zero timeout", env: map[string]string{"PROVIDER_TIMEOUT": "0s"}, key: "PROVIDER_TIMEOUT"},
		{name: "negative rate", env: map[string]string{"PROVIDER_RATE_LIMIT": "-1"}, key: "PROVIDER_RATE_LIMIT"},
		{name: "otel without endpoint", env: map[string]string{"OTEL_ENABLED": "true", "OTEL_EXPORTER_OTLP_ENDPOINT": ""}, key: "OTEL_EXPORTER_OTLP_ENDPOINT"},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}, key: "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.key, cfgErr.Key)
		})
	}
}

func TestResolveProviders(t *testing.T) {
	t.Parallel()

	cat, err := provider.Default()
	require.NoError(t, err)
	profiles, err := cat.Select([]string{"career-major"})
	require.NoError(t, err)

	t.Run("token and domain", func(t *testing.T) {
		t.Parallel()

		store := secrets.MapStore{"CAREER_API_KEY": "k", "CAREER_API_DOMAIN": "mirror.example.kr"}
		got, err := ResolveProviders(context.Background(), profiles, store)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "k", got[0].Token)
		assert.Equal(t, "mirror.example.kr", got[0].Domain)
		assert.Equal(t, "career-major", got[0].Profile.Name)
	})

	t.Run("domain is optional", func(t *testing.T) {
		t.Parallel()

		got, err := ResolveProviders(context.Background(), profiles, secrets.MapStore{"CAREER_API_KEY": "k"})
		require.NoError(t, err)
		assert.Empty(t, got[0].Domain)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveProviders(context.Background(), profiles, secrets.MapStore{})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "CAREER_API_KEY", cfgErr.Key)
		assert.Contains(t, err.Error(), "career-major")
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveProviders(context.Background(), profiles, failingStore{})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.ErrorContains(t, err, "throttled")
	})

	t.Run("nothing enabled", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveProviders(context.Background(), nil, secrets.MapStore{})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "PROVIDERS", cfgErr.Key)
	})
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("throttled")
}

func TestCatalog_File(t *testing.T) {
	t.Parallel()

	cfg := &Config{ProvidersFile: filepath.Join(t.TempDir(), "missing.yaml")}
	_, err := cfg.Catalog()
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "PROVIDERS_FILE", cfgErr.Key)

	cat, err := (&Config{}).Catalog()
	require.NoError(t, err)
	assert.Contains(t, cat.Names(), "career-major")
}

func TestSecretStore_AWSBackendPrefersEnvironment(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(t.TempDir(), "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "credentials"))
	t.Setenv("CAREER_API_KEY", "from-env")

	cfg := &Config{SecretsBackend: BackendAWS, AWSRegion: "ap-northeast-2", AWSSecretID: "edulookup/prod"}
	store, err := cfg.SecretStore(context.Background())
	require.NoError(t, err)

	chain, ok := store.(secrets.Chain)
	require.True(t, ok, "got %T", store)
	require.Len(t, chain, 2)
	assert.IsType(t, &secrets.EnvStore{}, chain[0])
	assert.IsType(t, &secrets.AWSStore{}, chain[1])

	token, err := store.Get(context.Background(), "CAREER_API_KEY")
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestSecretStore_EnvBackend(t *testing.T) {
	cfg := &Config{SecretsBackend: BackendEnv}
	store, err := cfg.SecretStore(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &secrets.EnvStore{}, store)
}
