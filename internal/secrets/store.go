package secrets

import (
	"context"
	"errors"
	"os"
	"strings"
)

// ErrNotFound is returned when a store has no value for a key.
var ErrNotFound = errors.New("secret not found")

// Store resolves named secrets. Implementations are read once at startup.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
}

// EnvStore reads secrets from the process environment.
type EnvStore struct {
	lookup func(string) (string, bool)
}

func NewEnvStore() *EnvStore {
	return &EnvStore{lookup: os.LookupEnv}
}

func (s *EnvStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", ErrNotFound
	}
	return v, nil
}

// MapStore serves secrets from a fixed map.
type MapStore map[string]string

func (m MapStore) Get(_ context.Context, key string) (string, error) {
	v, ok := m[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", ErrNotFound
	}
	return v, nil
}

// Chain tries each store in order and returns the first value found.
type Chain []Store

func (c Chain) Get(ctx context.Context, key string) (string, error) {
	for _, s := range c {
		v, err := s.Get(ctx, key)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
	}
	return "", ErrNotFound
}
