package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mwhite7112/edulookup/internal/lookup"
	"github.com/mwhite7112/edulookup/internal/provider"
)

// ErrUnknownProvider is returned for a provider name that is not enabled.
var ErrUnknownProvider = errors.New("unknown provider")

// Registry holds one LookupService per enabled provider. The first one
// registered is the default.
type Registry struct {
	services map[string]*LookupService
	order    []string
}

func NewRegistry(services ...*LookupService) *Registry {
	r := &Registry{services: make(map[string]*LookupService, len(services))}
	for _, s := range services {
		name := s.Profile().Name
		if _, dup := r.services[name]; dup {
			continue
		}
		r.services[name] = s
		r.order = append(r.order, name)
	}
	return r
}

// Get returns the named service, or the default for an empty name.
func (r *Registry) Get(name string) (*LookupService, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		if len(r.order) == 0 {
			return nil, fmt.Errorf("%w: no providers enabled", ErrUnknownProvider)
		}
		name = r.order[0]
	}
	s, ok := r.services[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (enabled: %s)", ErrUnknownProvider, name, strings.Join(r.order, ", "))
	}
	return s, nil
}

// Names lists the enabled providers, default first.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Profiles lists the enabled provider profiles, default first.
func (r *Registry) Profiles() []provider.Profile {
	out := make([]provider.Profile, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.services[name].Profile())
	}
	return out
}

// Lookup routes to the named provider's service.
func (r *Registry) Lookup(ctx context.Context, providerName, text, collection string) (lookup.ResultSet, error) {
	s, err := r.Get(providerName)
	if err != nil {
		return lookup.ResultSet{}, err
	}
	return s.Lookup(ctx, text, collection)
}
