package service

import (
	"context"

	"github.com/mwhite7112/edulookup/internal/lookup"
)

// Transport abstracts the provider client for testing.
type Transport interface {
	Get(ctx context.Context, req lookup.Request) (lookup.RawResponse, error)
}

// LookupRecorder persists completed lookups for the audit log.
type LookupRecorder interface {
	RecordLookup(ctx context.Context, ev LookupEvent) error
}

// LookupPublisher announces completed lookups to other services.
type LookupPublisher interface {
	PublishLookupCompleted(ctx context.Context, ev LookupEvent) error
}
