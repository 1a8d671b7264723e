package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/mwhite7112/edulookup/internal/db"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

// HistoryService is the lookup audit log. It is never consulted to answer
// a lookup.
type HistoryService struct {
	q db.Querier
}

func NewHistoryService(q db.Querier) *HistoryService {
	return &HistoryService{q: q}
}

// RecordLookup stores ev. It satisfies LookupRecorder.
func (s *HistoryService) RecordLookup(ctx context.Context, ev LookupEvent) error {
	var errKind sql.NullString
	if ev.Failed() {
		errKind = sql.NullString{String: string(ev.Outcome), Valid: true}
	}
	_, err := s.q.CreateLookup(ctx, db.CreateLookupParams{
		ID:          ev.ID,
		Provider:    ev.Provider,
		Query:       ev.Query,
		Collection:  ev.Collection,
		Outcome:     string(ev.Outcome),
		ErrorKind:   errKind,
		ResultCount: int32(ev.ResultCount),
		DurationMs:  ev.Duration.Milliseconds(),
	})
	return err
}

// ListRecent returns the newest lookups, optionally for one provider.
// limit is clamped to [1, MaxHistoryLimit]; zero means DefaultHistoryLimit.
func (s *HistoryService) ListRecent(ctx context.Context, providerName string, limit int) ([]db.Lookup, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	var (
		items []db.Lookup
		err   error
	)
	if p := strings.TrimSpace(providerName); p != "" {
		items, err = s.q.ListRecentLookupsByProvider(ctx, db.ListRecentLookupsByProviderParams{
			Provider: p,
			Limit:    int32(limit),
		})
	} else {
		items, err = s.q.ListRecentLookups(ctx, int32(limit))
	}
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []db.Lookup{}, nil
	}
	return items, nil
}

// GetLookup returns a single audit row by ID.
func (s *HistoryService) GetLookup(ctx context.Context, id uuid.UUID) (db.Lookup, error) {
	return s.q.GetLookup(ctx, id)
}
