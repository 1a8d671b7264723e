package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mwhite7112/edulookup/internal/lookup"
	"github.com/mwhite7112/edulookup/internal/provider"
)

// LookupService runs the request → fetch → normalize → clean → filter
// pipeline against one provider. It holds no per-call state and is safe for
// concurrent use.
type LookupService struct {
	profile    provider.Profile
	builder    *lookup.RequestBuilder
	normalizer *lookup.Normalizer
	cleaner    *lookup.Cleaner
	transport  Transport
	recorder   LookupRecorder
	publisher  LookupPublisher
	now        func() time.Time
}

type LookupOption func(*LookupService)

// WithRecorder stores every finished lookup in the audit log.
func WithRecorder(r LookupRecorder) LookupOption {
	return func(s *LookupService) { s.recorder = r }
}

// WithPublisher announces every finished lookup.
func WithPublisher(p LookupPublisher) LookupOption {
	return func(s *LookupService) { s.publisher = p }
}

// WithProbes appends container probes after the profile's own.
func WithProbes(probes ...lookup.Probe) LookupOption {
	return func(s *LookupService) { s.normalizer = s.normalizer.WithProbes(probes...) }
}

func withClock(now func() time.Time) LookupOption {
	return func(s *LookupService) { s.now = now }
}

// NewLookupService binds a profile to its resolved token and domain. An
// empty domain selects the profile default.
func NewLookupService(profile provider.Profile, token, domain string, transport Transport, opts ...LookupOption) *LookupService {
	s := &LookupService{
		profile:    profile,
		builder:    lookup.NewRequestBuilder(profile.RequestSpec(domain), token),
		normalizer: profile.Normalizer(),
		cleaner:    profile.Cleaner(),
		transport:  transport,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Profile returns the provider profile the service was built from.
func (s *LookupService) Profile() provider.Profile {
	return s.profile
}

// Lookup searches the provider for text in collection. A blank text returns
// an empty result without contacting the provider. Errors are
// *lookup.TransportError, *lookup.NormalizationError, or wrap
// lookup.ErrUnknownCollection; a structural anomaly never yields a partial
// result.
func (s *LookupService) Lookup(ctx context.Context, text, collection string) (lookup.ResultSet, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return lookup.ResultSet{
			Provider:   s.profile.Name,
			Collection: strings.TrimSpace(collection),
			Records:    []lookup.Record{},
		}, nil
	}

	ctx, span := lookupTracer.Start(ctx, "LookupService.Lookup", trace.WithAttributes(
		attribute.String("lookup.provider", s.profile.Name),
		attribute.String("lookup.collection", collection),
	))
	defer span.End()

	start := s.now()
	rs, err := s.run(ctx, text, collection)

	ev := LookupEvent{
		ID:          uuid.New(),
		Provider:    s.profile.Name,
		Query:       text,
		Collection:  rs.Collection,
		Outcome:     outcomeOf(rs, err),
		ResultCount: rs.Len(),
		Duration:    s.now().Sub(start),
		At:          start.UTC(),
	}
	if ev.Collection == "" {
		ev.Collection = strings.TrimSpace(collection)
	}

	span.SetAttributes(
		attribute.String("lookup.outcome", string(ev.Outcome)),
		attribute.Int("lookup.result_count", ev.ResultCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(ev.Outcome))
		slog.Warn("lookup failed", "lookup_id", ev.ID, "provider", ev.Provider, "outcome", ev.Outcome, "error", err)
	}

	s.afterLookup(ctx, ev)
	if err != nil {
		return lookup.ResultSet{}, err
	}
	return rs, nil
}

func (s *LookupService) run(ctx context.Context, text, collection string) (lookup.ResultSet, error) {
	req, err := s.builder.Build(lookup.Query{Text: text, Collection: collection})
	if err != nil {
		return lookup.ResultSet{}, err
	}

	raw, err := s.transport.Get(ctx, req)
	if err != nil {
		var terr *lookup.TransportError
		if !errors.As(err, &terr) {
			err = &lookup.TransportError{Message: "request failed", Cause: err}
		}
		return lookup.ResultSet{Collection: req.Collection}, err
	}
	raw.ContentType = s.contentType(raw.MediaType)

	records, err := s.normalizer.Normalize(raw)
	if err != nil {
		return lookup.ResultSet{Collection: req.Collection}, err
	}

	cleaned := make([]lookup.Record, 0, len(records))
	for _, r := range records {
		cleaned = append(cleaned, s.cleaner.CleanRecord(r))
	}

	matched := lookup.Filter(cleaned, text, s.profile.Fields.Name)
	if len(matched) > req.Page.Size {
		matched = matched[:req.Page.Size]
	}

	return lookup.ResultSet{
		Provider:   s.profile.Name,
		Query:      text,
		Collection: req.Collection,
		Records:    matched,
	}, nil
}

// contentType follows the response header when it is unambiguously JSON or
// XML, and the profile's declared format otherwise.
func (s *LookupService) contentType(header string) lookup.ContentType {
	if ct, ok := lookup.DetectContentType(header); ok {
		return ct
	}
	return s.profile.Format()
}

// afterLookup runs the best-effort side effects. None of them can change
// the lookup result.
func (s *LookupService) afterLookup(ctx context.Context, ev LookupEvent) {
	recordLookupMetrics(ctx, ev)

	if s.recorder != nil {
		if err := s.recorder.RecordLookup(ctx, ev); err != nil {
			slog.Warn("record lookup failed", "lookup_id", ev.ID, "error", err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishLookupCompleted(ctx, ev); err != nil {
			slog.Warn("publish lookup.completed failed", "lookup_id", ev.ID, "error", err)
		}
	}
}
