package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mwhite7112/edulookup/internal/lookup"
)

// Outcome classifies how a lookup ended.
type Outcome string

const (
	OutcomeMatched        Outcome = "matched"
	OutcomeEmpty          Outcome = "empty"
	OutcomeInvalidRequest Outcome = "invalid_request"
	OutcomeTransport      Outcome = "transport_error"
	OutcomeMalformed      Outcome = "malformed"
	OutcomeUnknownShape   Outcome = "unknown_shape"
	OutcomeFailed         Outcome = "failed"
)

// LookupEvent describes one finished lookup. It carries no record content.
type LookupEvent struct {
	ID          uuid.UUID     `json:"id"`
	Provider    string        `json:"provider"`
	Query       string        `json:"query"`
	Collection  string        `json:"collection"`
	Outcome     Outcome       `json:"outcome"`
	ResultCount int           `json:"result_count"`
	Duration    time.Duration `json:"duration_ns"`
	At          time.Time     `json:"at"`
}

// Failed reports whether the lookup ended in an error.
func (e LookupEvent) Failed() bool {
	switch e.Outcome {
	case OutcomeMatched, OutcomeEmpty:
		return false
	}
	return true
}

func outcomeOf(rs lookup.ResultSet, err error) Outcome {
	var nerr *lookup.NormalizationError
	var terr *lookup.TransportError
	switch {
	case err == nil && rs.Len() > 0:
		return OutcomeMatched
	case err == nil:
		return OutcomeEmpty
	case errors.Is(err, lookup.ErrUnknownCollection):
		return OutcomeInvalidRequest
	case errors.As(err, &terr):
		return OutcomeTransport
	case errors.As(err, &nerr) && nerr.Kind == lookup.Malformed:
		return OutcomeMalformed
	case errors.As(err, &nerr):
		return OutcomeUnknownShape
	}
	return OutcomeFailed
}
