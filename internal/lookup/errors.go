package lookup

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrMalformed matches a NormalizationError whose body did not parse.
	ErrMalformed = errors.New("malformed provider response")
	// ErrUnknownShape matches a NormalizationError whose body parsed but
	// matched no known container path, or whose item count was inconsistent.
	ErrUnknownShape = errors.New("unrecognized provider response shape")
	// ErrUnknownCollection is returned when the requested collection is not
	// offered by the provider.
	ErrUnknownCollection = errors.New("unknown collection")
)

// TransportError reports a failed exchange with the provider: network
// failure, timeout, or a non-2xx status.
type TransportError struct {
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message"`
	Cause      error  `json:"-"`
}

func (e *TransportError) Error() string {
	if e == nil {
		return ""
	}
	msg := "provider transport: " + e.Message
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("provider transport: status %d: %s", e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Timeout reports whether the exchange was cut off by a deadline.
func (e *TransportError) Timeout() bool {
	if e == nil || e.Cause == nil {
		return false
	}
	if errors.Is(e.Cause, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Cause, &netErr) && netErr.Timeout()
}

// NormalizationKind classifies a NormalizationError.
type NormalizationKind int

const (
	Malformed NormalizationKind = iota
	UnknownShape
)

func (k NormalizationKind) String() string {
	switch k {
	case Malformed:
		return "malformed"
	case UnknownShape:
		return "unknown_shape"
	default:
		return fmt.Sprintf("NormalizationKind(%d)", int(k))
	}
}

// NormalizationError carries the raw body and, once parsed, the generic
// tree so callers can show what the provider actually sent.
type NormalizationError struct {
	Kind        NormalizationKind
	ContentType ContentType
	Message     string
	Raw         []byte
	Tree        any
	Cause       error
}

func (e *NormalizationError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("normalize %s response: %s", e.ContentType, e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *NormalizationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is lets errors.Is match ErrMalformed and ErrUnknownShape by kind.
func (e *NormalizationError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrMalformed:
		return e.Kind == Malformed
	case ErrUnknownShape:
		return e.Kind == UnknownShape
	}
	return false
}

// Diagnostic returns the parsed tree when there is one, otherwise the raw
// body as text.
func (e *NormalizationError) Diagnostic() any {
	if e == nil {
		return nil
	}
	if e.Tree != nil {
		return e.Tree
	}
	return string(e.Raw)
}
