package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/mwhite7112/edulookup/internal/lookup"
)

// MaxBodyBytes caps how much of a provider response is read.
const MaxBodyBytes = 8 << 20

const snippetBytes = 256

// ProviderClient performs the single GET a lookup needs. It does not retry.
type ProviderClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

type Option func(*ProviderClient)

// WithRateLimiter makes every request wait for a token from l first.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *ProviderClient) { c.limiter = l }
}

func WithUserAgent(ua string) Option {
	return func(c *ProviderClient) { c.userAgent = ua }
}

func NewProviderClient(httpClient *http.Client, opts ...Option) *ProviderClient {
	c := &ProviderClient{httpClient: httpClient, userAgent: "edulookup"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get sends req and returns the raw reply. Network failures, timeouts and
// non-2xx statuses come back as *lookup.TransportError. The request URL
// carries the service token, so it never appears in returned errors.
func (c *ProviderClient) Get(ctx context.Context, req lookup.Request) (lookup.RawResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return lookup.RawResponse{}, &lookup.TransportError{Message: "rate limit wait", Cause: err}
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL(), nil)
	if err != nil {
		return lookup.RawResponse{}, &lookup.TransportError{Message: "build request", Cause: redact(err)}
	}
	httpReq.Header.Set("Accept", "application/json, application/xml;q=0.9, */*;q=0.1")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return lookup.RawResponse{}, &lookup.TransportError{Message: "request failed", Cause: redact(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return lookup.RawResponse{}, &lookup.TransportError{StatusCode: resp.StatusCode, Message: "read body", Cause: redact(err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return lookup.RawResponse{}, &lookup.TransportError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status: %s", snippet(body)),
		}
	}

	return lookup.RawResponse{
		Body:       body,
		MediaType:  resp.Header.Get("Content-Type"),
		StatusCode: resp.StatusCode,
	}, nil
}

// redact drops the query string from any *url.Error in err.
func redact(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	clean := *urlErr
	if u, perr := url.Parse(urlErr.URL); perr == nil {
		u.RawQuery = ""
		u.User = nil
		clean.URL = u.String()
	} else {
		clean.URL = "(redacted)"
	}
	return &clean
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "(empty body)"
	}
	if len(s) > snippetBytes {
		s = strings.ToValidUTF8(s[:snippetBytes], "") + "..."
	}
	return s
}
