package observability

import (
	"fmt"
	"net/url"
	"strings"
)

// normalizeOTLPHTTPPath makes sure endpoint ends with the signal path
// (e.g. /v1/traces). Query strings are kept.
func normalizeOTLPHTTPPath(endpoint string, suffix string) (string, error) {
	if strings.TrimSpace(endpoint) == "" {
		return "", fmt.Errorf("endpoint cannot be empty")
	}

	want := "/" + strings.Trim(strings.TrimSpace(suffix), "/")

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("endpoint scheme must be http or https, got %q", parsed.Scheme)
	}

	path := strings.TrimSuffix(parsed.Path, "/")
	switch {
	case path == "":
		parsed.Path = want
	case strings.HasSuffix(path, want):
		parsed.Path = path
	default:
		parsed.Path = path + want
	}

	return parsed.String(), nil
}
