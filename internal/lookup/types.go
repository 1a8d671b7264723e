package lookup

import (
	"mime"
	"strings"
)

// DefaultPageSize is the number of records requested from a provider and
// the maximum size of a ResultSet.
const DefaultPageSize = 10

// ContentType is the declared body format of a provider response.
type ContentType string

const (
	JSON ContentType = "json"
	XML  ContentType = "xml"
)

// ParseContentType accepts "json" or "xml" in any case.
func ParseContentType(s string) (ContentType, bool) {
	switch ContentType(strings.ToLower(strings.TrimSpace(s))) {
	case JSON:
		return JSON, true
	case XML:
		return XML, true
	}
	return "", false
}

// DetectContentType maps an HTTP Content-Type header to a ContentType. It
// only reports true when the media type is unambiguously JSON or XML.
func DetectContentType(header string) (ContentType, bool) {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return "", false
	}
	switch {
	case mediaType == "application/json", strings.HasSuffix(mediaType, "+json"):
		return JSON, true
	case mediaType == "application/xml", mediaType == "text/xml", strings.HasSuffix(mediaType, "+xml"):
		return XML, true
	}
	return "", false
}

// Page selects one page of provider results.
type Page struct {
	Num  int
	Size int
}

func (p Page) normalized() Page {
	if p.Num < 1 {
		p.Num = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

// Query is the caller's free-text term plus an optional collection.
type Query struct {
	Text       string
	Collection string
	Page       Page
}

// RawResponse is one provider reply, held only until it is normalized.
type RawResponse struct {
	Body        []byte
	ContentType ContentType
	MediaType   string
	StatusCode  int
}

// Record is one candidate item from a provider. Fields holds the known
// fields under the provider's own names; everything else lands in Extra.
type Record struct {
	Fields map[string]string `json:"fields"`
	Extra  map[string]any    `json:"extra,omitempty"`
}

// Get returns the field value and whether the provider sent it.
func (r Record) Get(field string) (string, bool) {
	if field == "" {
		return "", false
	}
	v, ok := r.Fields[field]
	return v, ok
}

// Display returns the field value, or placeholder when it is absent or blank.
func (r Record) Display(field, placeholder string) string {
	v, ok := r.Get(field)
	if !ok || strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}

// ResultSet is the outcome of a successful lookup. Records is never nil.
type ResultSet struct {
	Provider   string   `json:"provider"`
	Query      string   `json:"query"`
	Collection string   `json:"collection"`
	Records    []Record `json:"records"`
}

// Len returns the number of matched records.
func (rs ResultSet) Len() int {
	return len(rs.Records)
}
