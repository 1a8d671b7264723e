package lookup

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// RequestSpec describes how one provider expects its parameters.
type RequestSpec struct {
	Endpoint          string
	TokenParam        string
	QueryParam        string
	CollectionParam   string
	PageParam         string
	SizeParam         string
	SortParam         string
	Sort              string
	Fixed             map[string]string
	Collections       []string
	DefaultCollection string
	PageSize          int
}

// Request is a fully formed outbound GET. The free-text term is kept apart
// from Params because providers expect it ahead of the standard block.
type Request struct {
	Endpoint   string
	QueryParam string
	QueryText  string
	Collection string
	Page       Page
	Params     url.Values
}

// URL renders the request as the provider expects it: the escaped query
// term first, then the remaining parameters in sorted order.
func (r Request) URL() string {
	var b strings.Builder
	b.WriteString(r.Endpoint)

	sep := "?"
	if strings.Contains(r.Endpoint, "?") {
		sep = "&"
	}
	if r.QueryParam != "" {
		b.WriteString(sep)
		b.WriteString(url.QueryEscape(r.QueryParam))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(r.QueryText))
		sep = "&"
	}
	if enc := r.Params.Encode(); enc != "" {
		b.WriteString(sep)
		b.WriteString(enc)
	}
	return b.String()
}

// RequestBuilder turns a Query into a Request. It performs no I/O.
type RequestBuilder struct {
	spec  RequestSpec
	token string
}

func NewRequestBuilder(spec RequestSpec, token string) *RequestBuilder {
	return &RequestBuilder{spec: spec, token: token}
}

// Build validates the collection and assembles every required parameter.
func (b *RequestBuilder) Build(q Query) (Request, error) {
	collection, err := b.collection(q.Collection)
	if err != nil {
		return Request{}, err
	}

	page := q.Page
	if page.Size < 1 {
		page.Size = b.spec.PageSize
	}
	page = page.normalized()

	params := make(url.Values, len(b.spec.Fixed)+5)
	for k, v := range b.spec.Fixed {
		params.Set(k, v)
	}
	params.Set(b.spec.TokenParam, b.token)
	if b.spec.SortParam != "" {
		params.Set(b.spec.SortParam, b.spec.Sort)
	}
	params.Set(b.spec.PageParam, strconv.Itoa(page.Num))
	params.Set(b.spec.SizeParam, strconv.Itoa(page.Size))
	if b.spec.CollectionParam != "" {
		params.Set(b.spec.CollectionParam, collection)
	}

	return Request{
		Endpoint:   b.spec.Endpoint,
		QueryParam: b.spec.QueryParam,
		QueryText:  strings.TrimSpace(q.Text),
		Collection: collection,
		Page:       page,
		Params:     params,
	}, nil
}

func (b *RequestBuilder) collection(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return b.spec.DefaultCollection, nil
	}
	if len(b.spec.Collections) == 0 || slices.Contains(b.spec.Collections, name) {
		return name, nil
	}
	return "", fmt.Errorf("%w %q (allowed: %s)", ErrUnknownCollection, name, strings.Join(b.spec.Collections, ", "))
}
