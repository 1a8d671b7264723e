package lookup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// DefaultMarkupTags are the inline highlight tags providers wrap around
// matched terms.
var DefaultMarkupTags = []string{"b", "strong", "em"}

// Cleaner strips a fixed set of inline tags from display text. Everything
// else, including other tags and entities, is left exactly as sent.
type Cleaner struct {
	tags map[string]struct{}
}

// NewCleaner strips tags, or DefaultMarkupTags when none are given.
func NewCleaner(tags ...string) *Cleaner {
	if len(tags) == 0 {
		tags = DefaultMarkupTags
	}
	c := &Cleaner{tags: make(map[string]struct{}, len(tags))}
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			c.tags[t] = struct{}{}
		}
	}
	return c
}

// Clean removes the configured open and close tags from s.
func (c *Cleaner) Clean(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				return s
			}
			// A '<' that never closes is plain text; Raw holds what was
			// read since the last token.
			b.Write(z.Raw())
			return b.String()
		case html.StartTagToken:
			// Display text has no raw-text elements; keep tokenizing
			// markup after <title>, <script> and friends.
			z.NextIsNotRawText()
			fallthrough
		case html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if _, strip := c.tags[string(name)]; strip {
				continue
			}
		}
		b.Write(z.Raw())
	}
}

// CleanValue cleans any scalar value. nil maps to the empty string.
func (c *Cleaner) CleanValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return c.Clean(t)
	case *string:
		if t == nil {
			return ""
		}
		return c.Clean(*t)
	case fmt.Stringer:
		return c.Clean(t.String())
	default:
		return c.Clean(fmt.Sprint(t))
	}
}

// CleanRecord returns a copy of r with every known field cleaned. Extra is
// diagnostic data and is passed through untouched.
func (c *Cleaner) CleanRecord(r Record) Record {
	fields := make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = c.Clean(v)
	}
	return Record{Fields: fields, Extra: r.Extra}
}
