package provider

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mwhite7112/edulookup/internal/lookup"
)

// DefaultPlaceholder is shown for display fields the provider left out.
const DefaultPlaceholder = "-"

// Profile is one provider's request and response contract.
type Profile struct {
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	ContentType  string   `yaml:"content_type" json:"content_type"`
	Domain       string   `yaml:"domain" json:"-"`
	Path         string   `yaml:"path" json:"-"`
	TokenSecret  string   `yaml:"token_secret" json:"-"`
	DomainSecret string   `yaml:"domain_secret" json:"-"`
	Request      Request  `yaml:"request" json:"request"`
	Response     Response `yaml:"response" json:"-"`
	Fields       Fields   `yaml:"fields" json:"fields"`
}

// Request lists the provider's parameter names and fixed values.
type Request struct {
	TokenParam        string            `yaml:"token_param" json:"-"`
	QueryParam        string            `yaml:"query_param" json:"-"`
	CollectionParam   string            `yaml:"collection_param" json:"-"`
	PageParam         string            `yaml:"page_param" json:"-"`
	SizeParam         string            `yaml:"size_param" json:"-"`
	SortParam         string            `yaml:"sort_param" json:"-"`
	Sort              string            `yaml:"sort" json:"-"`
	Fixed             map[string]string `yaml:"fixed" json:"-"`
	Collections       []string          `yaml:"collections" json:"collections"`
	DefaultCollection string            `yaml:"default_collection" json:"default_collection"`
	PageSize          int               `yaml:"page_size" json:"page_size"`
}

// Response lists the container paths to probe, in order.
type Response struct {
	Probes []Probe `yaml:"probes"`
}

type Probe struct {
	Name  string   `yaml:"name"`
	Path  []string `yaml:"path"`
	Items string   `yaml:"items"`
	Count string   `yaml:"count"`
}

// Fields maps display roles onto the provider's own field names.
type Fields struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Category    string   `yaml:"category" json:"category,omitempty"`
	Link        string   `yaml:"link" json:"link,omitempty"`
	Known       []string `yaml:"known" json:"known,omitempty"`
	Placeholder string   `yaml:"placeholder" json:"-"`
	StripTags   []string `yaml:"strip_tags" json:"-"`
}

// Validate reports every missing piece of the profile at once.
func (p Profile) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if _, ok := lookup.ParseContentType(p.ContentType); !ok {
		errs = append(errs, fmt.Errorf("content_type %q must be json or xml", p.ContentType))
	}
	if p.Domain == "" {
		errs = append(errs, errors.New("domain is required"))
	}
	if p.TokenSecret == "" {
		errs = append(errs, errors.New("token_secret is required"))
	}
	if p.Request.TokenParam == "" || p.Request.PageParam == "" || p.Request.SizeParam == "" {
		errs = append(errs, errors.New("request token_param, page_param and size_param are required"))
	}
	if p.Request.DefaultCollection != "" && len(p.Request.Collections) > 0 && !slices.Contains(p.Request.Collections, p.Request.DefaultCollection) {
		errs = append(errs, fmt.Errorf("default_collection %q is not in collections", p.Request.DefaultCollection))
	}
	if len(p.Response.Probes) == 0 {
		errs = append(errs, errors.New("response needs at least one probe"))
	}
	if p.Fields.Name == "" {
		errs = append(errs, errors.New("fields.name is required"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("provider %q: %w", p.Name, errors.Join(errs...))
}

// Format returns the declared content type.
func (p Profile) Format() lookup.ContentType {
	ct, _ := lookup.ParseContentType(p.ContentType)
	return ct
}

// Endpoint joins domain (or the profile default when empty) and the path.
func (p Profile) Endpoint(domain string) string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		domain = p.Domain
	}
	if !strings.Contains(domain, "://") {
		domain = "https://" + domain
	}
	return strings.TrimRight(domain, "/") + "/" + strings.TrimLeft(p.Path, "/")
}

// PageSize returns the configured page size or the lookup default.
func (p Profile) PageSize() int {
	if p.Request.PageSize > 0 {
		return p.Request.PageSize
	}
	return lookup.DefaultPageSize
}

// RequestSpec converts the profile for lookup.NewRequestBuilder.
func (p Profile) RequestSpec(domain string) lookup.RequestSpec {
	fixed := make(map[string]string, len(p.Request.Fixed))
	for k, v := range p.Request.Fixed {
		fixed[k] = v
	}
	return lookup.RequestSpec{
		Endpoint:          p.Endpoint(domain),
		TokenParam:        p.Request.TokenParam,
		QueryParam:        p.Request.QueryParam,
		CollectionParam:   p.Request.CollectionParam,
		PageParam:         p.Request.PageParam,
		SizeParam:         p.Request.SizeParam,
		SortParam:         p.Request.SortParam,
		Sort:              p.Request.Sort,
		Fixed:             fixed,
		Collections:       append([]string(nil), p.Request.Collections...),
		DefaultCollection: p.Request.DefaultCollection,
		PageSize:          p.PageSize(),
	}
}

// Probes converts the probe table for lookup.NewNormalizer.
func (p Profile) Probes() []lookup.Probe {
	out := make([]lookup.Probe, 0, len(p.Response.Probes))
	for _, pr := range p.Response.Probes {
		out = append(out, lookup.Probe{
			Name:  pr.Name,
			Path:  append([]string(nil), pr.Path...),
			Items: pr.Items,
			Count: pr.Count,
		})
	}
	return out
}

// KnownFields is the union of Fields.Known and every display role.
func (p Profile) KnownFields() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(f string) {
		if f == "" {
			return
		}
		if _, dup := seen[f]; dup {
			return
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	for _, f := range p.Fields.Known {
		add(f)
	}
	add(p.Fields.Name)
	add(p.Fields.Description)
	add(p.Fields.Category)
	add(p.Fields.Link)
	return out
}

// Normalizer builds the response normalizer for this profile.
func (p Profile) Normalizer() *lookup.Normalizer {
	return lookup.NewNormalizer(p.KnownFields(), p.Probes()...)
}

// Cleaner builds the markup cleaner for this profile.
func (p Profile) Cleaner() *lookup.Cleaner {
	return lookup.NewCleaner(p.Fields.StripTags...)
}
