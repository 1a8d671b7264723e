package mcptool

import (
	"context"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwhite7112/edulookup/internal/provider"
	"github.com/mwhite7112/edulookup/internal/service"
)

// MetadataLookup describes the edu_lookup tool.
var MetadataLookup = &mcp.Tool{
	Name: "edu_lookup",
	Description: "Search an education-information provider (majors, curricula, course documents) " +
		"for entries whose name contains the query. Matching is case-insensitive substring " +
		"containment on the provider's name field; only the first page of provider results is searched. " +
		"Returns at most 10 entries with name, description, category and link.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"query"},
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Free-text search term, for example 컴퓨터 or AI",
			},
			"collection": map[string]interface{}{
				"type":        "string",
				"description": "Provider collection to search. Omit for the provider default. See edu_providers for allowed values.",
			},
			"provider": map[string]interface{}{
				"type":        "string",
				"description": "Provider name. Omit for the default provider.",
			},
		},
	},
}

// InputLookup is the input for the Lookup tool.
type InputLookup struct {
	Query      string `json:"query"`
	Collection string `json:"collection"`
	Provider   string `json:"provider"`
}

// OutputLookup is the output for the Lookup tool.
type OutputLookup struct {
	Provider   string           `json:"provider"`
	Query      string           `json:"query"`
	Collection string           `json:"collection"`
	Count      int              `json:"count"`
	Results    []provider.Entry `json:"results"`
}

// MetadataProviders describes the edu_providers tool.
var MetadataProviders = &mcp.Tool{
	Name:        "edu_providers",
	Description: "List the enabled education-information providers with their collections. The first one is the default.",
	InputSchema: map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	},
}

type InputProviders struct{}

type ProviderInfo struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Collections       []string `json:"collections"`
	DefaultCollection string   `json:"default_collection"`
}

type OutputProviders struct {
	Providers []ProviderInfo `json:"providers"`
}

// Tools binds the MCP tool handlers to a provider registry.
type Tools struct {
	registry *service.Registry
}

func NewTools(registry *service.Registry) *Tools {
	return &Tools{registry: registry}
}

// Lookup runs a single lookup. Provider failures come back as tool errors.
func (t *Tools) Lookup(ctx context.Context, _ *mcp.CallToolRequest, input InputLookup) (*mcp.CallToolResult, OutputLookup, error) {
	if input.Query == "" {
		return nil, OutputLookup{}, fmt.Errorf("query is required")
	}

	svc, err := t.registry.Get(input.Provider)
	if err != nil {
		return nil, OutputLookup{}, err
	}

	rs, err := svc.Lookup(ctx, input.Query, input.Collection)
	if err != nil {
		return nil, OutputLookup{}, err
	}

	return nil, OutputLookup{
		Provider:   rs.Provider,
		Query:      rs.Query,
		Collection: rs.Collection,
		Count:      rs.Len(),
		Results:    svc.Profile().Fields.Entries(rs),
	}, nil
}

// Providers lists the enabled providers.
func (t *Tools) Providers(_ context.Context, _ *mcp.CallToolRequest, _ InputProviders) (*mcp.CallToolResult, OutputProviders, error) {
	profiles := t.registry.Profiles()
	out := OutputProviders{Providers: make([]ProviderInfo, 0, len(profiles))}
	for _, p := range profiles {
		out.Providers = append(out.Providers, ProviderInfo{
			Name:              p.Name,
			Description:       p.Description,
			Collections:       append([]string{}, p.Request.Collections...),
			DefaultCollection: p.Request.DefaultCollection,
		})
	}
	return nil, out, nil
}

// NewServer builds an MCP server exposing the lookup tools.
func NewServer(registry *service.Registry, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "edulookup",
		Version: version,
	}, nil)

	tools := NewTools(registry)
	mcp.AddTool(server, MetadataLookup, tools.Lookup)
	mcp.AddTool(server, MetadataProviders, tools.Providers)
	return server
}

// NewHandler serves server over the streamable HTTP transport.
func NewHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
}
