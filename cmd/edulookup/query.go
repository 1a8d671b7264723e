package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mwhite7112/edulookup/internal/config"
	"github.com/mwhite7112/edulookup/internal/lookup"
	"github.com/mwhite7112/edulookup/internal/provider"
)

type queryOptions struct {
	text       string
	collection string
	provider   string
	json       bool
	width      int
}

func newQueryCmd() *cobra.Command {
	var opts queryOptions
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run one lookup and print the matching entries",
		Long: `Run one lookup against a provider and print the entries whose name
contains the keyword.

Examples:
  edulookup query -q 컴퓨터
  edulookup query -q 교육과정 --provider edu-docs --json
  edulookup query -q 경영 --collection univ_list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "query", "q", "", "Keyword to search for (required)")
	cmd.Flags().StringVarP(&opts.collection, "collection", "c", "", "Collection to search (defaults to the provider's)")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", "", "Provider name (defaults to the first enabled)")
	cmd.Flags().BoolVarP(&opts.json, "json", "j", false, "Print results as JSON")
	cmd.Flags().IntVar(&opts.width, "width", 100, "Word wrap width for terminal output")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func runQuery(cmd *cobra.Command, opts queryOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogger(os.Stderr, cfg.SlogLevel(), false)

	ctx := cmd.Context()
	store, err := cfg.SecretStore(ctx)
	if err != nil {
		return err
	}
	registry, err := buildRegistry(ctx, cfg, store, newTransport(cfg))
	if err != nil {
		return err
	}

	svc, err := registry.Get(opts.provider)
	if err != nil {
		return err
	}
	rs, err := svc.Lookup(ctx, opts.text, opts.collection)
	if err != nil {
		return err
	}

	profile := svc.Profile()
	out := cmd.OutOrStdout()
	if opts.json {
		return writeResultJSON(out, profile, rs)
	}

	md := resultMarkdown(profile, rs)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(opts.width),
	)
	if err != nil {
		_, err = io.WriteString(out, md)
		return err
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		_, err = io.WriteString(out, md)
		return err
	}
	_, err = io.WriteString(out, rendered)
	return err
}

type queryResult struct {
	Provider   string           `json:"provider"`
	Query      string           `json:"query"`
	Collection string           `json:"collection"`
	Count      int              `json:"count"`
	Results    []provider.Entry `json:"results"`
}

func writeResultJSON(w io.Writer, profile provider.Profile, rs lookup.ResultSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(queryResult{
		Provider:   profile.Name,
		Query:      rs.Query,
		Collection: rs.Collection,
		Count:      rs.Len(),
		Results:    profile.Fields.Entries(rs),
	})
}

// resultMarkdown renders one section per entry: the name as a heading,
// the description as body text and the category and link as a list.
func resultMarkdown(profile provider.Profile, rs lookup.ResultSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", profile.Name)
	if rs.Query != "" {
		fmt.Fprintf(&b, "Query `%s`", rs.Query)
		if rs.Collection != "" {
			fmt.Fprintf(&b, " in `%s`", rs.Collection)
		}
		b.WriteString("\n\n")
	}

	if rs.Len() == 0 {
		b.WriteString("_no matching entries_\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%d matching entries\n\n", rs.Len())
	for _, e := range profile.Fields.Entries(rs) {
		fmt.Fprintf(&b, "## %s\n\n", e.Name)
		if e.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", e.Description)
		}
		if e.Category != "" {
			fmt.Fprintf(&b, "- category: %s\n", e.Category)
		}
		if e.Link != "" {
			fmt.Fprintf(&b, "- link: <%s>\n", e.Link)
		}
		b.WriteString("\n")
	}
	return b.String()
}
