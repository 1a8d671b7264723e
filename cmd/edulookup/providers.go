package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mwhite7112/edulookup/internal/config"
	"github.com/mwhite7112/edulookup/internal/provider"
)

func newProvidersCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List the known provider profiles",
		Long: `List every provider profile in the catalog (built in, or PROVIDERS_FILE)
and whether PROVIDERS enables it. No secrets are read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cat, err := cfg.Catalog()
			if err != nil {
				return err
			}
			return writeProviders(cmd.OutOrStdout(), cat, cfg.Providers, asJSON)
		},
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Print profiles as JSON")
	return cmd
}

type providerListing struct {
	provider.Profile
	Enabled bool `json:"enabled"`
}

func writeProviders(w io.Writer, cat *provider.Catalog, enabled []string, asJSON bool) error {
	listings := make([]providerListing, 0, len(cat.Providers))
	for _, p := range cat.Providers {
		listings = append(listings, providerListing{
			Profile: p,
			Enabled: len(enabled) == 0 || slices.Contains(enabled, p.Name),
		})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(map[string]any{"providers": listings})
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFORMAT\tENABLED\tCOLLECTIONS\tDESCRIPTION")
	for _, l := range listings {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\n",
			l.Name, l.Format(), l.Enabled, strings.Join(l.Request.Collections, ","), l.Description)
	}
	return tw.Flush()
}
