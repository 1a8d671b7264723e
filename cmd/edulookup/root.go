package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "edulookup",
		Short: "Search Korean public education data services",
		Long: `edulookup sends a keyword search to a public education data service
(career/major information, education document search), normalizes the
JSON or XML reply into flat records and keeps the entries whose name
contains the keyword.

Configuration is read from the environment and an optional .env file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newProvidersCmd())
	return root
}

// setupLogger installs the default slog logger. serve logs JSON; the
// interactive commands log text.
func setupLogger(w io.Writer, level slog.Level, json bool) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}
