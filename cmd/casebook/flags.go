// Package main provides the entry point for the casebook CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/casebookhq/casebook/internal/config"
	"github.com/casebookhq/casebook/internal/kb"
	"github.com/casebookhq/casebook/internal/output"
	"github.com/casebookhq/casebook/internal/source"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
// Commands read the flag instead of sharing a global, so they stay
// independently testable.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode reads the --color persistent flag value.
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return "auto"
	}
	return flag.Value.String()
}

// kbPath reads the --kb persistent flag value.
func kbPath(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("kb")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("kb")
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// useColor resolves the effective color setting from the --color flag and
// TTY detection.
func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(colorMode(cmd), output.IsTTY(cmd.OutOrStdout()))
}

// newCmdPrinter builds the printer for a command invocation.
func newCmdPrinter(cmd *cobra.Command) *output.Printer {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
	return printer.WithStderr(cmd.ErrOrStderr())
}

// openStore loads the configuration, resolves the knowledge-base document,
// and parses it into a store. The store is built once per command
// invocation and is read-only from then on.
func openStore(cmd *cobra.Command) (*kb.Store, *source.Document, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, cfg, output.NewUserErrorWithCause("invalid configuration", err)
	}

	explicit := kbPath(cmd)
	if explicit == "" {
		explicit = cfg.KB
	}

	doc, err := source.Resolve(explicit)
	if err != nil {
		return nil, nil, cfg, output.NewSystemErrorWithCause("loading knowledge base", err)
	}

	store, err := kb.Load(doc.Text)
	if err != nil {
		if errors.Is(err, kb.ErrMalformedDocument) {
			return nil, nil, cfg, output.NewUserErrorWithCause(
				"malformed knowledge base ("+doc.Path+"): no section headings found", err)
		}
		return nil, nil, cfg, output.NewUserErrorWithCause(
			"malformed knowledge base ("+doc.Path+")", err)
	}

	return store, doc, cfg, nil
}
