// Package main provides the entry point for the casebook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/casebookhq/casebook/internal/export"
	"github.com/casebookhq/casebook/internal/kb"
	"github.com/casebookhq/casebook/internal/output"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var formatFlag string
	var outFlag string
	var categoryFlag string
	var ecosystemFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export knowledge-base entries as markdown or JSON",
		Long: `Export entries for re-publishing or downstream tooling.

Without --out, entries are written to stdout (markdown documents separated
by blank lines, or one JSON array). With --out, one file per entry is
written to the directory, named by entry ID.

Examples:
  casebook export                                  # All entries as markdown to stdout
  casebook export --format json                    # All entries as JSON
  casebook export --out ./templates                # One .md file per entry
  casebook export --category unit-test --out ./u   # Only unit-test entries`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, formatFlag, outFlag, categoryFlag, ecosystemFlag)
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "markdown", "Output format: markdown or json")
	cmd.Flags().StringVar(&outFlag, "out", "", "Directory to write one file per entry")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Export only entries with this category")
	cmd.Flags().StringVar(&ecosystemFlag, "ecosystem", "", "Export only entries with this ecosystem")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, formatFlag, outFlag, categoryFlag, ecosystemFlag string) error {
	printer := newCmdPrinter(cmd)

	if formatFlag != "markdown" && formatFlag != "json" {
		err := output.NewUserError("--format must be markdown or json")
		printer.Error(err)
		return err
	}

	store, _, _, err := openStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	entries, err := filterEntries(store.Entries(), categoryFlag, ecosystemFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	if outFlag == "" {
		return exportToStdout(printer, entries, formatFlag)
	}
	return exportToDir(printer, entries, formatFlag, outFlag)
}

// exportToStdout streams all entries to the printer.
func exportToStdout(printer *output.Printer, entries []*kb.Entry, format string) error {
	if format == "json" {
		return export.FormatJSON(printer, entries)
	}
	for i, entry := range entries {
		if i > 0 {
			printer.Println()
		}
		printer.Print("%s", export.FormatMarkdown(entry))
	}
	return nil
}

// exportToDir writes one file per entry into the output directory.
func exportToDir(printer *output.Printer, entries []*kb.Entry, format, dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		exportErr := output.NewSystemErrorWithCause("creating output directory "+dir, err)
		printer.Error(exportErr)
		return exportErr
	}

	var err error
	if format == "json" {
		err = export.WriteJSONFiles(entries, dir)
	} else {
		err = export.WriteMarkdownFiles(entries, dir)
	}
	if err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Exported %d entries to %s", len(entries), dir),
		"count":   len(entries),
		"dir":     dir,
	})
}
