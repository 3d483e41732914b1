// Package main provides the entry point for the casebook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casebookhq/casebook/internal/kb"
	"github.com/casebookhq/casebook/internal/output"
)

// statusResult holds the data for status output.
type statusResult struct {
	Source     string         `json:"source"`
	Path       string         `json:"path"`
	EntryCount int            `json:"entry_count"`
	Categories map[string]int `json:"categories"`
	Ecosystems map[string]int `json:"ecosystems"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show knowledge-base state",
		Long: `Show where the knowledge-base document was loaded from and what it
contains: total entry count plus tallies per category and ecosystem.

Examples:
  casebook status
  casebook status --json
  casebook status --kb ./standards.md`,
		RunE: runStatus,
	}
	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, _ []string) error {
	printer := newCmdPrinter(cmd)

	store, doc, _, err := openStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	entries := store.Entries()
	result := statusResult{
		Source:     doc.Origin,
		Path:       doc.Path,
		EntryCount: len(entries),
		Categories: make(map[string]int),
		Ecosystems: make(map[string]int),
	}
	for category, count := range kb.CountByCategory(entries) {
		result.Categories[string(category)] = count
	}
	for ecosystem, count := range kb.CountByEcosystem(entries) {
		result.Ecosystems[string(ecosystem)] = count
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printHumanStatus(printer, result)
	return nil
}

// printHumanStatus renders the status in human-readable format.
func printHumanStatus(printer *output.Printer, result statusResult) {
	printer.Section("Knowledge Base")
	printer.KeyValue("Source", result.Source)
	printer.KeyValue("Path", result.Path)
	printer.KeyValue("Entries", fmt.Sprintf("%d", result.EntryCount))

	printer.Section("Categories")
	printTallies(printer, result.Categories, categoryOrder())

	printer.Section("Ecosystems")
	printTallies(printer, result.Ecosystems, ecosystemOrder())
}

// printTallies renders a tally table in a stable order, skipping zero rows.
func printTallies(printer *output.Printer, tallies map[string]int, order []string) {
	rows := make([][]string, 0, len(tallies))
	for _, name := range order {
		if count, ok := tallies[name]; ok {
			rows = append(rows, []string{name, fmt.Sprintf("%d", count)})
		}
	}
	printer.Table([]string{"Name", "Count"}, rows)
}

// categoryOrder returns category names in their canonical order.
func categoryOrder() []string {
	categories := kb.Categories()
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, string(category))
	}
	return names
}

// ecosystemOrder returns ecosystem names in their canonical order.
func ecosystemOrder() []string {
	ecosystems := kb.Ecosystems()
	names := make([]string, 0, len(ecosystems))
	for _, ecosystem := range ecosystems {
		names = append(names, string(ecosystem))
	}
	return names
}
