// Package main provides the entry point for the casebook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/casebookhq/casebook/internal/kb"
	"github.com/casebookhq/casebook/internal/output"
)

// entryRef is the JSON shape for one listed entry.
type entryRef struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Ecosystem string `json:"ecosystem"`
	Title     string `json:"title"`
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var categoryFlag string
	var ecosystemFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge-base entries",
		Long: `List all entries in document order.

Examples:
  casebook list
  casebook list --category parameterized-test
  casebook list --ecosystem python --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, categoryFlag, ecosystemFlag)
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Filter by category")
	cmd.Flags().StringVar(&ecosystemFlag, "ecosystem", "", "Filter by ecosystem")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, categoryFlag, ecosystemFlag string) error {
	printer := newCmdPrinter(cmd)

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

	if printer.IsJSON() {
		refs := make([]entryRef, 0, len(entries))
		for _, entry := range entries {
			refs = append(refs, entryRef{
				ID:        entry.ID,
				Category:  string(entry.Category),
				Ecosystem: string(entry.Ecosystem),
				Title:     entry.Title,
			})
		}
		return printer.WriteJSON(refs)
	}

	if len(entries) == 0 {
		printer.Println("No entries")
		return nil
	}

	headers := []string{"ID", "Category", "Ecosystem", "Title"}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.ID, string(entry.Category), string(entry.Ecosystem), entry.Title,
		})
	}
	printer.Table(headers, rows)
	return nil
}

// filterEntries applies optional category/ecosystem filters.
func filterEntries(entries []*kb.Entry, categoryFlag, ecosystemFlag string) ([]*kb.Entry, error) {
	if categoryFlag != "" {
		category, err := kb.ParseCategory(categoryFlag)
		if err != nil {
			return nil, output.NewUserError(err.Error())
		}
		entries = kb.FilterByCategory(entries, category)
	}
	if ecosystemFlag != "" {
		ecosystem, err := kb.ParseEcosystem(ecosystemFlag)
		if err != nil {
			return nil, output.NewUserError(err.Error())
		}
		entries = kb.FilterByEcosystem(entries, ecosystem)
	}
	return entries, nil
}
