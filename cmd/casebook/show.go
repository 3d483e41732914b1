// Package main provides the entry point for the casebook CLI.
package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/casebookhq/casebook/internal/kb"
	"github.com/casebookhq/casebook/internal/output"
)

// maxSuggestions limits the "did you mean" list on unknown IDs.
const maxSuggestions = 3

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display a single knowledge-base entry",
		Long: `Display one entry in full, including its template code blocks.

The body is rendered as markdown when writing to a terminal; use --raw to
get the verbatim section text for copy-pasting.

Examples:
  casebook show parameterized-test-template-python-pytest
  casebook show regression-test-template --raw
  casebook show unit-test-template-javascript-jest --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], rawFlag)
		},
	}

	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the body verbatim without markdown rendering")

	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, id string, rawFlag bool) error {
	printer := newCmdPrinter(cmd)

	store, _, _, err := openStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	entry, ok := store.Get(id)
	if !ok {
		err := output.NewUserError("entry not found: " + id)
		printer.Error(err)
		suggestEntries(printer, store, id)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(entry)
	}

	outputShowHuman(printer, entry, rawFlag)
	return nil
}

// suggestEntries prints near-miss IDs for an unknown entry lookup.
func suggestEntries(printer *output.Printer, store *kb.Store, id string) {
	entries := store.Entries()
	candidates := make([]string, 0, len(entries))
	for _, entry := range entries {
		candidates = append(candidates, entry.ID)
	}

	matches := fuzzy.Find(id, candidates)
	if len(matches) == 0 {
		printer.Stderr("Run 'casebook list' to see all entries\n")
		return
	}
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	suggestions := make([]string, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, candidates[match.Index])
	}
	printer.Stderr("Did you mean: %s\n", strings.Join(suggestions, ", "))
}

// outputShowHuman outputs an entry in human-readable format.
func outputShowHuman(printer *output.Printer, entry *kb.Entry, rawFlag bool) {
	printer.Section(entry.Title)
	printer.KeyValue("ID", entry.ID)
	printer.KeyValue("Category", string(entry.Category))
	printer.KeyValue("Ecosystem", string(entry.Ecosystem))
	printer.Println()
	printer.Print("%s\n", renderBody(entry.Body, printer.IsTTY() && !rawFlag))
}

// renderBody renders the entry body as terminal markdown. Falls back to
// the verbatim text when rendering is disabled or fails.
func renderBody(body string, render bool) string {
	if !render {
		return body
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return body
	}

	rendered, err := renderer.Render(body)
	if err != nil {
		return body
	}
	return strings.TrimRight(rendered, "\n")
}
