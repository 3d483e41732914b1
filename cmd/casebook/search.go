// Package main provides the entry point for the casebook CLI.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/casebookhq/casebook/internal/kb"
	"github.com/casebookhq/casebook/internal/output"
)

// searchResult is the JSON shape for one ranked result.
type searchResult struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Ecosystem string `json:"ecosystem"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Score     int    `json:"score"`
}

// newSearchCmd creates the search command.
func newSearchCmd() *cobra.Command {
	var topFlag int
	var categoryFlag string
	var ecosystemFlag string
	var onelineFlag bool

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search the knowledge base by free-text query",
		Long: `Search the knowledge base for matching template entries.

Matching is keyword overlap: the query is tokenized the same way entries
are, and entries are ranked by the number of shared tokens. Ties keep
document order, so results are deterministic.

Examples:
  casebook search "parameterized pytest template"
  casebook search "regression test for bug"
  casebook search "jest integration test template"
  casebook search unit test --ecosystem javascript
  casebook search assertions --top 5 --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, topFlag, categoryFlag, ecosystemFlag, onelineFlag)
		},
	}

	cmd.Flags().IntVar(&topFlag, "top", 0, "Maximum number of results (default from config, fallback 3)")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Restrict results to one category")
	cmd.Flags().StringVar(&ecosystemFlag, "ecosystem", "", "Restrict results to one ecosystem")
	cmd.Flags().BoolVar(&onelineFlag, "oneline", false, "Show compact table: id, score, title")

	return cmd
}

// runSearch executes the search command.
func runSearch(cmd *cobra.Command, args []string, topFlag int, categoryFlag, ecosystemFlag string, onelineFlag bool) error {
	printer := newCmdPrinter(cmd)

	store, _, cfg, err := openStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	topK := cfg.TopK
	if cmd.Flags().Changed("top") {
		topK = topFlag
	}

	keep, err := parseSearchFilter(categoryFlag, ecosystemFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	query := strings.Join(args, " ")
	matches, err := store.SearchWhere(query, topK, keep)
	if err != nil {
		if errors.Is(err, kb.ErrInvalidTopK) {
			err = output.NewUserError("--top must be a positive integer")
		}
		printer.Error(err)
		return err
	}

	return outputSearchResults(printer, matches, onelineFlag)
}

// parseSearchFilter validates the --category/--ecosystem flags into a
// search predicate.
func parseSearchFilter(categoryFlag, ecosystemFlag string) (func(*kb.Entry) bool, error) {
	var category kb.Category
	var ecosystem kb.Ecosystem

	if categoryFlag != "" {
		parsed, err := kb.ParseCategory(categoryFlag)
		if err != nil {
			return nil, output.NewUserError(err.Error())
		}
		category = parsed
	}
	if ecosystemFlag != "" {
		parsed, err := kb.ParseEcosystem(ecosystemFlag)
		if err != nil {
			return nil, output.NewUserError(err.Error())
		}
		ecosystem = parsed
	}
	return kb.MatchesFilter(category, ecosystem), nil
}

// outputSearchResults outputs matches based on the output mode.
func outputSearchResults(printer *output.Printer, matches []kb.Match, onelineFlag bool) error {
	if printer.IsJSON() {
		results := make([]searchResult, 0, len(matches))
		for _, match := range matches {
			results = append(results, searchResult{
				ID:        match.Entry.ID,
				Category:  string(match.Entry.Category),
				Ecosystem: string(match.Entry.Ecosystem),
				Title:     match.Entry.Title,
				Body:      match.Entry.Body,
				Score:     match.Score,
			})
		}
		return printer.WriteJSON(map[string]any{
			"count":   len(results),
			"results": results,
		})
	}

	if len(matches) == 0 {
		printer.Println("No matching entries")
		return nil
	}

	if onelineFlag {
		outputSearchOneline(printer, matches)
		return nil
	}

	outputSearchHuman(printer, matches)
	return nil
}

// outputSearchOneline outputs matches in compact table format.
func outputSearchOneline(printer *output.Printer, matches []kb.Match) {
	headers := []string{"ID", "Score", "Title"}
	rows := make([][]string, 0, len(matches))
	for _, match := range matches {
		rows = append(rows, []string{match.Entry.ID, fmt.Sprintf("%d", match.Score), match.Entry.Title})
	}
	printer.Table(headers, rows)
}

// outputSearchHuman outputs matches in human-readable format.
func outputSearchHuman(printer *output.Printer, matches []kb.Match) {
	styles := printer.Styles()
	for rank, match := range matches {
		entry := match.Entry
		printer.Print("%s %s  %s\n",
			styles.Bold.Render(fmt.Sprintf("%d.", rank+1)),
			styles.Title.Render(entry.Title),
			styles.Score.Render(fmt.Sprintf("(score %d)", match.Score)))
		printer.Print("   %s  %s\n",
			styles.Muted.Render(entry.ID),
			styles.Tag.Render(string(entry.Category)+" / "+string(entry.Ecosystem)))
	}
	printer.Stderr("\nUse 'casebook show <id>' to display a full entry\n")
}
