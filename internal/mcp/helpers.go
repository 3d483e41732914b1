package mcp

import (
	"fmt"

	"github.com/casebookhq/casebook/internal/kb"
)

// defaultTopK is used when a search call omits top_k.
const defaultTopK = 3

// parseTags validates optional category/ecosystem strings into their enum
// types. Empty strings stay empty (no filter).
func parseTags(categoryStr, ecosystemStr string) (kb.Category, kb.Ecosystem, error) {
	var category kb.Category
	var ecosystem kb.Ecosystem

	if categoryStr != "" {
		parsed, err := kb.ParseCategory(categoryStr)
		if err != nil {
			return "", "", fmt.Errorf("invalid category: %w", err)
		}
		category = parsed
	}
	if ecosystemStr != "" {
		parsed, err := kb.ParseEcosystem(ecosystemStr)
		if err != nil {
			return "", "", fmt.Errorf("invalid ecosystem: %w", err)
		}
		ecosystem = parsed
	}
	return category, ecosystem, nil
}

// parseFilter builds a SearchWhere predicate from optional tag strings.
func parseFilter(categoryStr, ecosystemStr string) (func(*kb.Entry) bool, error) {
	category, ecosystem, err := parseTags(categoryStr, ecosystemStr)
	if err != nil {
		return nil, err
	}
	return kb.MatchesFilter(category, ecosystem), nil
}

// toSearchResults converts matches to the tool output shape.
func toSearchResults(matches []kb.Match) []SearchResult {
	results := make([]SearchResult, 0, len(matches))
	for _, match := range matches {
		results = append(results, SearchResult{
			ID:        match.Entry.ID,
			Category:  string(match.Entry.Category),
			Ecosystem: string(match.Entry.Ecosystem),
			Title:     match.Entry.Title,
			Body:      match.Entry.Body,
			Score:     match.Score,
		})
	}
	return results
}

// toEntryRefs converts entries to lightweight references.
func toEntryRefs(entries []*kb.Entry) []EntryRef {
	refs := make([]EntryRef, 0, len(entries))
	for _, entry := range entries {
		refs = append(refs, EntryRef{
			ID:        entry.ID,
			Category:  string(entry.Category),
			Ecosystem: string(entry.Ecosystem),
			Title:     entry.Title,
		})
	}
	return refs
}

// categoryTallies counts entries per category as a string-keyed map for
// JSON output.
func categoryTallies(entries []*kb.Entry) map[string]int {
	tallies := make(map[string]int)
	for category, count := range kb.CountByCategory(entries) {
		tallies[string(category)] = count
	}
	return tallies
}

// ecosystemTallies counts entries per ecosystem as a string-keyed map for
// JSON output.
func ecosystemTallies(entries []*kb.Entry) map[string]int {
	tallies := make(map[string]int)
	for ecosystem, count := range kb.CountByEcosystem(entries) {
		tallies[string(ecosystem)] = count
	}
	return tallies
}
