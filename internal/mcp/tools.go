package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/casebookhq/casebook/internal/kb"
	"github.com/casebookhq/casebook/internal/source"
)

// --- Shared types ---

// SearchResult is one ranked entry returned by the search tool.
type SearchResult struct {
	ID        string `json:"id"        jsonschema:"entry ID"`
	Category  string `json:"category"  jsonschema:"entry category"`
	Ecosystem string `json:"ecosystem" jsonschema:"entry ecosystem tag"`
	Title     string `json:"title"     jsonschema:"section heading text"`
	Body      string `json:"body"      jsonschema:"full section text including code blocks"`
	Score     int    `json:"score"     jsonschema:"number of overlapping query keywords"`
}

// EntryRef is a lightweight reference to an entry, without the body.
type EntryRef struct {
	ID        string `json:"id"        jsonschema:"entry ID"`
	Category  string `json:"category"  jsonschema:"entry category"`
	Ecosystem string `json:"ecosystem" jsonschema:"entry ecosystem tag"`
	Title     string `json:"title"     jsonschema:"section heading text"`
}

// --- Search tool ---

// SearchInput is the input for the search tool.
type SearchInput struct {
	Query     string `json:"query"               jsonschema:"free-text query, e.g. 'parameterized pytest template'"`
	TopK      int    `json:"top_k,omitempty"     jsonschema:"maximum number of results (default 3)"`
	Category  string `json:"category,omitempty"  jsonschema:"restrict results to one category"`
	Ecosystem string `json:"ecosystem,omitempty" jsonschema:"restrict results to one ecosystem"`
}

// SearchOutput is the output for the search tool.
type SearchOutput struct {
	Count   int            `json:"count"             jsonschema:"number of results returned"`
	Results []SearchResult `json:"results,omitempty" jsonschema:"matching entries, best first"`
}

func handleSearch(store *kb.Store) mcp.ToolHandlerFor[SearchInput, SearchOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		topK := input.TopK
		if topK == 0 {
			topK = defaultTopK
		}

		keep, err := parseFilter(input.Category, input.Ecosystem)
		if err != nil {
			return nil, SearchOutput{}, err
		}

		matches, err := store.SearchWhere(input.Query, topK, keep)
		if err != nil {
			if errors.Is(err, kb.ErrInvalidTopK) {
				return nil, SearchOutput{}, fmt.Errorf("invalid top_k %d: %w", input.TopK, err)
			}
			return nil, SearchOutput{}, fmt.Errorf("searching knowledge base: %w", err)
		}

		return nil, SearchOutput{
			Count:   len(matches),
			Results: toSearchResults(matches),
		}, nil
	}
}

// --- Show tool ---

// ShowInput is the input for the show tool.
type ShowInput struct {
	ID string `json:"id" jsonschema:"entry ID to display"`
}

// ShowOutput is the output for the show tool.
type ShowOutput struct {
	Entry *kb.Entry `json:"entry" jsonschema:"the knowledge-base entry"`
}

func handleShow(store *kb.Store) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		if input.ID == "" {
			return nil, ShowOutput{}, errors.New("specify an entry id")
		}

		entry, ok := store.Get(input.ID)
		if !ok {
			return nil, ShowOutput{}, fmt.Errorf("entry not found: %s", input.ID)
		}

		return nil, ShowOutput{Entry: entry}, nil
	}
}

// --- List tool ---

// ListInput is the input for the list tool.
type ListInput struct {
	Category  string `json:"category,omitempty"  jsonschema:"filter by category"`
	Ecosystem string `json:"ecosystem,omitempty" jsonschema:"filter by ecosystem"`
}

// ListOutput is the output for the list tool.
type ListOutput struct {
	Count   int        `json:"count"             jsonschema:"number of entries returned"`
	Entries []EntryRef `json:"entries,omitempty" jsonschema:"entry references in document order"`
}

func handleList(store *kb.Store) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
		category, ecosystem, err := parseTags(input.Category, input.Ecosystem)
		if err != nil {
			return nil, ListOutput{}, err
		}

		entries := store.Entries()
		entries = kb.FilterByCategory(entries, category)
		entries = kb.FilterByEcosystem(entries, ecosystem)

		return nil, ListOutput{
			Count:   len(entries),
			Entries: toEntryRefs(entries),
		}, nil
	}
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Source     string         `json:"source"      jsonschema:"where the document came from: flag, env, config, or built-in"`
	Path       string         `json:"path"        jsonschema:"document path, or 'embedded' for the builtin"`
	EntryCount int            `json:"entry_count" jsonschema:"total number of entries"`
	Categories map[string]int `json:"categories"  jsonschema:"entry count per category"`
	Ecosystems map[string]int `json:"ecosystems"  jsonschema:"entry count per ecosystem"`
}

func handleStatus(store *kb.Store, doc *source.Document) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		entries := store.Entries()

		return nil, StatusOutput{
			Source:     doc.Origin,
			Path:       doc.Path,
			EntryCount: len(entries),
			Categories: categoryTallies(entries),
			Ecosystems: ecosystemTallies(entries),
		}, nil
	}
}
