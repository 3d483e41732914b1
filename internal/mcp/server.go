// Package mcp provides a Model Context Protocol server for casebook.
// It exposes the knowledge base as MCP tools so any MCP-capable retrieval
// or chat agent can search the template collection.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/casebookhq/casebook/internal/kb"
	"github.com/casebookhq/casebook/internal/source"
)

// NewServer creates an MCP server with all casebook tools registered.
// The store is immutable, so concurrent tool calls need no locking.
func NewServer(version string, store *kb.Store, doc *source.Document) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "casebook",
		Version: version,
	}, nil)
	registerTools(server, store, doc)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
// Every casebook tool is read-only: the store never changes after load.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all casebook tools to the server.
func registerTools(server *mcp.Server, store *kb.Store, doc *source.Document) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "search",
		Description: "Search the testing-standards knowledge base with a free-text query. " +
			"Returns the best-matching template entries ranked by keyword overlap. " +
			"Optionally narrow by category or ecosystem.",
		Annotations: readOnlyAnnotations(),
	}, handleSearch(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show",
		Description: "Display a single knowledge-base entry by ID, including its full body text.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List knowledge-base entries. Supports filtering by category and ecosystem.",
		Annotations: readOnlyAnnotations(),
	}, handleList(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show knowledge-base state: document source, entry count, and per-category/ecosystem tallies.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(store, doc))
}
