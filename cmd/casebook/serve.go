// Package main provides the entry point for the casebook CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	casebookmcp "github.com/casebookhq/casebook/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run casebook as a Model Context Protocol (MCP) server over stdio.

This exposes the knowledge base as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "casebook": {
        "command": "casebook",
        "args": ["serve"]
      }
    }
  }

The document is loaded once at startup; all tools are read-only.

Available tools: search, show, list, status`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, doc, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			server := casebookmcp.NewServer(buildVersion(), store, doc)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
