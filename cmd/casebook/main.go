// Package main provides the entry point for the casebook CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/casebookhq/casebook/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the casebook CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "casebook",
		Short: "A searchable knowledge base of testing standards and templates",
		Long: `Casebook serves the enterprise testing-standards knowledge base: naming
conventions, unit/integration/regression/parameterized test templates for
Python (pytest) and JavaScript (Jest), and assertion guidelines.

The knowledge base is loaded once from a markdown document (a builtin copy
ships in the binary) and queried by free-text keyword search:

  casebook search parameterized pytest template
  casebook show unit-test-template-python-pytest
  casebook serve     # expose the same store as MCP tools for agents

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'casebook --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Persistent flags available to all subcommands
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, or never")
	cmd.PersistentFlags().String("kb", "", "Path to a knowledge-base document (overrides builtin)")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "query", Title: "Query Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "kb", Title: "Knowledge Base Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Query commands: search, show, list
	addGroupedCommand(cmd, newSearchCmd(), "query")
	addGroupedCommand(cmd, newShowCmd(), "query")
	addGroupedCommand(cmd, newListCmd(), "query")

	// Knowledge base commands: status, export
	addGroupedCommand(cmd, newStatusCmd(), "kb")
	addGroupedCommand(cmd, newExportCmd(), "kb")

	// Agent commands: serve
	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
