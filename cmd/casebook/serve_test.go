// Package main provides the entry point for the casebook CLI.
package main

import (
	"strings"
	"testing"
)

func TestServeCommand_Registered(t *testing.T) {
	root := newRootCmd()

	serve, _, err := root.Find([]string{"serve"})
	if err != nil {
		t.Fatalf("Find(serve) error = %v", err)
	}
	if serve.Use != "serve" {
		t.Errorf("Use = %q", serve.Use)
	}
	if serve.GroupID != "agent" {
		t.Errorf("GroupID = %q, want agent", serve.GroupID)
	}
}

func TestServeCommand_Help(t *testing.T) {
	stdout, _, err := runCommand(t, "serve", "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, expected := range []string{"stdio", "mcpServers", "search, show, list, status"} {
		if !strings.Contains(stdout, expected) {
			t.Errorf("help should mention %q", expected)
		}
	}
}
