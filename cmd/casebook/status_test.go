// Package main provides the entry point for the casebook CLI.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStatusCommand_JSON(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := runCommand(t, "status", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result statusResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not JSON: %v\nOutput: %s", err, stdout)
	}
	if result.Source != "built-in" {
		t.Errorf("Source = %q, want built-in", result.Source)
	}
	if result.Path != "embedded" {
		t.Errorf("Path = %q, want embedded", result.Path)
	}
	if result.EntryCount != 10 {
		t.Errorf("EntryCount = %d, want 10", result.EntryCount)
	}
	if result.Categories["unit-test"] != 2 {
		t.Errorf("categories = %v", result.Categories)
	}
	if result.Ecosystems["language-agnostic"] != 4 {
		t.Errorf("ecosystems = %v", result.Ecosystems)
	}
}

func TestStatusCommand_Human(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := runCommand(t, "status")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, expected := range []string{"Knowledge Base", "Source: built-in", "Entries: 10", "Categories", "Ecosystems"} {
		if !strings.Contains(stdout, expected) {
			t.Errorf("output should contain %q:\n%s", expected, stdout)
		}
	}
}

func TestStatusCommand_KBFlag(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "standards.md")
	doc := "## Unit Test Template (Python – PyTest)\n\nOne behavior per test.\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCommand(t, "status", "--kb", path, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result statusResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if result.Source != "flag" {
		t.Errorf("Source = %q, want flag", result.Source)
	}
	if result.Path != path {
		t.Errorf("Path = %q, want %q", result.Path, path)
	}
	if result.EntryCount != 1 {
		t.Errorf("EntryCount = %d, want 1", result.EntryCount)
	}
}

func TestStatusCommand_MalformedKB(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "broken.md")
	if err := os.WriteFile(path, []byte("just prose, no headings\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := runCommand(t, "status", "--kb", path)
	if err == nil {
		t.Fatal("headingless document should fail")
	}
	if !strings.Contains(stderr, "no section headings found") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestStatusCommand_EnvOverride(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "env.md")
	doc := "## Regression Test Template\n\nPin bugs.\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CASEBOOK_KB", path)

	stdout, _, err := runCommand(t, "status", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result statusResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if result.Source != "env" {
		t.Errorf("Source = %q, want env", result.Source)
	}
}
