// Package source locates and reads the knowledge-base document.
// The canonical document ships embedded in the binary; a local override can
// be supplied via flag, environment variable, or the config directory.
package source

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/casebookhq/casebook/internal/config"
)

//go:embed docs/testing-standards.md
var builtinFS embed.FS

// builtinPath is the embedded location of the canonical document.
const builtinPath = "docs/testing-standards.md"

// EnvVar overrides the document path when set.
const EnvVar = "CASEBOOK_KB"

// overrideName is the filename checked in the config directory.
const overrideName = "kb.md"

// Origin labels where Resolve found the document.
const (
	OriginFlag    = "flag"
	OriginEnv     = "env"
	OriginConfig  = "config"
	OriginBuiltin = "built-in"
)

// Document is a resolved knowledge-base document.
type Document struct {
	Text   string
	Origin string // one of the Origin constants
	Path   string // file path, or "embedded" for the builtin
}

// Resolve locates the knowledge-base document.
// Resolution order: explicit path (from the --kb flag or config file) →
// $CASEBOOK_KB → <configdir>/kb.md → embedded builtin.
func Resolve(explicit string) (*Document, error) {
	if explicit != "" {
		return readFile(explicit, OriginFlag)
	}

	if path := os.Getenv(EnvVar); path != "" {
		return readFile(path, OriginEnv)
	}

	if dir := config.Dir(); dir != "" {
		path := filepath.Join(dir, overrideName)
		if _, err := os.Stat(path); err == nil {
			return readFile(path, OriginConfig)
		}
	}

	return Builtin()
}

// Builtin returns the embedded canonical document.
func Builtin() (*Document, error) {
	data, err := builtinFS.ReadFile(builtinPath)
	if err != nil {
		return nil, fmt.Errorf("reading embedded knowledge base: %w", err)
	}
	return &Document{
		Text:   string(data),
		Origin: OriginBuiltin,
		Path:   "embedded",
	}, nil
}

// readFile loads a document from disk with the given origin label.
func readFile(path, origin string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base %s: %w", path, err)
	}
	return &Document{Text: string(data), Origin: origin, Path: path}, nil
}
