package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/casebookhq/casebook/internal/kb"
	"github.com/casebookhq/casebook/internal/output"
)

// FormatJSON outputs the entries as a JSON array to the printer.
func FormatJSON(printer *output.Printer, entries []*kb.Entry) error {
	return printer.WriteJSON(entries)
}

// WriteJSONFiles writes each entry as a separate JSON file to the output
// directory. Files are named <entry-id>.json.
func WriteJSONFiles(entries []*kb.Entry, dir string) error {
	for _, entry := range entries {
		filename := filepath.Join(dir, entry.ID+".json")

		data, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return output.NewSystemError(fmt.Sprintf("failed to marshal entry %s: %v", entry.ID, err))
		}

		if err := os.WriteFile(filename, data, 0600); err != nil {
			return output.NewSystemErrorWithCause("failed to write file "+filename, err)
		}
	}
	return nil
}
