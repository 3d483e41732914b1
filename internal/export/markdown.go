package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/casebookhq/casebook/internal/kb"
	"github.com/casebookhq/casebook/internal/output"
)

// SchemaVersion identifies the export format in frontmatter.
const SchemaVersion = "casebook.kb/v1"

// FormatMarkdown formats a single entry as a standalone markdown document:
// YAML frontmatter with the entry metadata, the title as an H1, and the
// body verbatim.
func FormatMarkdown(entry *kb.Entry) string {
	var builder strings.Builder

	writeFrontmatter(&builder, entry)
	fmt.Fprintf(&builder, "# %s\n\n", entry.Title)
	builder.WriteString(entry.Body)
	builder.WriteString("\n")

	return builder.String()
}

// writeFrontmatter writes the YAML frontmatter section.
func writeFrontmatter(builder *strings.Builder, entry *kb.Entry) {
	builder.WriteString("---\n")
	fmt.Fprintf(builder, "schema: %s\n", SchemaVersion)
	fmt.Fprintf(builder, "id: %s\n", entry.ID)
	fmt.Fprintf(builder, "category: %s\n", entry.Category)
	fmt.Fprintf(builder, "ecosystem: %s\n", entry.Ecosystem)
	builder.WriteString("---\n\n")
}

// WriteMarkdownFiles writes each entry as a separate markdown file to the
// output directory. Files are named <entry-id>.md.
func WriteMarkdownFiles(entries []*kb.Entry, dir string) error {
	for _, entry := range entries {
		filename := filepath.Join(dir, entry.ID+".md")
		content := FormatMarkdown(entry)

		if err := os.WriteFile(filename, []byte(content), 0600); err != nil {
			return output.NewSystemErrorWithCause("failed to write file "+filename, err)
		}
	}
	return nil
}
