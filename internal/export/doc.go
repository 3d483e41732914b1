// Package export provides formatting and file output for knowledge-base entries.
//
// Two formats are supported:
//
//   - Markdown: one document per entry with YAML frontmatter (schema, id,
//     category, ecosystem), the section title as an H1, and the body kept
//     verbatim. Suitable for re-publishing templates into a docs site.
//   - JSON: the full entry structure, for downstream tooling.
//
// Entries can be streamed to a printer (FormatJSON) or written as one file
// per entry (WriteMarkdownFiles, WriteJSONFiles), named by entry ID.
package export
