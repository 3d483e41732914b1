package kb

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedDocument is returned by Load when the input contains no
// recognizable section headings. The document is static input, so there is
// nothing to retry; the caller surfaces this immediately.
var ErrMalformedDocument = errors.New("no section headings found in document")

// headingPrefix marks the start of a knowledge-base section.
const headingPrefix = "## "

// fencePrefix marks a fenced code block. Heading-looking lines inside a
// fence belong to the template code, not to the document structure.
const fencePrefix = "```"

// sectionMeta is the optional YAML frontmatter a section may carry directly
// under its heading to override the heuristic classification:
//
//	## How to Query
//	---
//	category: assertion-guideline
//	ecosystem: language-agnostic
//	---
type sectionMeta struct {
	ID        string `yaml:"id"`
	Category  string `yaml:"category"`
	Ecosystem string `yaml:"ecosystem"`
}

// rawSection is a heading plus its verbatim body lines, before classification.
type rawSection struct {
	title string
	lines []string
}

// Load parses a knowledge-base document into a read-only Store.
// Sections are split at "## " headings (fenced code blocks are skipped),
// classified into a category and ecosystem, and tokenized into keywords.
// Returns ErrMalformedDocument when the text has no section headings.
func Load(document string) (*Store, error) {
	sections := splitSections(document)
	if len(sections) == 0 {
		return nil, ErrMalformedDocument
	}

	store := &Store{byID: make(map[string]*Entry, len(sections))}
	for _, section := range sections {
		entry, err := buildEntry(section, len(store.entries))
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", section.title, err)
		}
		store.add(entry)
	}
	return store, nil
}

// splitSections scans the document line by line and groups content under
// "## " headings. Content before the first heading (the document title and
// preamble) is discarded.
func splitSections(document string) []rawSection {
	var sections []rawSection
	var current *rawSection
	inFence := false

	for line := range strings.Lines(document) {
		line = strings.TrimRight(line, "\n")

		if strings.HasPrefix(strings.TrimSpace(line), fencePrefix) {
			inFence = !inFence
		}

		if !inFence && strings.HasPrefix(line, headingPrefix) {
			title := strings.TrimSpace(strings.TrimPrefix(line, headingPrefix))
			sections = append(sections, rawSection{title: title})
			current = &sections[len(sections)-1]
			continue
		}

		if current != nil {
			current.lines = append(current.lines, line)
		}
	}

	return sections
}

// buildEntry classifies a raw section into an Entry.
func buildEntry(section rawSection, order int) (*Entry, error) {
	if section.title == "" {
		return nil, errEmptyTitle
	}

	meta, bodyLines, err := extractMeta(section.lines)
	if err != nil {
		return nil, err
	}
	body := strings.TrimSpace(strings.Join(bodyLines, "\n"))

	entry := &Entry{
		Title: section.title,
		Body:  body,
		order: order,
	}

	if err := applyMeta(entry, meta); err != nil {
		return nil, err
	}
	if entry.ID == "" {
		entry.ID = GenerateID(section.title)
	}
	if entry.Category == "" {
		entry.Category, _ = ClassifyCategory(section.title)
	}
	if entry.Ecosystem == "" {
		entry.Ecosystem = ClassifyEcosystem(section.title, body)
	}

	entry.Keywords = Tokenize(section.title + " " + body)
	entry.keywordSet = make(map[string]struct{}, len(entry.Keywords))
	for _, keyword := range entry.Keywords {
		entry.keywordSet[keyword] = struct{}{}
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// extractMeta pulls an optional frontmatter block off the start of a
// section body. Returns the parsed metadata and the remaining body lines.
func extractMeta(lines []string) (sectionMeta, []string, error) {
	var meta sectionMeta

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start >= len(lines) || strings.TrimSpace(lines[start]) != "---" {
		return meta, lines, nil
	}

	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "---" {
			continue
		}
		block := strings.Join(lines[start+1:i], "\n")
		if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
			return meta, nil, fmt.Errorf("parsing section frontmatter: %w", err)
		}
		return meta, lines[i+1:], nil
	}

	// Opening --- with no closing marker: treat as plain body content.
	return sectionMeta{}, lines, nil
}

// applyMeta copies frontmatter overrides onto the entry, validating the
// enum values.
func applyMeta(entry *Entry, meta sectionMeta) error {
	entry.ID = strings.TrimSpace(meta.ID)

	if meta.Category != "" {
		category, err := ParseCategory(meta.Category)
		if err != nil {
			return err
		}
		entry.Category = category
	}
	if meta.Ecosystem != "" {
		ecosystem, err := ParseEcosystem(meta.Ecosystem)
		if err != nil {
			return err
		}
		entry.Ecosystem = ecosystem
	}
	return nil
}
