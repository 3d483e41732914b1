// Package kb provides the testing-standards knowledge base: a read-only,
// in-memory store of template entries parsed once from a markdown document.
package kb

import (
	"errors"
	"fmt"
	"strings"
)

// Category classifies what kind of guidance an entry carries.
type Category string

// The fixed set of entry categories.
const (
	CategoryNamingConvention   Category = "naming-convention"
	CategoryUnitTest           Category = "unit-test"
	CategoryIntegrationTest    Category = "integration-test"
	CategoryRegressionTest     Category = "regression-test"
	CategoryParameterizedTest  Category = "parameterized-test"
	CategoryAssertionGuideline Category = "assertion-guideline"
)

// Categories lists all valid categories in a stable order.
func Categories() []Category {
	return []Category{
		CategoryNamingConvention,
		CategoryUnitTest,
		CategoryIntegrationTest,
		CategoryRegressionTest,
		CategoryParameterizedTest,
		CategoryAssertionGuideline,
	}
}

// ParseCategory converts a string to a Category.
// Returns an error for values outside the fixed set.
func ParseCategory(value string) (Category, error) {
	candidate := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, category := range Categories() {
		if candidate == category {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", value)
}

// Ecosystem tags which language ecosystem an entry applies to.
type Ecosystem string

// The fixed set of ecosystems. Entries that apply to both (or neither)
// language are tagged language-agnostic.
const (
	EcosystemPython     Ecosystem = "python"
	EcosystemJavaScript Ecosystem = "javascript"
	EcosystemAgnostic   Ecosystem = "language-agnostic"
)

// Ecosystems lists all valid ecosystems in a stable order.
func Ecosystems() []Ecosystem {
	return []Ecosystem{EcosystemPython, EcosystemJavaScript, EcosystemAgnostic}
}

// ParseEcosystem converts a string to an Ecosystem.
// Returns an error for values outside the fixed set.
func ParseEcosystem(value string) (Ecosystem, error) {
	candidate := Ecosystem(strings.ToLower(strings.TrimSpace(value)))
	for _, ecosystem := range Ecosystems() {
		if candidate == ecosystem {
			return ecosystem, nil
		}
	}
	return "", fmt.Errorf("unknown ecosystem %q", value)
}

// Entry is one documented example in the knowledge base: a naming
// convention, code template, or guideline with its full section text.
type Entry struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Ecosystem Ecosystem `json:"ecosystem"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Keywords  []string  `json:"keywords,omitempty"`

	// order is the position of the section in the source document.
	// It breaks ranking ties so results stay deterministic.
	order int

	// keywordSet mirrors Keywords for O(1) overlap checks.
	keywordSet map[string]struct{}
}

// Order returns the entry's position in the source document.
func (e *Entry) Order() int {
	return e.order
}

// HasKeyword reports whether token is one of the entry's keywords.
func (e *Entry) HasKeyword(token string) bool {
	_, ok := e.keywordSet[token]
	return ok
}

// ValidationError is returned when an entry is missing required fields,
// typically due to a bad frontmatter override in the source document.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// Validate checks that all required fields are present and well-formed.
func (e *Entry) Validate() error {
	var missing []string
	if e.ID == "" {
		missing = append(missing, "id")
	}
	if e.Title == "" {
		missing = append(missing, "title")
	}
	if e.Body == "" {
		missing = append(missing, "body")
	}
	if _, err := ParseCategory(string(e.Category)); err != nil {
		missing = append(missing, "category")
	}
	if _, err := ParseEcosystem(string(e.Ecosystem)); err != nil {
		missing = append(missing, "ecosystem")
	}

	if len(missing) > 0 {
		return &ValidationError{
			Fields:  missing,
			Message: "missing or invalid fields",
		}
	}
	return nil
}

// GenerateID derives a stable slug identifier from a section title.
// Example: "Unit Test Template (Python – PyTest)" -> "unit-test-template-python-pytest".
func GenerateID(title string) string {
	var builder strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			builder.WriteRune(r)
			lastDash = false
		case !lastDash:
			builder.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(builder.String(), "-")
}

// errEmptyTitle reports a section heading with no usable text.
var errEmptyTitle = errors.New("section heading has no text")
