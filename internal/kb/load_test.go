package kb

import (
	"errors"
	"strings"
	"testing"
)

// testDocument is a small synthetic knowledge base used across load and
// search tests.
const testDocument = `# Team Testing Handbook

Preamble text before the first section is not an entry.

## Test Naming Conventions

Name tests after behavior, in Python and JavaScript alike.

## Unit Test Template (Python – PyTest)

` + "```python" + `
import pytest

def test_total_sums_items():
    assert total([1, 2]) == 3
` + "```" + `

## Integration Test Template (JavaScript – Jest)

` + "```javascript" + `
it("round-trips an order", async () => {});
` + "```" + `

## Regression Test Template

Pin every production bug. Example: bug_342 rounding regression.

## Parameterized Test Template (Python – PyTest)

Use pytest.mark.parametrize for input tables.
`

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Load(testDocument)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return store
}

// TestLoad_SplitsSections verifies section splitting and entry construction.
func TestLoad_SplitsSections(t *testing.T) {
	store := loadTestStore(t)

	if store.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", store.Len())
	}

	entries := store.Entries()
	wantIDs := []string{
		"test-naming-conventions",
		"unit-test-template-python-pytest",
		"integration-test-template-javascript-jest",
		"regression-test-template",
		"parameterized-test-template-python-pytest",
	}
	for i, wantID := range wantIDs {
		if entries[i].ID != wantID {
			t.Errorf("entries[%d].ID = %q, want %q", i, entries[i].ID, wantID)
		}
		if entries[i].Order() != i {
			t.Errorf("entries[%d].Order() = %d, want %d", i, entries[i].Order(), i)
		}
	}
}

// TestLoad_Classification verifies category and ecosystem tagging.
func TestLoad_Classification(t *testing.T) {
	store := loadTestStore(t)

	tests := []struct {
		id            string
		wantCategory  Category
		wantEcosystem Ecosystem
	}{
		{"test-naming-conventions", CategoryNamingConvention, EcosystemAgnostic},
		{"unit-test-template-python-pytest", CategoryUnitTest, EcosystemPython},
		{"integration-test-template-javascript-jest", CategoryIntegrationTest, EcosystemJavaScript},
		{"regression-test-template", CategoryRegressionTest, EcosystemAgnostic},
		{"parameterized-test-template-python-pytest", CategoryParameterizedTest, EcosystemPython},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			entry, ok := store.Get(tt.id)
			if !ok {
				t.Fatalf("Get(%q) not found", tt.id)
			}
			if entry.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", entry.Category, tt.wantCategory)
			}
			if entry.Ecosystem != tt.wantEcosystem {
				t.Errorf("Ecosystem = %q, want %q", entry.Ecosystem, tt.wantEcosystem)
			}
		})
	}
}

// TestLoad_BodyVerbatim verifies bodies keep their code blocks untouched.
func TestLoad_BodyVerbatim(t *testing.T) {
	store := loadTestStore(t)

	entry, ok := store.Get("unit-test-template-python-pytest")
	if !ok {
		t.Fatal("entry not found")
	}
	if !strings.Contains(entry.Body, "def test_total_sums_items():") {
		t.Errorf("body should keep code verbatim, got %q", entry.Body)
	}
}

// TestLoad_HeadingInsideFence verifies that ## lines inside code blocks do
// not start a new section.
func TestLoad_HeadingInsideFence(t *testing.T) {
	document := "## Shell Test Recipe\n\n```\n## not a heading\necho ok\n```\n"
	store, err := Load(document)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}
	entry := store.Entries()[0]
	if !strings.Contains(entry.Body, "## not a heading") {
		t.Errorf("fenced heading should stay in body, got %q", entry.Body)
	}
}

// TestLoad_NoHeadings verifies the malformed-document error.
func TestLoad_NoHeadings(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"title only", "# Testing Standards\n\nJust prose, no sections.\n"},
		{"empty document", ""},
		{"plain text", "guidelines without any structure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.document)
			if !errors.Is(err, ErrMalformedDocument) {
				t.Errorf("Load() error = %v, want ErrMalformedDocument", err)
			}
		})
	}
}

// TestLoad_FrontmatterOverrides verifies per-section metadata overrides.
func TestLoad_FrontmatterOverrides(t *testing.T) {
	document := `## How to Query

---
id: querying
category: assertion-guideline
ecosystem: language-agnostic
---

Search with free text.
`
	store, err := Load(document)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	entry, ok := store.Get("querying")
	if !ok {
		t.Fatal("frontmatter id override not applied")
	}
	if entry.Category != CategoryAssertionGuideline {
		t.Errorf("Category = %q, want assertion-guideline", entry.Category)
	}
	if entry.Ecosystem != EcosystemAgnostic {
		t.Errorf("Ecosystem = %q, want language-agnostic", entry.Ecosystem)
	}
	if strings.Contains(entry.Body, "---") {
		t.Errorf("frontmatter should be stripped from body, got %q", entry.Body)
	}
	if !strings.Contains(entry.Body, "Search with free text.") {
		t.Errorf("body content missing, got %q", entry.Body)
	}
}

// TestLoad_InvalidFrontmatter verifies bad override values fail the load.
func TestLoad_InvalidFrontmatter(t *testing.T) {
	document := `## Some Section

---
category: smoke-test
---

Body.
`
	if _, err := Load(document); err == nil {
		t.Error("Load() should reject unknown category in frontmatter")
	}
}

// TestLoad_DuplicateTitles verifies ID deduplication.
func TestLoad_DuplicateTitles(t *testing.T) {
	document := "## Unit Test Template\n\nFirst.\n\n## Unit Test Template\n\nSecond.\n"
	store, err := Load(document)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}

	if _, ok := store.Get("unit-test-template"); !ok {
		t.Error("first entry should keep the plain slug")
	}
	second, ok := store.Get("unit-test-template-2")
	if !ok {
		t.Fatal("second entry should get a numbered slug")
	}
	if !strings.Contains(second.Body, "Second.") {
		t.Errorf("wrong body on deduplicated entry: %q", second.Body)
	}
}

// TestLoad_EmptyBodySection verifies a heading with no content fails
// validation rather than producing a bodyless entry.
func TestLoad_EmptyBodySection(t *testing.T) {
	if _, err := Load("## Lonely Heading\n"); err == nil {
		t.Error("Load() should reject a section with no body")
	}
}
