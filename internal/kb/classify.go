package kb

// Section classification is heuristic keyword sniffing on heading text.
// It lives here as explicit, testable functions rather than inline string
// matching in the loader, so a frontmatter override and the heuristic go
// through the same code path.

// categoryMarkers maps heading tokens to categories. Checked in order:
// more specific markers first, so "Parameterized Unit Test" classifies
// as parameterized-test rather than unit-test.
var categoryMarkers = []struct {
	token    string
	category Category
}{
	{"naming", CategoryNamingConvention},
	{"parameterized", CategoryParameterizedTest},
	{"parametrized", CategoryParameterizedTest},
	{"regression", CategoryRegressionTest},
	{"integration", CategoryIntegrationTest},
	{"unit", CategoryUnitTest},
	{"assertion", CategoryAssertionGuideline},
	{"assertions", CategoryAssertionGuideline},
}

// ClassifyCategory derives a category from a section heading.
// Headings that match no marker fall back to assertion-guideline, the
// enumeration's catch-all for prose guidance; ok is false in that case so
// callers can tell a real match from the fallback.
func ClassifyCategory(heading string) (category Category, ok bool) {
	tokens := tokenSet(heading)
	for _, marker := range categoryMarkers {
		if _, found := tokens[marker.token]; found {
			return marker.category, true
		}
	}
	return CategoryAssertionGuideline, false
}

// Language marker tokens for ecosystem sniffing.
var (
	pythonMarkers     = []string{"python", "pytest", "py"}
	javascriptMarkers = []string{"javascript", "jest", "js", "node"}
)

// ClassifyEcosystem derives an ecosystem tag from a section's heading and
// body. A section mentioning only Python markers is tagged python, only
// JavaScript markers javascript. Sections mentioning both (shared
// conventions with examples in each language) or neither are
// language-agnostic.
func ClassifyEcosystem(heading, body string) Ecosystem {
	tokens := tokenSet(heading + " " + body)

	python := containsAny(tokens, pythonMarkers)
	javascript := containsAny(tokens, javascriptMarkers)

	switch {
	case python && !javascript:
		return EcosystemPython
	case javascript && !python:
		return EcosystemJavaScript
	default:
		return EcosystemAgnostic
	}
}

// containsAny reports whether any of the markers is present in the set.
func containsAny(tokens map[string]struct{}, markers []string) bool {
	for _, marker := range markers {
		if _, found := tokens[marker]; found {
			return true
		}
	}
	return false
}
