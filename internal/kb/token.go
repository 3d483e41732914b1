package kb

import (
	"strings"
	"unicode"
)

// stopwords are common words excluded from keyword matching. The list is
// intentionally small: retrieval quality here comes from the template
// vocabulary (pytest, jest, regression, ...), not from clever filtering.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "can": {}, "do": {}, "for": {}, "from": {},
	"has": {}, "have": {}, "how": {}, "if": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "our": {},
	"should": {}, "that": {}, "the": {}, "this": {}, "to": {},
	"we": {}, "when": {}, "which": {}, "with": {}, "you": {}, "your": {},
}

// Tokenize splits text into lowercase keyword tokens.
// Runs of letters and digits form tokens; everything else (punctuation,
// underscores, dashes) is a separator, so "bug_342" yields "bug" and "342".
// Stopwords are dropped and duplicates removed; first-seen order is kept.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, stop := stopwords[field]; stop {
			continue
		}
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		tokens = append(tokens, field)
	}
	return tokens
}

// tokenSet returns the tokens of text as a set.
func tokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
