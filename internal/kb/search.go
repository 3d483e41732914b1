package kb

import (
	"errors"
	"sort"
)

// ErrInvalidTopK is returned by Search when the result limit is not a
// positive integer.
var ErrInvalidTopK = errors.New("top_k must be a positive integer")

// Match pairs an entry with its relevance score for one query.
type Match struct {
	Entry *Entry
	Score int
}

// Search returns up to topK entries matching the free-text query, ordered
// by descending score and then by document order.
//
// The score is the number of distinct query tokens that appear in the
// entry's keywords; entries with no overlap are excluded. An empty or
// all-stopword query returns no matches and no error. Searching the same
// store with the same arguments always yields the same result.
func (s *Store) Search(query string, topK int) ([]Match, error) {
	return s.SearchWhere(query, topK, nil)
}

// SearchWhere is Search with an optional entry predicate. Entries failing
// the predicate are dropped before the topK cut, so a filtered search
// still returns up to topK results. A nil predicate keeps every entry.
func (s *Store) SearchWhere(query string, topK int, keep func(*Entry) bool) ([]Match, error) {
	if topK <= 0 {
		return nil, ErrInvalidTopK
	}

	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return []Match{}, nil
	}

	var matches []Match
	for _, entry := range s.entries {
		if keep != nil && !keep(entry) {
			continue
		}
		score := overlap(entry, queryTokens)
		if score == 0 {
			continue
		}
		matches = append(matches, Match{Entry: entry, Score: score})
	}

	// Entries were scanned in document order, so a stable sort on score
	// alone preserves document order among ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	if matches == nil {
		matches = []Match{}
	}
	return matches, nil
}

// overlap counts how many of the query tokens are entry keywords.
// Tokenize deduplicates, so each query token contributes at most once.
func overlap(entry *Entry, queryTokens []string) int {
	count := 0
	for _, token := range queryTokens {
		if entry.HasKeyword(token) {
			count++
		}
	}
	return count
}

// MatchesFilter builds a predicate for SearchWhere from optional category
// and ecosystem constraints. Zero values match everything.
func MatchesFilter(category Category, ecosystem Ecosystem) func(*Entry) bool {
	if category == "" && ecosystem == "" {
		return nil
	}
	return func(entry *Entry) bool {
		if category != "" && entry.Category != category {
			return false
		}
		if ecosystem != "" && entry.Ecosystem != ecosystem {
			return false
		}
		return true
	}
}
