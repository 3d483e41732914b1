package kb

import (
	"fmt"
	"slices"
)

// Store is the loaded knowledge base. It is immutable after Load returns:
// no entry is added, changed, or removed at query time, so a single Store
// may be shared by concurrent callers without locking.
type Store struct {
	entries []*Entry
	byID    map[string]*Entry
}

// add appends an entry, suffixing the ID if a section with the same slug
// already exists ("unit-test-template", "unit-test-template-2", ...).
func (s *Store) add(entry *Entry) {
	if _, taken := s.byID[entry.ID]; taken {
		base := entry.ID
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s-%d", base, n)
			if _, exists := s.byID[candidate]; !exists {
				entry.ID = candidate
				break
			}
		}
	}
	s.byID[entry.ID] = entry
	s.entries = append(s.entries, entry)
}

// Entries returns all entries in document order.
// The returned slice is a copy; the entries themselves are shared and must
// be treated as read-only.
func (s *Store) Entries() []*Entry {
	return slices.Clone(s.entries)
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (*Entry, bool) {
	entry, ok := s.byID[id]
	return entry, ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}
