package kb

// FilterByCategory returns the entries with the given category,
// preserving document order.
func FilterByCategory(entries []*Entry, category Category) []*Entry {
	if category == "" {
		return entries
	}
	var result []*Entry
	for _, entry := range entries {
		if entry.Category == category {
			result = append(result, entry)
		}
	}
	return result
}

// FilterByEcosystem returns the entries with the given ecosystem,
// preserving document order.
func FilterByEcosystem(entries []*Entry, ecosystem Ecosystem) []*Entry {
	if ecosystem == "" {
		return entries
	}
	var result []*Entry
	for _, entry := range entries {
		if entry.Ecosystem == ecosystem {
			result = append(result, entry)
		}
	}
	return result
}

// CountByCategory tallies entries per category.
func CountByCategory(entries []*Entry) map[Category]int {
	counts := make(map[Category]int)
	for _, entry := range entries {
		counts[entry.Category]++
	}
	return counts
}

// CountByEcosystem tallies entries per ecosystem.
func CountByEcosystem(entries []*Entry) map[Ecosystem]int {
	counts := make(map[Ecosystem]int)
	for _, entry := range entries {
		counts[entry.Ecosystem]++
	}
	return counts
}
