package classifier

import "strings"

// AuthorFilter restricts classification to records by author. Terms match
// as case-insensitive substrings of the record's author.
type AuthorFilter struct {
	// Include keeps only records whose author contains at least one term.
	Include []string

	// Exclude drops records whose author contains any term.
	// Exclusion is checked after inclusion.
	Exclude []string
}

// IsEmpty reports whether the filter lets every record through.
func (f AuthorFilter) IsEmpty() bool {
	return len(f.Include) == 0 && len(f.Exclude) == 0
}

// Matches reports whether a record by author passes the filter.
func (f AuthorFilter) Matches(author string) bool {
	author = strings.ToLower(author)

	if len(f.Include) > 0 && !containsAny(author, f.Include) {
		return false
	}
	if len(f.Exclude) > 0 && containsAny(author, f.Exclude) {
		return false
	}
	return true
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
