package search

import (
	"strings"

	"github.com/peoplescope/peoplescope/models"
)

// FilterResults returns the subsequence of results whose searchable text
// contains the normalized query, case-insensitively, preserving the input
// order. The searchable text of a record is the space-joined concatenation
// of name, gender, marital status, and location.
//
// A query that fails [ValidateQuery] is an identity passthrough: the input
// slice is returned as-is, not an empty set.
func FilterResults(results []models.Person, query string) []models.Person {
	if !ValidateQuery(query) {
		return results
	}

	needle := strings.ToLower(NormalizeQuery(query))

	matched := make([]models.Person, 0, len(results))
	for _, r := range results {
		haystack := strings.ToLower(strings.Join([]string{r.Name, r.Gender, r.MaritalStatus, r.Location}, " "))
		if strings.Contains(haystack, needle) {
			matched = append(matched, r)
		}
	}

	return matched
}

// IDSource produces unique identifiers. The production implementation is
// utils.UUIDGenerator; tests inject a deterministic counter.
type IDSource interface {
	Generate() string
}

// NewFilterFromQuery builds a removable [models.FilterItem] from a raw query
// string. The display text is the normalized query and the id is prefixed
// with "query-" followed by a value from ids.
func NewFilterFromQuery(query string, ids IDSource) models.FilterItem {
	return models.FilterItem{
		ID:        "query-" + ids.Generate(),
		Text:      NormalizeQuery(query),
		Removable: true,
	}
}

// RemoveFilter returns a new slice holding every filter except the one with
// the given id. When no filter matches, the returned slice has contents
// identical to the input.
func RemoveFilter(filters []models.FilterItem, id string) []models.FilterItem {
	remaining := make([]models.FilterItem, 0, len(filters))
	for _, f := range filters {
		if f.ID != id {
			remaining = append(remaining, f)
		}
	}

	return remaining
}
