package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/peoplescope/peoplescope/models"
)

// SortByRating returns a new slice ordered by rating, highest first.
// The sort is stable: records with equal ratings keep their input order.
func SortByRating(results []models.Person) []models.Person {
	sorted := clonePeople(results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	return sorted
}

// SortByName returns a new slice ordered lexicographically by name using a
// locale-aware collator, so accented and case-variant names sort the way a
// person expects rather than by raw byte value. Stable.
func SortByName(results []models.Person) []models.Person {
	c := collate.New(language.Und)

	sorted := clonePeople(results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})

	return sorted
}

// SortByAge returns a new slice ordered by age, ascending when ascending is
// true and descending otherwise. Stable.
func SortByAge(results []models.Person, ascending bool) []models.Person {
	sorted := clonePeople(results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Age < sorted[j].Age
		}
		return sorted[i].Age > sorted[j].Age
	})

	return sorted
}

func clonePeople(results []models.Person) []models.Person {
	cloned := make([]models.Person, len(results))
	copy(cloned, results)
	return cloned
}
