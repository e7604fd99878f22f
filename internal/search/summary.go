package search

import (
	"math"
	"sort"

	"github.com/peoplescope/peoplescope/models"
)

const topLocationCount = 3

// AverageRating computes the arithmetic mean of the ratings, rounded to two
// decimal places. An empty input yields 0, never NaN.
func AverageRating(results []models.Person) float64 {
	if len(results) == 0 {
		return 0
	}

	var sum float64
	for _, r := range results {
		sum += r.Rating
	}

	return math.Round(sum/float64(len(results))*100) / 100
}

// GroupByLocation buckets results by their location. Both the group order
// and the within-group member order follow the encounter order of the
// input; order lists the group keys accordingly. Locations absent from the
// input do not appear as keys.
func GroupByLocation(results []models.Person) (groups map[string][]models.Person, order []string) {
	groups = make(map[string][]models.Person, len(results))
	order = make([]string, 0, len(results))

	for _, r := range results {
		if _, seen := groups[r.Location]; !seen {
			order = append(order, r.Location)
		}
		groups[r.Location] = append(groups[r.Location], r)
	}

	return groups, order
}

// Summarize aggregates a result set into a [models.SearchSummary]: total
// count, mean age rounded to the nearest integer, mean rating rounded to
// two decimals, and up to three top locations ordered by group size
// descending with ties broken by encounter order. An empty input yields the
// zero summary.
func Summarize(results []models.Person) models.SearchSummary {
	if len(results) == 0 {
		return models.SearchSummary{TopLocations: []string{}}
	}

	var ageSum int
	for _, r := range results {
		ageSum += r.Age
	}

	groups, order := GroupByLocation(results)

	top := make([]string, len(order))
	copy(top, order)
	sort.SliceStable(top, func(i, j int) bool {
		return len(groups[top[i]]) > len(groups[top[j]])
	})
	if len(top) > topLocationCount {
		top = top[:topLocationCount]
	}

	return models.SearchSummary{
		Total:         len(results),
		AverageAge:    int(math.Round(float64(ageSum) / float64(len(results)))),
		AverageRating: AverageRating(results),
		TopLocations:  top,
	}
}
