package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplescope/peoplescope/models"
)

func ids(people []models.Person) []int64 {
	out := make([]int64, 0, len(people))
	for _, p := range people {
		out = append(out, p.ID)
	}
	return out
}

func TestSortByRating_DescendingAndStable(t *testing.T) {
	people := []models.Person{
		{ID: 1, Rating: 3.5},
		{ID: 2, Rating: 5.0},
		{ID: 3, Rating: 3.5},
		{ID: 4, Rating: 1.0},
	}

	got := SortByRating(people)

	// equal ratings (1 and 3) keep input order
	assert.Equal(t, []int64{2, 1, 3, 4}, ids(got))
}

func TestSortByName_Lexicographic(t *testing.T) {
	people := []models.Person{
		{ID: 1, Name: "Carla"},
		{ID: 2, Name: "ann"},
		{ID: 3, Name: "Bo"},
	}

	got := SortByName(people)

	// letters compare alphabetically before case, so "ann" < "Bo" < "Carla"
	assert.Equal(t, []int64{2, 3, 1}, ids(got))
}

func TestSortByName_AccentedNames(t *testing.T) {
	people := []models.Person{
		{ID: 1, Name: "Zoe"},
		{ID: 2, Name: "Émile"},
		{ID: 3, Name: "Adam"},
	}

	got := SortByName(people)

	// É sorts with E, not after Z as raw bytes would
	assert.Equal(t, []int64{3, 2, 1}, ids(got))
}

func TestSortByAge(t *testing.T) {
	people := []models.Person{
		{ID: 1, Age: 40},
		{ID: 2, Age: 25},
		{ID: 3, Age: 61},
	}

	assert.Equal(t, []int64{2, 1, 3}, ids(SortByAge(people, true)))
	assert.Equal(t, []int64{3, 1, 2}, ids(SortByAge(people, false)))
}

// TestSort_DoesNotMutateInput verifies that every sort returns a fresh slice
// and leaves the input untouched.
func TestSort_DoesNotMutateInput(t *testing.T) {
	people := []models.Person{
		{ID: 1, Name: "Zoe", Age: 40, Rating: 1.0},
		{ID: 2, Name: "Ann", Age: 25, Rating: 5.0},
	}
	original := make([]models.Person, len(people))
	copy(original, people)

	_ = SortByRating(people)
	_ = SortByName(people)
	_ = SortByAge(people, true)

	require.Equal(t, original, people)
}

func TestSort_EmptyInput(t *testing.T) {
	assert.Empty(t, SortByRating(nil))
	assert.Empty(t, SortByName(nil))
	assert.Empty(t, SortByAge(nil, true))
}
