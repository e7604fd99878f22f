package models

// SearchSummary aggregates a result set for the conversation summary panel.
// An empty result set yields the zero value of this struct, never an error.
type SearchSummary struct {
	// Total is the number of results summarized.
	Total int `json:"total"`

	// AverageAge is the mean age rounded to the nearest integer.
	AverageAge int `json:"averageAge"`

	// AverageRating is the mean rating rounded to two decimal places.
	AverageRating float64 `json:"averageRating"`

	// TopLocations lists up to three location names ordered by group size
	// descending, ties broken by encounter order in the input.
	TopLocations []string `json:"topLocations"`
}
