package models

// SearchResponse is the payload returned by the search endpoint: the
// sanitized matching records together with their summary. Query echoes the
// normalized query the server actually evaluated.
type SearchResponse struct {
	// Query is the normalized query string after server-side cleanup.
	Query string `json:"query"`

	// Results holds the matching records in repository order.
	Results []Person `json:"results"`

	// Summary aggregates Results for the summary panel.
	Summary SearchSummary `json:"summary"`
}
