package models

// FilterItem is a user-facing search refinement tag shown above the results
// list. Items are created from a raw query string and removed by ID; the
// queue of items is an ordered sequence owned by the client session.
type FilterItem struct {
	// ID uniquely identifies the filter within the active session.
	ID string `json:"id"`

	// Text is the display text, normally the normalized query.
	Text string `json:"text"`

	// Removable controls whether the item shows a remove affordance.
	Removable bool `json:"removable"`

	// DropdownText is optional secondary text for dropdown-style filters.
	DropdownText string `json:"dropdownText,omitempty"`
}
