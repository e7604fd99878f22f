package models

// ProfileField is one labeled, subscription-gated value on a person's
// dashboard (a phone number, an email, a net-worth estimate, a legal
// record line, ...). The server always returns the full value; redaction is
// applied by the displaying client and is cosmetic only.
type ProfileField struct {
	// Label is the user-facing field caption (e.g. "Phone").
	Label string `json:"label"`

	// Value is the full, unredacted field content.
	Value string `json:"value"`

	// RequiredLevel is the minimum subscription level at which the value
	// is shown instead of its placeholder.
	RequiredLevel SubscriptionLevel `json:"requiredLevel"`

	// ContentType selects the placeholder used while the field is gated.
	ContentType ContentType `json:"contentType"`
}

// Profile is the full dashboard payload for one person: the search-result
// record plus the ordered gated detail fields.
type Profile struct {
	// Person is the base record the profile belongs to.
	Person Person `json:"person"`

	// Fields is the ordered list of gated detail fields.
	Fields []ProfileField `json:"fields"`
}
