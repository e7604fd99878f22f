package models

// SubscriptionLevel is the ordinal access level of a session. Levels are
// totally ordered: a higher level strictly dominates a lower one for
// content-visibility purposes.
type SubscriptionLevel int

const (
	// LevelBasic is the entry tier every session starts with.
	LevelBasic SubscriptionLevel = 1

	// LevelStandard unlocks contact details and most report sections.
	LevelStandard SubscriptionLevel = 2

	// LevelPremium unlocks everything, including financial and legal data.
	LevelPremium SubscriptionLevel = 3
)

// Valid reports whether l is one of the three defined levels.
func (l SubscriptionLevel) Valid() bool {
	return l >= LevelBasic && l <= LevelPremium
}

// SubscriptionTier is the static, read-only descriptor of one subscription
// level. The full three-entry table is defined once in the subscription
// package and never mutated at runtime.
type SubscriptionTier struct {
	// Level is the ordinal level this descriptor belongs to.
	Level SubscriptionLevel `json:"level"`

	// Name is the user-facing tier name (e.g. "Premium").
	Name string `json:"name"`

	// Description is a one-line marketing description of the tier.
	Description string `json:"description"`

	// Features is the ordered list of feature bullet points.
	Features []string `json:"features"`

	// Color is the accent color associated with the tier, as a hex string.
	Color string `json:"color"`
}

// ContentType tags a piece of gated content so that the redaction logic can
// pick a category-specific placeholder. It carries no other data.
type ContentType string

const (
	ContentPhone     ContentType = "phone"
	ContentEmail     ContentType = "email"
	ContentAddress   ContentType = "address"
	ContentFinancial ContentType = "financial"
	ContentLegal     ContentType = "legal"
	ContentGeneric   ContentType = "generic"
)
