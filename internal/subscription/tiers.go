// SPDX-License-Identifier: Apache-2.0

package subscription

import "github.com/peoplescope/peoplescope/models"

// tiers is the static tier table. Exactly three entries, defined once,
// never mutated at runtime.
var tiers = map[models.SubscriptionLevel]models.SubscriptionTier{
	models.LevelBasic: {
		Level:       models.LevelBasic,
		Name:        "Basic",
		Description: "Core people search with limited report access",
		Features: []string{
			"People search",
			"Basic profile view",
			"Up to 10 reports per month",
		},
		Color: "#9CA3AF",
	},
	models.LevelStandard: {
		Level:       models.LevelStandard,
		Name:        "Standard",
		Description: "Full contact details and expanded report history",
		Features: []string{
			"Everything in Basic",
			"Phone, email and address details",
			"Network and timeline views",
			"Up to 100 reports per month",
		},
		Color: "#3B82F6",
	},
	models.LevelPremium: {
		Level:       models.LevelPremium,
		Name:        "Premium",
		Description: "Complete background reports including financial and legal records",
		Features: []string{
			"Everything in Standard",
			"Financial records",
			"Legal and court records",
			"Unlimited reports",
		},
		Color: "#F59E0B",
	},
}

// placeholders maps each content category to the fixed string shown in
// place of gated content. The strings are load-bearing: dependent display
// logic matches them verbatim, so they must be reproduced bit-for-bit.
var placeholders = map[models.ContentType]string{
	models.ContentPhone:     "***-***-****",
	models.ContentEmail:     "***@***.***",
	models.ContentAddress:   "*** ******* St, ****, ** *****",
	models.ContentFinancial: "$***,***",
	models.ContentLegal:     "[Requires higher subscription]",
	models.ContentGeneric:   "[Redacted]",
}

// TierByLevel returns the static descriptor for the given level.
// The second return is false for levels outside {1,2,3}.
func TierByLevel(level models.SubscriptionLevel) (models.SubscriptionTier, bool) {
	tier, ok := tiers[level]
	return tier, ok
}

// Tiers returns all tier descriptors ordered by level ascending.
func Tiers() []models.SubscriptionTier {
	return []models.SubscriptionTier{
		tiers[models.LevelBasic],
		tiers[models.LevelStandard],
		tiers[models.LevelPremium],
	}
}

// Placeholder returns the redaction placeholder for the given content type.
// Unknown content types fall back to the generic placeholder.
func Placeholder(contentType models.ContentType) string {
	if p, ok := placeholders[contentType]; ok {
		return p
	}

	return placeholders[models.ContentGeneric]
}
