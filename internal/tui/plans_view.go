package tui

import (
	"strings"

	"github.com/peoplescope/peoplescope/internal/subscription"
)

func (m mainLoopModel) viewPlans() string {
	var b strings.Builder
	current := m.subscriptions.Level()

	for _, tier := range subscription.Tiers() {
		marker := "  "
		if tier.Level == current {
			marker = "> "
		}

		name := tier.Name
		if tier.Level == current {
			name = tierStyle(tier).Render(name + " (current)")
		}

		b.WriteString(marker)
		b.WriteString(name)
		b.WriteString("\n")
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(tier.Description))
		b.WriteString("\n")
		for _, feature := range tier.Features {
			b.WriteString("    · ")
			b.WriteString(feature)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return renderPage("PLANS", strings.TrimRight(b.String(), "\n"), "+: upgrade │ -: downgrade │ esc: back │ q: quit")
}
