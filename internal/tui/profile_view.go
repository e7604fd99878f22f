package tui

import (
	"fmt"
	"strings"

	"github.com/peoplescope/peoplescope/internal/subscription"
)

func (m mainLoopModel) viewProfile() string {
	var b strings.Builder
	person := m.profile.Person

	if m.profileFromCache {
		b.WriteString(errorStyle.Render("OFFLINE: cached profile"))
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render(person.Name))
	b.WriteString("  ")
	b.WriteString(formatRating(person.Rating))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d y.o. · %s · %s · %s\n", person.Age, person.Gender, person.MaritalStatus, person.Location))
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d references · %d companies · %d contacts",
		person.References, person.Companies, person.Contacts)))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, field := range m.profile.Fields {
		if w := len(field.Label); w > labelWidth {
			labelWidth = w
		}
	}

	for i, field := range m.profile.Fields {
		cursor := "  "
		if i == m.fieldIdx {
			cursor = "> "
		}

		value, redacted := m.subscriptions.ContentOrRedacted(field.Value, field.RequiredLevel, field.ContentType)
		line := fmt.Sprintf("%s%-*s │ ", cursor, labelWidth, field.Label)
		if redacted {
			tier, _ := subscription.TierByLevel(field.RequiredLevel)
			line += redactedStyle.Render(value) + helpStyle.Render("  ("+tier.Name+")")
		} else {
			line += value
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.profile.Fields) == 0 {
		b.WriteString("No detail fields on record.\n")
	}

	hotkeys := "↑/↓: move │ c: copy │ p: plans │ +/-: plan │ esc: back │ q: quit"
	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), hotkeys)
}
