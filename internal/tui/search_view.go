package tui

import (
	"fmt"
	"strings"
)

func (m mainLoopModel) viewSearch() string {
	var b strings.Builder

	header := "Signed in as " + getSessionLogin()
	header += "  │  Plan: " + m.subscriptions.TierName()
	if m.serverVersion != "" {
		header += "  │  Server " + m.serverVersion
	}
	b.WriteString(helpStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString("Search │ [")
	b.WriteString(m.searchInput.View())
	b.WriteString("]")
	if m.searching {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")

	if tags := m.viewFilterTags(); tags != "" {
		b.WriteString(tags)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.viewResults())

	hotkeys := "/: search │ ↑/↓: move │ enter: open profile │ x: drop filter │ p: plans │ +/-: plan │ l: logout │ q: quit"
	return renderPage("PEOPLE SEARCH", strings.TrimRight(b.String(), "\n"), hotkeys)
}

func (m mainLoopModel) viewFilterTags() string {
	filters := m.services.SearchService.Filters()
	if len(filters) == 0 {
		return ""
	}

	tags := make([]string, 0, len(filters))
	for _, f := range filters {
		tag := "[" + fitText(f.Text, 24)
		if f.Removable {
			tag += " ×"
		}
		tag += "]"
		tags = append(tags, tag)
	}
	return "Filters: " + strings.Join(tags, " ")
}

func (m mainLoopModel) viewResults() string {
	if m.searching {
		return "Searching...\n"
	}
	if !m.searched {
		return "Type a query and press enter to search.\n"
	}
	if len(m.resp.Results) == 0 {
		return fmt.Sprintf("No people found for %q.\n", m.resp.Query)
	}

	var b strings.Builder

	if m.fromCache {
		b.WriteString(errorStyle.Render("OFFLINE: cached results"))
		b.WriteString("\n")
	}
	b.WriteString(m.viewSummary())
	b.WriteString("\n\n")

	for i, person := range m.resp.Results {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-24s %3d  %-20s %s\n",
			cursor,
			fitText(person.Name, 24),
			person.Age,
			fitText(person.Location, 20),
			formatRating(person.Rating),
		))
	}

	return b.String()
}

func (m mainLoopModel) viewSummary() string {
	s := m.resp.Summary

	line := fmt.Sprintf("%d results · avg age %d · avg rating %.1f", s.Total, s.AverageAge, s.AverageRating)
	if len(s.TopLocations) > 0 {
		line += " · top: " + strings.Join(s.TopLocations, ", ")
	}
	return helpStyle.Render(line)
}
