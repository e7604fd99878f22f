package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/peoplescope/peoplescope/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	redactedStyle   = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	toastStyles = map[models.NotificationType]lipgloss.Style{
		models.NotificationSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
		models.NotificationInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
		models.NotificationWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		models.NotificationError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
)

// tierStyle renders text in the accent color of a subscription tier.
func tierStyle(tier models.SubscriptionTier) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(tier.Color))
}
