package tui

import (
	"strings"

	"github.com/peoplescope/peoplescope/models"
)

var toastPrefixes = map[models.NotificationType]string{
	models.NotificationSuccess: "OK",
	models.NotificationInfo:    "INFO",
	models.NotificationWarning: "WARN",
	models.NotificationError:   "ERR",
}

// renderToasts draws the active notifications, oldest first, one per line.
// An empty queue renders to the empty string so screens do not reserve
// space for it.
func renderToasts(items []models.Notification) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for i, n := range items {
		if i > 0 {
			b.WriteString("\n")
		}

		prefix, ok := toastPrefixes[n.Type]
		if !ok {
			prefix = "INFO"
		}

		line := prefix + ": " + n.Title
		if n.Message != "" {
			line += ": " + n.Message
		}

		if style, ok := toastStyles[n.Type]; ok {
			line = style.Render(line)
		}
		b.WriteString("  " + line)
	}

	return overlayBoxStyle.Render(b.String())
}
