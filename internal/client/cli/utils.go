package cli

import (
	"fmt"
	"time"

	"github.com/dcastano/notas-cli/internal/client/models"
)

const previewWidth = 40

// formatRelative renders t relative to now the way the note list shows
// timestamps: recent times as "Xm ago"/"Xh ago", older ones as a date.
func formatRelative(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "yesterday"
	default:
		return t.Format("2006-01-02")
	}
}

// printNoteLine prints the one-line list representation of a note:
// id, title, a truncated content preview and the relative update time.
func printNoteLine(n models.Note, now time.Time) {
	preview := models.Truncate(models.SanitizeText(n.Content), previewWidth)
	printlnFn(fmt.Sprintf("%s  %s | %s (%s)", n.ID, n.Title, preview, formatRelative(n.UpdatedAt, now)))
}
