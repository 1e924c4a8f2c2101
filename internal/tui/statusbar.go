package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(shown, total int, filterLabel string, width int, querying bool, showStats bool, filtering bool) string {
	left := fmt.Sprintf(" %s articles", statusCountStyle.Render(fmt.Sprint(total)))
	if querying && showStats {
		left = " Showing " + statusCountStyle.Render(fmt.Sprint(shown)) +
			" of " + statusCountStyle.Render(fmt.Sprint(total)) + " articles"
	}
	if filterLabel != "All" {
		left += " · " + filterLabel
	}

	right := " ↑/↓ move  tab focus  ctrl+f categories  f1 help  esc clear "
	if !querying {
		right = " ↑/↓ move  tab focus  ctrl+f categories  f1 help  esc quit "
	}
	if filtering {
		right = " ←/→ move  space toggle  1-9 toggle  esc done "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
