package tui

import tea "github.com/charmbracelet/bubbletea"

type queryChangedMsg struct {
	query string
}

// SetQuery returns a message that replaces the current query, as if the user
// had typed it.
func SetQuery(q string) tea.Msg {
	return queryChangedMsg{query: q}
}
