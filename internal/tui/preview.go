package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/artsearch/internal/search"
)

// previewLines lays out the highlighted article at the given width.
func previewLines(h *search.Highlighted, width int) []string {
	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}
	wrap := lipgloss.NewStyle().Width(contentWidth)

	title := wrap.Render(renderSpans(h.Title, previewTitleStyle))

	meta := renderSpans(h.Author, previewMetaStyle)
	if d := formatDate(h.Article); d != "" {
		meta += previewMetaStyle.Render(" · " + d)
	}

	var category string
	if h.Article.Category != "" {
		category = renderSpans(h.Category, previewCategoryStyle)
	}

	body := wrap.Render(renderSpans(h.Content, previewBodyStyle))
	if h.Article.Content == "" {
		body = previewMetaStyle.Render("(No content available)")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, wrap.Render(meta), category, "", body)
	return strings.Split(content, "\n")
}

// maxPreviewScroll is the largest offset that still fills the pane.
func maxPreviewScroll(h *search.Highlighted, width, height int) int {
	if h == nil {
		return 0
	}
	return max(0, len(previewLines(h, width))-height)
}

func renderPreview(h *search.Highlighted, width, height, scroll int) string {
	if h == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			emptyHintStyle.Render("Select an article"))
	}

	lines := previewLines(h, width)
	scroll = max(0, min(scroll, len(lines)-height))
	lines = lines[scroll:]

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}
