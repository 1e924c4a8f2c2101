package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matheuskafuri/artsearch/internal/article"
	"github.com/matheuskafuri/artsearch/internal/search"
)

const ellipsis = "…"

// renderSpans styles literal spans with base and matched spans with matchStyle.
func renderSpans(spans []search.Span, base lipgloss.Style) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Matched {
			b.WriteString(matchStyle.Render(s.Text))
		} else {
			b.WriteString(base.Render(s.Text))
		}
	}
	return b.String()
}

// truncateSpans cuts spans to at most width terminal cells, ending with an
// ellipsis when anything was dropped.
func truncateSpans(spans []search.Span, width int) []search.Span {
	if width <= 0 {
		return nil
	}
	total := 0
	for _, s := range spans {
		total += runewidth.StringWidth(s.Text)
	}
	if total <= width {
		return spans
	}

	limit := width - runewidth.StringWidth(ellipsis)
	var out []search.Span
	used := 0
	for _, s := range spans {
		w := runewidth.StringWidth(s.Text)
		if used+w <= limit {
			out = append(out, s)
			used += w
			continue
		}
		if rest := runewidth.Truncate(s.Text, limit-used, ""); rest != "" {
			out = append(out, search.Span{Text: rest, Matched: s.Matched})
		}
		break
	}
	return append(out, search.Span{Text: ellipsis})
}

// metaSpans joins author, date and category into one highlighted line.
func metaSpans(h search.Highlighted) []search.Span {
	spans := append([]search.Span{}, h.Author...)
	if d := formatDate(h.Article); d != "" {
		spans = append(spans, search.Span{Text: " · " + d})
	}
	if h.Article.Category != "" {
		spans = append(spans, search.Span{Text: " · "})
		spans = append(spans, h.Category...)
	}
	return spans
}

func formatDate(a article.Article) string {
	if a.Date.IsZero() {
		return ""
	}
	return a.Date.Format("Jan 2, 2006")
}

func renderListItem(h search.Highlighted, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	titleStyle := itemTitleStyle
	prefix := "  "
	if selected {
		titleStyle = itemSelectedStyle
		prefix = "> "
	}

	title := titleStyle.Render(prefix) + renderSpans(truncateSpans(h.Title, width-2), titleStyle)
	meta := "  " + renderSpans(truncateSpans(metaSpans(h), width-2), itemMetaStyle)

	return title + "\n" + meta
}

func renderList(m *search.Matcher, articles []article.Article, cursor int, height int, width int) string {
	if len(articles) == 0 {
		return renderEmptyState(width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(m.HighlightArticle(articles[i]), i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func renderEmptyState(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		emptyTitleStyle.Render("No articles found"),
		emptyHintStyle.Render("Try adjusting your search terms"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
