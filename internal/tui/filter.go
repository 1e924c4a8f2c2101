package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/artsearch/internal/article"
	"github.com/matheuskafuri/artsearch/internal/search"
)

// categoryBar narrows the store to a set of categories before the query
// runs. Each tab shows how many articles in that category match the query.
type categoryBar struct {
	categories []string
	selected   map[string]bool
	hits       map[string]int
	editing    bool
	cursor     int
}

func newCategoryBar(categories []string) categoryBar {
	return categoryBar{
		categories: categories,
		selected:   make(map[string]bool),
		hits:       make(map[string]int),
	}
}

func (c *categoryBar) toggle(category string) {
	if c.selected[category] {
		delete(c.selected, category)
		return
	}
	c.selected[category] = true
}

func (c *categoryBar) toggleAt(i int) bool {
	if i < 0 || i >= len(c.categories) {
		return false
	}
	c.toggle(c.categories[i])
	return true
}

func (c *categoryBar) move(delta int) {
	c.cursor = max(0, min(len(c.categories)-1, c.cursor+delta))
}

// active returns the selected categories in store order, or nil for all.
func (c *categoryBar) active() []string {
	if len(c.selected) == 0 {
		return nil
	}
	var out []string
	for _, name := range c.categories {
		if c.selected[name] {
			out = append(out, name)
		}
	}
	return out
}

func (c *categoryBar) label() string {
	if a := c.active(); a != nil {
		return strings.Join(a, ", ")
	}
	return "All"
}

// countHits tallies query matches per category over the whole store, so a
// deselected category still shows what selecting it would add.
func (c *categoryBar) countHits(m *search.Matcher, articles []article.Article) {
	clear(c.hits)
	for _, a := range articles {
		if m.MatchArticle(a) {
			c.hits[a.Category]++
		}
	}
}

func (c *categoryBar) tab(i int, querying bool) string {
	name := c.categories[i]
	text := name
	if c.editing {
		text = fmt.Sprintf("%d %s", i+1, name)
	}
	if querying {
		text += fmt.Sprintf(" (%d)", c.hits[name])
	}

	style := tabInactiveStyle
	switch {
	case c.selected[name]:
		style = tabActiveStyle
	case querying && c.hits[name] == 0:
		style = tabEmptyStyle
	}
	if c.editing && i == c.cursor {
		style = style.Underline(true)
	}
	return style.Render(text)
}

func (c *categoryBar) render(width int, querying bool) string {
	all := tabInactiveStyle.Render("All")
	if len(c.selected) == 0 {
		all = tabActiveStyle.Render("All")
	}

	sep := tabSeparatorStyle.Render(" · ")
	row := all
	for i := range c.categories {
		next := row + sep + c.tab(i, querying)
		// Drop tabs that no longer fit instead of wrapping.
		if lipgloss.Width(next) > width-1 {
			break
		}
		row = next
	}

	return lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1).
		Render(row)
}
