package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matheuskafuri/artsearch/internal/article"
	"github.com/matheuskafuri/artsearch/internal/search"
)

// Results prints the result count, each matching article with highlighted
// fields, and the "Showing N of M" footer. The count and footer appear only
// while a query is active; an empty result prints the empty state between
// them.
func (p *Printer) Results(m *search.Matcher, results []article.Article, total int) {
	if !m.Empty() {
		p.Print("%s", p.Bold(ResultCount(len(results))))
		p.Print("")
	}

	if len(results) == 0 {
		p.Print("%s", p.Bold("No articles found"))
		p.Print("%s", p.Dim("Try adjusting your search terms"))
		p.Print("")
	}

	for _, a := range results {
		p.Article(m.HighlightArticle(a))
	}

	if !m.Empty() {
		p.Print("%s", Stats(len(results), total))
	}
}

// Article prints one highlighted article: "#ID title", then author, date and
// category, then the content.
func (p *Printer) Article(h search.Highlighted) {
	a := h.Article
	p.Print("%s %s", p.Dim(fmt.Sprintf("#%d", a.ID)), p.Bold(p.Spans(h.Title)))

	meta := p.Spans(h.Author)
	if !a.Date.IsZero() {
		meta += " · " + a.Date.Format("Jan 2, 2006")
	}
	if a.Category != "" {
		meta += " · " + p.Spans(h.Category)
	}
	p.Print("   %s", meta)
	if a.Content != "" {
		p.Print("   %s", p.Spans(h.Content))
	}
	p.Print("")
}

// ResultCount formats a result count: "1 result", "N results".
func ResultCount(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

// Stats formats the "Showing N of M articles" line.
func Stats(shown, total int) string {
	return fmt.Sprintf("Showing %d of %d articles", shown, total)
}

type jsonResult struct {
	Query    string        `json:"query"`
	Count    int           `json:"count"`
	Total    int           `json:"total"`
	Articles []jsonArticle `json:"articles"`
}

type jsonArticle struct {
	ID         int                      `json:"id"`
	Title      string                   `json:"title"`
	Author     string                   `json:"author"`
	Date       string                   `json:"date,omitempty"`
	Category   string                   `json:"category"`
	Content    string                   `json:"content"`
	Highlights map[string][]search.Span `json:"highlights"`
}

// JSON writes the results and their span decompositions as indented JSON.
func JSON(w io.Writer, m *search.Matcher, results []article.Article, total int) error {
	out := jsonResult{
		Query:    m.Query(),
		Count:    len(results),
		Total:    total,
		Articles: make([]jsonArticle, 0, len(results)),
	}
	for _, a := range results {
		h := m.HighlightArticle(a)
		ja := jsonArticle{
			ID:       a.ID,
			Title:    a.Title,
			Author:   a.Author,
			Category: a.Category,
			Content:  a.Content,
			Highlights: map[string][]search.Span{
				"title":    h.Title,
				"author":   h.Author,
				"category": h.Category,
				"content":  h.Content,
			},
		}
		if !a.Date.IsZero() {
			ja.Date = a.Date.Format(article.DateLayout)
		}
		out.Articles = append(out.Articles, ja)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// List renders the store as a table.
func List(w io.Writer, articles []article.Article) error {
	t := NewTable(w,
		Column{Name: "ID", Numeric: true},
		Column{Name: "DATE"},
		Column{Name: "CATEGORY"},
		Column{Name: "AUTHOR"},
		Column{Name: "TITLE"},
	)
	for _, a := range articles {
		date := ""
		if !a.Date.IsZero() {
			date = a.Date.Format(article.DateLayout)
		}
		t.AddRow(fmt.Sprint(a.ID), date, a.Category, a.Author, a.Title)
	}
	return t.Render()
}
