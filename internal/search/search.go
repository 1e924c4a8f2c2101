// Package search filters articles by a free-text query and splits text into
// literal and matched spans for highlighting.
//
// Queries are always literal: the trimmed query is escaped before it reaches
// the regexp engine, so characters such as '.', '*' or '(' match themselves.
// Comparison is case-insensitive under Unicode simple case folding; span text
// keeps the casing of the source.
package search

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/matheuskafuri/artsearch/internal/article"
)

// Span is a contiguous piece of text, either plain or a query match.
type Span struct {
	Text    string
	Matched bool
}

// MarshalJSON encodes a span as {"literal": text} or {"matched": text}.
func (s Span) MarshalJSON() ([]byte, error) {
	key := "literal"
	if s.Matched {
		key = "matched"
	}
	return json.Marshal(map[string]string{key: s.Text})
}

// Matcher is a compiled query. The zero value and the result of compiling an
// empty or whitespace-only query match everything and highlight nothing.
type Matcher struct {
	query string
	re    *regexp.Regexp
}

// Compile prepares query for repeated use.
func Compile(query string) *Matcher {
	q := strings.TrimSpace(query)
	if q == "" {
		return &Matcher{}
	}
	// QuoteMeta output of valid UTF-8 always compiles.
	q = strings.ToValidUTF8(q, "�")
	return &Matcher{
		query: q,
		re:    regexp.MustCompile("(?i)" + regexp.QuoteMeta(q)),
	}
}

// Query returns the trimmed query text.
func (m *Matcher) Query() string {
	return m.query
}

// Empty reports whether the query is blank.
func (m *Matcher) Empty() bool {
	return m.re == nil
}

// Match reports whether text contains the query. A blank query matches.
func (m *Matcher) Match(text string) bool {
	if m.Empty() {
		return true
	}
	return m.re.MatchString(text)
}

// MatchArticle reports whether any searchable field of a contains the query.
func (m *Matcher) MatchArticle(a article.Article) bool {
	if m.Empty() {
		return true
	}
	for _, f := range a.Searchable() {
		if m.Match(f) {
			return true
		}
	}
	return false
}

// Filter returns the articles matching the query in their original order.
// A blank query returns articles unchanged.
func (m *Matcher) Filter(articles []article.Article) []article.Article {
	if m.Empty() {
		return articles
	}
	out := make([]article.Article, 0, len(articles))
	for _, a := range articles {
		if m.MatchArticle(a) {
			out = append(out, a)
		}
	}
	return out
}

// Highlight splits text into alternating literal and matched spans. Matches
// are found left to right and never overlap. No empty span is produced
// unless text itself is empty.
func (m *Matcher) Highlight(text string) []Span {
	if m.Empty() {
		return []Span{{Text: text}}
	}

	locs := m.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []Span{{Text: text}}
	}

	spans := make([]Span, 0, 2*len(locs)+1)
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			spans = append(spans, Span{Text: text[last:loc[0]]})
		}
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Matched: true})
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}

// Highlighted is an article with every searchable field decomposed into spans.
type Highlighted struct {
	Article  article.Article
	Title    []Span
	Author   []Span
	Category []Span
	Content  []Span
}

// Matches returns the number of matched spans across all fields.
func (h Highlighted) Matches() int {
	return Count(h.Title) + Count(h.Author) + Count(h.Category) + Count(h.Content)
}

func (m *Matcher) HighlightArticle(a article.Article) Highlighted {
	return Highlighted{
		Article:  a,
		Title:    m.Highlight(a.Title),
		Author:   m.Highlight(a.Author),
		Category: m.Highlight(a.Category),
		Content:  m.Highlight(a.Content),
	}
}

// Filter is shorthand for Compile(query).Filter(articles).
func Filter(articles []article.Article, query string) []article.Article {
	return Compile(query).Filter(articles)
}

// Highlight is shorthand for Compile(query).Highlight(text).
func Highlight(text, query string) []Span {
	return Compile(query).Highlight(text)
}

// Join concatenates the text of spans.
func Join(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Count returns the number of matched spans.
func Count(spans []Span) int {
	n := 0
	for _, s := range spans {
		if s.Matched {
			n++
		}
	}
	return n
}
