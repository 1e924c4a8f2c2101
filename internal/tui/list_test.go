package tui

import (
	"reflect"
	"testing"
	"time"

	"github.com/matheuskafuri/artsearch/internal/article"
	"github.com/matheuskafuri/artsearch/internal/search"
)

func TestTruncateSpans(t *testing.T) {
	tests := []struct {
		name  string
		spans []search.Span
		width int
		want  []search.Span
	}{
		{
			name:  "fits",
			spans: []search.Span{{Text: "hello"}},
			width: 10,
			want:  []search.Span{{Text: "hello"}},
		},
		{
			name:  "exact",
			spans: []search.Span{{Text: "ab"}, {Text: "cd", Matched: true}},
			width: 4,
			want:  []search.Span{{Text: "ab"}, {Text: "cd", Matched: true}},
		},
		{
			name:  "cuts inside match",
			spans: []search.Span{{Text: "hello "}, {Text: "world", Matched: true}},
			width: 8,
			want:  []search.Span{{Text: "hello "}, {Text: "w", Matched: true}, {Text: "…"}},
		},
		{
			name:  "cuts at span boundary",
			spans: []search.Span{{Text: "abc", Matched: true}, {Text: "defgh"}},
			width: 4,
			want:  []search.Span{{Text: "abc", Matched: true}, {Text: "…"}},
		},
		{
			name:  "zero width",
			spans: []search.Span{{Text: "abc"}},
			width: 0,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateSpans(tt.spans, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("truncateSpans(%v, %d) = %v, want %v", tt.spans, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateSpansWideRunes(t *testing.T) {
	// CJK runes take two cells each.
	got := truncateSpans([]search.Span{{Text: "日本語テスト"}}, 5)
	want := []search.Span{{Text: "日本"}, {Text: "…"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("truncateSpans(Japanese, 5) = %v, want %v", got, want)
	}
}

func TestFormatDate(t *testing.T) {
	a := article.Article{Date: time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)}
	if got := formatDate(a); got != "Aug 15, 2024" {
		t.Errorf("formatDate = %q, want %q", got, "Aug 15, 2024")
	}
	if got := formatDate(article.Article{}); got != "" {
		t.Errorf("formatDate(zero) = %q, want empty", got)
	}
}

func TestMetaSpans(t *testing.T) {
	a := article.Article{
		ID:       1,
		Title:    "T",
		Author:   "Lisa Park",
		Category: "Social Media",
		Date:     time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
	}
	h := search.Compile("park").HighlightArticle(a)
	got := search.Join(metaSpans(h))
	if got != "Lisa Park · Jul 20, 2024 · Social Media" {
		t.Errorf("metaSpans joined = %q", got)
	}
	if n := search.Count(metaSpans(h)); n != 1 {
		t.Errorf("expected 1 matched span, got %d", n)
	}
}
