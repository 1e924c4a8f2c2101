package article

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed articles.yaml
var sampleArticles []byte

// Store is an immutable, ordered set of articles. Its order is the default
// display order.
type Store struct {
	articles []Article
	byID     map[int]int
	source   string
}

// NewStore validates articles and returns a store holding a private copy.
func NewStore(source string, articles []Article) (*Store, error) {
	s := &Store{
		articles: make([]Article, len(articles)),
		byID:     make(map[int]int, len(articles)),
		source:   source,
	}
	copy(s.articles, articles)

	for i, a := range s.articles {
		if a.ID <= 0 {
			return nil, fmt.Errorf("article %d: id must be positive, got %d: %w", i, a.ID, ErrInvalidArticle)
		}
		if strings.TrimSpace(a.Title) == "" {
			return nil, fmt.Errorf("article %d: title is required: %w", a.ID, ErrInvalidArticle)
		}
		if prev, ok := s.byID[a.ID]; ok {
			return nil, fmt.Errorf("article %d at positions %d and %d: %w", a.ID, prev, i, ErrDuplicateID)
		}
		s.byID[a.ID] = i
	}
	return s, nil
}

// Default returns the sample store compiled into the binary.
func Default() (*Store, error) {
	articles, err := decodeYAML(sampleArticles)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded articles: %w", err)
	}
	return NewStore("embedded", articles)
}

// All returns the articles in store order. The slice is shared; callers must
// not modify it.
func (s *Store) All() []Article {
	return s.articles
}

func (s *Store) Len() int {
	return len(s.articles)
}

func (s *Store) Source() string {
	return s.source
}

func (s *Store) Get(id int) (Article, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Article{}, false
	}
	return s.articles[i], true
}

// Categories returns the distinct categories in order of first appearance.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range s.articles {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		out = append(out, a.Category)
	}
	return out
}

// InCategories returns the articles whose category is in cats, preserving
// store order. A nil or empty cats means every category.
func (s *Store) InCategories(cats []string) []Article {
	if len(cats) == 0 {
		return s.articles
	}
	want := make(map[string]bool, len(cats))
	for _, c := range cats {
		want[c] = true
	}
	out := make([]Article, 0, len(s.articles))
	for _, a := range s.articles {
		if want[a.Category] {
			out = append(out, a)
		}
	}
	return out
}
