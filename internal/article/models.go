package article

import (
	"errors"
	"time"
)

// DateLayout is the on-disk format of Article.Date.
const DateLayout = "2006-01-02"

var (
	ErrDuplicateID       = errors.New("duplicate article id")
	ErrInvalidArticle    = errors.New("invalid article")
	ErrUnsupportedSource = errors.New("unsupported article source")
)

type Article struct {
	ID       int       `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Author   string    `json:"author" yaml:"author"`
	Category string    `json:"category" yaml:"category"`
	Content  string    `json:"content" yaml:"content"`
	Date     time.Time `json:"date" yaml:"-"`
}

// Searchable returns the fields a query is matched against, in display order.
// Date is not searched.
func (a Article) Searchable() []string {
	return []string{a.Title, a.Author, a.Category, a.Content}
}
