package article

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads a store from a local file. The format is chosen by extension:
// .yaml/.yml, .xml/.rss/.atom (feed) or .db/.sqlite/.sqlite3.
func Load(path string) (*Store, error) {
	var (
		articles []Article
		err      error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		articles, err = loadYAML(path)
	case ".xml", ".rss", ".atom":
		articles, err = loadFeed(path)
	case ".db", ".sqlite", ".sqlite3":
		articles, err = loadSQLite(path)
	default:
		return nil, fmt.Errorf("%s: %w (valid: yaml, yml, xml, rss, atom, db, sqlite, sqlite3)", path, ErrUnsupportedSource)
	}
	if err != nil {
		return nil, err
	}
	return NewStore(path, articles)
}

// LoadOrDefault loads path, or the embedded sample store when path is empty.
func LoadOrDefault(path string) (*Store, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

type yamlArticle struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Date     string `yaml:"date"`
	Category string `yaml:"category"`
	Content  string `yaml:"content"`
}

func loadYAML(path string) ([]Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading articles: %w", err)
	}
	articles, err := decodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing articles %s: %w", path, err)
	}
	return articles, nil
}

func decodeYAML(data []byte) ([]Article, error) {
	var raw []yamlArticle
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(raw))
	for _, r := range raw {
		a := Article{
			ID:       r.ID,
			Title:    r.Title,
			Author:   r.Author,
			Category: r.Category,
			Content:  r.Content,
		}
		if r.Date != "" {
			d, err := time.Parse(DateLayout, r.Date)
			if err != nil {
				return nil, fmt.Errorf("article %d: invalid date %q: %w", r.ID, r.Date, ErrInvalidArticle)
			}
			a.Date = d
		}
		articles = append(articles, a)
	}
	return articles, nil
}
