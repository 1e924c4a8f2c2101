package article

import (
	"fmt"
	"os"
	"strings"

	"github.com/mmcdole/gofeed"
)

// loadFeed reads a local RSS or Atom file. Items keep feed order and are
// numbered from 1.
func loadFeed(path string) ([]Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening feed: %w", err)
	}
	defer f.Close()

	feed, err := gofeed.NewParser().Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", path, err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for i, item := range feed.Items {
		content := item.Content
		if content == "" {
			content = item.Description
		}

		a := Article{
			ID:       i + 1,
			Title:    strings.TrimSpace(item.Title),
			Author:   personName(item.Author, item.Authors),
			Category: feed.Title,
			Content:  stripHTML(content),
		}
		if a.Author == "" {
			a.Author = personName(feed.Author, feed.Authors)
		}
		if len(item.Categories) > 0 {
			a.Category = item.Categories[0]
		}
		if item.PublishedParsed != nil {
			a.Date = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			a.Date = *item.UpdatedParsed
		}

		articles = append(articles, a)
	}
	return articles, nil
}

func personName(p *gofeed.Person, all []*gofeed.Person) string {
	if p != nil && p.Name != "" {
		return p.Name
	}
	for _, a := range all {
		if a != nil && a.Name != "" {
			return a.Name
		}
	}
	return ""
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
