package article

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteQuery = `
	SELECT id, title,
		COALESCE(author, ''), COALESCE(date, ''), COALESCE(category, ''), COALESCE(content, '')
	FROM articles
	ORDER BY rowid`

// loadSQLite reads the articles table of an existing database. The file is
// opened read-only and is never created.
func loadSQLite(path string) ([]Article, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening article db: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening article db: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(sqliteQuery)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var (
			a    Article
			date string
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Author, &date, &a.Category, &a.Content); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		if date != "" {
			d, err := parseDate(date)
			if err != nil {
				return nil, fmt.Errorf("article %d: invalid date %q: %w", a.ID, date, ErrInvalidArticle)
			}
			a.Date = d
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// parseDate accepts a plain date or the RFC 3339 timestamps the sqlite driver
// writes for DATETIME columns.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
