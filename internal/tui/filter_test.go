package tui

import (
	"strings"
	"testing"

	"github.com/matheuskafuri/artsearch/internal/article"
	"github.com/matheuskafuri/artsearch/internal/search"
)

func TestCategoryBarToggle(t *testing.T) {
	c := newCategoryBar([]string{"Tech", "Food", "Science"})
	if c.active() != nil || c.label() != "All" {
		t.Fatalf("fresh bar should select all, got %v", c.active())
	}

	c.toggleAt(2)
	c.toggleAt(0)
	if got := c.label(); got != "Tech, Science" {
		t.Errorf("label = %q, want store order", got)
	}

	c.toggleAt(0)
	if got := c.label(); got != "Science" {
		t.Errorf("label after untoggle = %q", got)
	}
	if c.toggleAt(3) || c.toggleAt(-1) {
		t.Error("out of range toggle should report false")
	}
}

func TestCategoryBarMoveClamps(t *testing.T) {
	c := newCategoryBar([]string{"Tech", "Food"})
	c.move(-1)
	if c.cursor != 0 {
		t.Errorf("cursor = %d, want 0", c.cursor)
	}
	c.move(5)
	if c.cursor != 1 {
		t.Errorf("cursor = %d, want 1", c.cursor)
	}
}

func TestCategoryBarCountHits(t *testing.T) {
	store, err := article.Default()
	if err != nil {
		t.Fatal(err)
	}
	c := newCategoryBar(store.Categories())
	c.toggle("Food")

	c.countHits(search.Compile("dr."), store.All())
	if c.hits["Technology"] != 1 || c.hits["Psychology"] != 1 || c.hits["Food"] != 0 {
		t.Errorf("unexpected hits %v", c.hits)
	}

	bar := c.render(200, true)
	if !strings.Contains(bar, "Technology (1)") || !strings.Contains(bar, "Food (0)") {
		t.Errorf("tabs should carry hit counts:\n%s", bar)
	}
	if strings.Contains(c.render(200, false), "(") {
		t.Error("hit counts should be hidden without a query")
	}
}

func TestCategoryBarNumbersWhileEditing(t *testing.T) {
	c := newCategoryBar([]string{"Tech", "Food"})
	c.editing = true
	if bar := c.render(200, false); !strings.Contains(bar, "2 Food") {
		t.Errorf("expected numbered tabs while editing:\n%s", bar)
	}
}
