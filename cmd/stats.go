package cmd

import (
	"fmt"
	"os"

	"github.com/matheuskafuri/artsearch/internal/article"
	"github.com/matheuskafuri/artsearch/internal/config"
	"github.com/matheuskafuri/artsearch/internal/output"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show article source statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		store, err := loadStore(cfg)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		p := output.NewPrinter(w, output.ResolveColors(output.ColorAuto))
		p.Header("Article source")
		p.Print("Source: %s", store.Source())
		if info, err := os.Stat(store.Source()); err == nil {
			p.Print("Size: %s", formatBytes(info.Size()))
		}
		p.Print("Articles: %d", store.Len())
		p.Print("")

		t := output.NewTable(w, output.Column{Name: "CATEGORY"}, output.Column{Name: "ARTICLES", Numeric: true})
		for _, c := range categoryCounts(store) {
			t.AddRow(c.name, fmt.Sprint(c.count))
		}
		return t.Render()
	},
}

type categoryCount struct {
	name  string
	count int
}

// categoryCounts tallies articles per category in order of first appearance.
func categoryCounts(s *article.Store) []categoryCount {
	cats := s.Categories()
	out := make([]categoryCount, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryCount{name: c, count: len(s.InCategories([]string{c}))})
	}
	return out
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
