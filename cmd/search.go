package cmd

import (
	"fmt"
	"strings"

	"github.com/matheuskafuri/artsearch/internal/config"
	"github.com/matheuskafuri/artsearch/internal/output"
	"github.com/matheuskafuri/artsearch/internal/search"
	"github.com/spf13/cobra"
)

var (
	flagJSON       bool
	flagColor      string
	flagCategories []string
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Print the articles matching a query",
	Long: `Filter articles by a case-insensitive substring query and print every
match with its highlights. Multiple arguments are joined with a single space.
An empty query prints every article.`,
	Example: `  artsearch search quantum
  artsearch search "Dr." --json
  artsearch search cooking --category Food`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&flagJSON, "json", false, "print results as JSON")
	searchCmd.Flags().StringVar(&flagColor, "color", "auto", "colorize matches: auto, always, never")
	searchCmd.Flags().StringSliceVarP(&flagCategories, "category", "c", nil, "only search these categories (repeatable)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	mode, err := output.ParseColorMode(flagColor)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	m := search.Compile(strings.Join(args, " "))
	results := m.Filter(store.InCategories(flagCategories))

	w := cmd.OutOrStdout()
	if flagJSON {
		return output.JSON(w, m, results, store.Len())
	}
	output.NewPrinter(w, output.ResolveColors(mode)).Results(m, results, store.Len())
	return nil
}
