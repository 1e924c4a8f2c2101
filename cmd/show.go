package cmd

import (
	"fmt"
	"strconv"

	"github.com/matheuskafuri/artsearch/internal/config"
	"github.com/matheuskafuri/artsearch/internal/output"
	"github.com/matheuskafuri/artsearch/internal/search"
	"github.com/spf13/cobra"
)

var flagShowQuery string

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print one article, optionally highlighting a query",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&flagShowQuery, "query", "q", "", "highlight this query in the article")
	showCmd.Flags().StringVar(&flagColor, "color", "auto", "colorize matches: auto, always, never")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid article id %q", args[0])
	}
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

	a, ok := store.Get(id)
	if !ok {
		return fmt.Errorf("no article with id %d in %s", id, store.Source())
	}

	p := output.NewPrinter(cmd.OutOrStdout(), output.ResolveColors(mode))
	p.Article(search.Compile(flagShowQuery).HighlightArticle(a))
	return nil
}
