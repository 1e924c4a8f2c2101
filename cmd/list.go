package cmd

import (
	"fmt"

	"github.com/matheuskafuri/artsearch/internal/config"
	"github.com/matheuskafuri/artsearch/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all articles in the current source",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		store, err := loadStore(cfg)
		if err != nil {
			return err
		}
		return output.List(cmd.OutOrStdout(), store.InCategories(flagListCategories))
	},
}

var flagListCategories []string

func init() {
	listCmd.Flags().StringSliceVarP(&flagListCategories, "category", "c", nil, "only list these categories (repeatable)")
}
