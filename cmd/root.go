package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagData   string
	flagQuery  string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "artsearch",
	Short: "Search articles as you type",
	Long: `artsearch filters a collection of articles by a case-insensitive substring
query over title, author, category, and content, and highlights every match.

Articles come from the built-in sample set unless --data (or data_file in the
config) points at a YAML, RSS/Atom, or SQLite source.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "article source (.yaml, .xml/.rss/.atom, .db/.sqlite)")
	rootCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "initial search query")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "log at debug level regardless of log_level")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "artsearch %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
