package cmd

import (
	"fmt"

	"github.com/matheuskafuri/artsearch/internal/article"
	"github.com/matheuskafuri/artsearch/internal/config"
	"github.com/matheuskafuri/artsearch/internal/logger"
	"github.com/matheuskafuri/artsearch/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	store, err := loadStore(cfg)
	if err != nil {
		log.Error("loading articles", "error", err)
		return err
	}
	log.Info("starting", "version", version, "source", store.Source(), "articles", store.Len())

	return tui.Run(tui.RunOpts{
		Cfg:    cfg,
		Store:  store,
		Logger: log,
		Query:  flagQuery,
	})
}

// openLogger opens the log file; stdout belongs to the alt screen. --debug
// overrides the configured level.
func openLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.Open(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	if flagDebug {
		log.SetLevel("debug")
	}
	return log, nil
}

// loadStore opens the article source named by --data, falling back to the
// config's data_file and then to the built-in sample set.
func loadStore(cfg *config.Config) (*article.Store, error) {
	path := dataPath(cfg)
	store, err := article.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("loading articles: %w", err)
	}
	return store, nil
}

func dataPath(cfg *config.Config) string {
	if flagData != "" {
		return flagData
	}
	return cfg.DataPath()
}
