// Package cli implements the promptlens command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"promptlens/internal/config"
	"promptlens/internal/corpus"
	"promptlens/internal/logger"
	"promptlens/internal/quality"
	"promptlens/internal/service"
)

var (
	cfgPath string
	verbose bool

	appConfig     *config.AppConfig
	appLogger     *slog.Logger
	promptService *service.PromptService
)

var rootCmd = &cobra.Command{
	Use:   "promptlens",
	Short: "Prompt quality scoring and lexical prompt search",
	Long: `promptlens analyses AI prompts.

It scores a prompt's quality along five dimensions (length, specificity,
clarity, structure, context) and ranks stored prompts by term-frequency
cosine similarity to a query, with keywords and topics.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML or TOML config file (default ./promptlens.yaml, then ~/.config/promptlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration and wires the services once per process.
func setup(cmd *cobra.Command, _ []string) error {
	if promptService != nil {
		return nil
	}
	_ = godotenv.Load()

	var (
		cfg *config.AppConfig
		err error
	)
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnv()
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := newLogger(cfg)
	src, err := corpus.New(corpus.Config{Type: cfg.Corpus.Type, Path: cfg.Corpus.Path})
	if err != nil {
		return err
	}
	search := service.NewSearchService(service.SearchOptions{
		Threshold:         cfg.Search.Threshold,
		MaxResults:        cfg.Search.MaxResults,
		TopicSources:      cfg.Search.TopicSources,
		KeywordsPerResult: cfg.Search.KeywordsPerResult,
	})

	appConfig = cfg
	appLogger = log
	promptService = service.NewPromptService(src, search, quality.NewScorer(), log)
	log.Debug("configured", "corpus", cfg.Corpus.Type, "path", cfg.Corpus.Path)
	return nil
}

func newLogger(cfg *config.AppConfig) *slog.Logger {
	if cfg.Log.Format == "json" {
		return logger.NewJSON(cfg.Log.Level, os.Stderr)
	}
	return logger.New(cfg.Log.Level, os.Stderr)
}
