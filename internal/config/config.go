package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SearchConfig tunes similarity search.
type SearchConfig struct {
	Threshold         float64 `yaml:"threshold" toml:"threshold"`
	MaxResults        int     `yaml:"max_results" toml:"max_results"`
	TopicSources      int     `yaml:"topic_sources" toml:"topic_sources"`
	KeywordsPerResult int     `yaml:"keywords_per_result" toml:"keywords_per_result"`
}

// QualityConfig holds caller-side policy for quality scores.
type QualityConfig struct {
	// LowScoreThreshold flags prompts in audits and colours them in the TUI.
	LowScoreThreshold float64 `yaml:"low_score_threshold" toml:"low_score_threshold"`
}

// CorpusConfig selects where stored prompts are read from.
type CorpusConfig struct {
	Type string `yaml:"type" toml:"type"`
	Path string `yaml:"path" toml:"path"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr        string `yaml:"addr" toml:"addr"`
	CacheSize   int    `yaml:"cache_size" toml:"cache_size"`
	TimeoutSecs int    `yaml:"timeout_secs" toml:"timeout_secs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Search  SearchConfig  `yaml:"search" toml:"search"`
	Quality QualityConfig `yaml:"quality" toml:"quality"`
	Corpus  CorpusConfig  `yaml:"corpus" toml:"corpus"`
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Files ending in .toml are parsed as TOML, everything else as YAML. Keys absent
// from the file keep their default values.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg := Default()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./promptlens.yaml first, then ~/.config/promptlens/config.yaml.
// If neither exists, it writes defaults to ~/.config/promptlens/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "promptlens.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overrides selected values from PROMPTLENS_* environment variables.
func (c *AppConfig) ApplyEnv() {
	c.Log.Level = getEnv("PROMPTLENS_LOG_LEVEL", c.Log.Level)
	c.Server.Addr = getEnv("PROMPTLENS_ADDR", c.Server.Addr)
	c.Corpus.Type = getEnv("PROMPTLENS_CORPUS_TYPE", c.Corpus.Type)
	c.Corpus.Path = getEnv("PROMPTLENS_CORPUS", c.Corpus.Path)
	c.Server.CacheSize = getEnvInt("PROMPTLENS_CACHE_SIZE", c.Server.CacheSize)
	c.Search.Threshold = getEnvFloat("PROMPTLENS_SEARCH_THRESHOLD", c.Search.Threshold)
}

// Validate rejects values the services cannot work with.
func (c *AppConfig) Validate() error {
	if c.Search.Threshold < 0 || c.Search.Threshold >= 1 {
		return fmt.Errorf("search.threshold must be in [0,1), got %v", c.Search.Threshold)
	}
	if c.Quality.LowScoreThreshold < 0 || c.Quality.LowScoreThreshold > 1 {
		return fmt.Errorf("quality.low_score_threshold must be in [0,1], got %v", c.Quality.LowScoreThreshold)
	}
	switch c.Corpus.Type {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unknown corpus type: %s", c.Corpus.Type)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Search: SearchConfig{
			Threshold:         0.3,
			MaxResults:        10,
			TopicSources:      5,
			KeywordsPerResult: 5,
		},
		Quality: QualityConfig{LowScoreThreshold: 0.4},
		Corpus:  CorpusConfig{Type: "file", Path: "prompts.yaml"},
		Server:  ServerConfig{Addr: ":8080", CacheSize: 256, TimeoutSecs: 15},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// applyConfigDefaults replaces explicit zero values that are never valid.
// Thresholds are left alone since 0 is a usable floor.
func applyConfigDefaults(cfg *AppConfig) {
	d := Default()
	if cfg.Search.MaxResults == 0 {
		cfg.Search.MaxResults = d.Search.MaxResults
	}
	if cfg.Search.TopicSources == 0 {
		cfg.Search.TopicSources = d.Search.TopicSources
	}
	if cfg.Search.KeywordsPerResult == 0 {
		cfg.Search.KeywordsPerResult = d.Search.KeywordsPerResult
	}
	if cfg.Corpus.Type == "" {
		cfg.Corpus.Type = d.Corpus.Type
	}
	if cfg.Corpus.Path == "" {
		cfg.Corpus.Path = d.Corpus.Path
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = d.Server.Addr
	}
	if cfg.Server.CacheSize == 0 {
		cfg.Server.CacheSize = d.Server.CacheSize
	}
	if cfg.Server.TimeoutSecs == 0 {
		cfg.Server.TimeoutSecs = d.Server.TimeoutSecs
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = d.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = d.Log.Format
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptlens", "config.yaml"), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
