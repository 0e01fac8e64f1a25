// Package config loads settings from .env, an optional config.yaml and
// LEARNPATH_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/llm"
	"github.com/abhisek/learnpath/internal/logger"
	"github.com/abhisek/learnpath/internal/studygroup"
)

const envPrefix = "LEARNPATH"

type Config struct {
	LLM     llm.Config        `mapstructure:"llm"`
	Content content.Config    `mapstructure:"content"`
	Jobs    JobsConfig        `mapstructure:"jobs"`
	Chat    studygroup.Config `mapstructure:"chat"`
	Log     logger.Config     `mapstructure:"log"`
	DB      DBConfig          `mapstructure:"db"`
	Catalog Catalog           `mapstructure:"catalog"`
}

type JobsConfig struct {
	// CacheTTL of zero sends every search to the generator.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type DBConfig struct {
	// Path of the audit database. Empty resolves to store.DefaultDBPath.
	Path string `mapstructure:"path"`
}

// Catalog is what the roadmap screen offers for selection.
type Catalog struct {
	Skills    []string `mapstructure:"skills"`
	Durations []string `mapstructure:"durations"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Skills: []string{
			"Web Development",
			"Data Science",
			"Machine Learning",
			"Mobile Development",
			"Cloud Computing",
			"Cybersecurity",
			"UI/UX Design",
			"DevOps",
		},
		Durations: []string{"4 weeks", "8 weeks", "12 weeks", "6 months"},
	}
}

func Default() *Config {
	return &Config{
		LLM:     llm.DefaultConfig(),
		Content: content.DefaultConfig(),
		Chat:    studygroup.DefaultConfig(),
		Log:     logger.DefaultConfig(),
		Catalog: DefaultCatalog(),
	}
}

// Load reads configuration. An empty path searches
// $XDG_CONFIG_HOME/learnpath and the working directory for config.yaml;
// a missing file is not an error, but an explicit path must exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Fall back to the well-known vendor key variables when no
	// provider was chosen explicitly.
	if !cfg.LLM.HasKey() && !v.InConfig("llm.provider") && os.Getenv(envPrefix+"_LLM_PROVIDER") == "" {
		if found, ok := llm.Discover(cfg.LLM); ok {
			cfg.LLM = found
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that would break startup. A missing API key is
// not one of them: generation then fails with an unavailable error.
func (c *Config) Validate() error {
	if len(c.Catalog.Skills) == 0 {
		return errors.New("catalog.skills must not be empty")
	}
	if len(c.Catalog.Durations) == 0 {
		return errors.New("catalog.durations must not be empty")
	}
	if c.Content.MaxTokens <= 0 {
		return fmt.Errorf("content.max_tokens must be positive, got %d", c.Content.MaxTokens)
	}
	if c.Jobs.CacheTTL < 0 {
		return fmt.Errorf("jobs.cache_ttl must not be negative, got %s", c.Jobs.CacheTTL)
	}
	return nil
}

func configDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "learnpath")
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("llm.provider", d.LLM.Provider)
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.LLM.Gemini.Model)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.LLM.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.LLM.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.LLM.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.timeout", d.LLM.Timeout)
	v.SetDefault("llm.retry.max_attempts", d.LLM.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.LLM.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.LLM.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.LLM.Retry.Multiplier)

	v.SetDefault("content.max_tokens", d.Content.MaxTokens)
	v.SetDefault("content.temperature", d.Content.Temperature)
	v.SetDefault("content.timeout", d.Content.Timeout)

	v.SetDefault("jobs.cache_ttl", d.Jobs.CacheTTL)

	v.SetDefault("chat.rate", d.Chat.Rate)
	v.SetDefault("chat.burst", d.Chat.Burst)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)

	v.SetDefault("db.path", d.DB.Path)

	v.SetDefault("catalog.skills", d.Catalog.Skills)
	v.SetDefault("catalog.durations", d.Catalog.Durations)
}
