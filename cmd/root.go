package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/config"
	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/jobs"
	"github.com/abhisek/learnpath/internal/llm"
	"github.com/abhisek/learnpath/internal/logger"
	"github.com/abhisek/learnpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnpath",
	Short: "AI learning roadmaps in your terminal",
	Long:  "LearnPath AI builds week-by-week learning roadmaps, tracks your progress, matches you with jobs and connects you with a study group.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNPATH_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/learnpath/config.yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db.path from config, then LEARNPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// deps is everything a command needs to generate content.
type deps struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *store.Store
	adapter *content.Adapter
}

func (d *deps) Close() {
	if d.store != nil {
		d.store.Close()
	}
	_ = d.log.Sync()
}

// buildDeps loads config, opens the logger and audit store and builds the
// content adapter. A missing provider is reported on stderr; the adapter
// then fails every request as unavailable.
func buildDeps(ctx context.Context, cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		log = logger.Nop()
	}

	d := &deps{cfg: cfg, log: log}

	repo := store.Discard
	if st, err := openStore(cmd, cfg); err != nil {
		log.Warn("audit log unavailable", zap.Error(err))
	} else {
		d.store = st
		repo = st.EventRepo()
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, repo, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		log.Warn("llm provider not configured", zap.Error(err))
		provider = llm.Unconfigured(err)
	}

	contentCfg := cfg.Content
	if contentCfg.Timeout == 0 {
		contentCfg.Timeout = cfg.LLM.Timeout
	}
	d.adapter = content.New(provider, contentCfg,
		content.WithLogger(log),
		content.WithJobCache(jobs.NewCache(cfg.Jobs.CacheTTL)),
	)
	return d, nil
}

// exitCode maps a generation failure to a process exit status: 2 when
// the service could not be reached, 1 otherwise.
func exitCode(err error) int {
	var ge *content.GenerationError
	if errors.As(err, &ge) && ge.Kind == content.KindUnavailable {
		return 2
	}
	return 1
}
