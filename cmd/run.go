package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive app",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	d.log.Info("starting tui", zap.String("provider", d.cfg.LLM.Provider))
	return app.Run(app.Options{
		Generator: d.adapter,
		Skills:    d.cfg.Catalog.Skills,
		Durations: d.cfg.Catalog.Durations,
		Chat:      d.cfg.Chat,
		Logger:    d.log,
	})
}
