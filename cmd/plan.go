package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/roadmap"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a learning roadmap without the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, _ := cmd.Flags().GetString("skill")
		duration, _ := cmd.Flags().GetString("duration")
		asJSON, _ := cmd.Flags().GetBool("json")

		d, err := buildDeps(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		plan, err := d.adapter.GeneratePlan(cmd.Context(), skill, duration)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			d.Close()
			os.Exit(exitCode(err))
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), plan)
		}
		printPlan(cmd.OutOrStdout(), skill, duration, plan)
		return nil
	},
}

func printPlan(w io.Writer, skill, duration string, p *roadmap.Plan) {
	fmt.Fprintf(w, "Learning %s in %s\n", skill, duration)
	fmt.Fprintln(w, strings.Repeat("\u2500", 60))
	for _, wk := range p.Weeks {
		fmt.Fprintf(w, "\nWeek %d: %s\n", wk.Week, wk.Title)
		for _, t := range wk.Topics {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] %s\n", mark, t.Title)
			for i, r := range t.Resources {
				fmt.Fprintf(w, "      Resource %d: %s\n", i+1, r)
			}
		}
		fmt.Fprintf(w, "  Weekly Project: %s\n", wk.Project)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	planCmd.Flags().StringP("skill", "s", "", "Skill to learn (e.g. \"Data Science\")")
	planCmd.Flags().StringP("duration", "d", "", "Time frame (e.g. \"3 Months\")")
	planCmd.Flags().Bool("json", false, "Print the roadmap as JSON")
	_ = planCmd.MarkFlagRequired("skill")
	_ = planCmd.MarkFlagRequired("duration")
}
