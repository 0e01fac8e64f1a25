package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/jobs"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Match job listings to a skill and progress level",
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, _ := cmd.Flags().GetString("skill")
		progress, _ := cmd.Flags().GetInt("progress")
		asJSON, _ := cmd.Flags().GetBool("json")

		d, err := buildDeps(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		listings, err := d.adapter.FindJobs(cmd.Context(), skill, progress)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			d.Close()
			os.Exit(exitCode(err))
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), listings)
		}
		printListings(cmd.OutOrStdout(), listings)
		return nil
	},
}

func printListings(w io.Writer, listings []jobs.Listing) {
	for i, l := range listings {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s at %s\n", l.Title, l.Company)
		fmt.Fprintf(w, "  %s\n", l.Description)
		fmt.Fprintf(w, "  Apply: %s\n", l.Link)
	}
}

func init() {
	jobsCmd.Flags().StringP("skill", "s", "", "Skill being learned")
	jobsCmd.Flags().IntP("progress", "p", 0, "Roadmap completion percentage (0-100)")
	jobsCmd.Flags().Bool("json", false, "Print listings as JSON")
	_ = jobsCmd.MarkFlagRequired("skill")
}
