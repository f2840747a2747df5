package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
)

func newJobsCmd(opts *options) *cobra.Command {
	var companies bool

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Search the job board",
		Long: `Lists postings matching --query over title, company, description, location and skills.

Tabs: all, saved, applied.
Filters: employmentType, experienceLevel, location, saved, applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if companies {
				list, err := opts.service.Companies(cmd.Context())
				if err != nil {
					return err
				}
				for _, c := range list {
					fmt.Fprintf(w, "%s: %d open position(s)\n", c.Company, c.Positions)
				}
				return nil
			}

			q, err := opts.pipelineQuery()
			if err != nil {
				return err
			}
			r, err := opts.service.Jobs(cmd.Context(), catalog.JobsQuery{Query: q, Tab: catalog.JobsTab(opts.tab)})
			if err != nil {
				return err
			}

			printHeader(w, "Jobs", len(r.Items), r.Total)
			if r.Empty() {
				printEmpty(w, r.Title, r.Message)
				return nil
			}
			for _, j := range r.Items {
				badge := ""
				if j.IsNew {
					badge = " [new]"
				}
				salary := ""
				if j.Salary != nil {
					salary = *j.Salary
				}
				saved, applied := "", ""
				if j.Saved {
					saved = "saved"
				}
				if j.Applied {
					applied = "applied"
				}
				fmt.Fprintf(w, "[%s] %s%s\n", j.ID, j.Title, badge)
				fmt.Fprintf(w, "    %s\n", joinNonEmpty(j.Company, j.Location, string(j.EmploymentType), salary))
				fmt.Fprintf(w, "    %s\n", joinNonEmpty("Posted "+j.AgeLabel, j.DeadlineLabel, saved, applied))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&companies, "companies", false, "list open positions per company instead")
	return cmd
}
