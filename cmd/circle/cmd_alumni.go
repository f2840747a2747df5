package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
)

func newAlumniCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "alumni",
		Short: "Search the alumni directory",
		Long: `Lists alumni matching --query over name, role, company and skills.

Tabs: all, connections, pending.
Filters: department, graduationYear, industry, location.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.pipelineQuery()
			if err != nil {
				return err
			}
			r, err := opts.service.Alumni(cmd.Context(), catalog.AlumniQuery{Query: q, Tab: catalog.AlumniTab(opts.tab)})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printHeader(w, "Alumni", len(r.Items), r.Total)
			if r.Empty() {
				printEmpty(w, r.Title, r.Message)
				return nil
			}
			for _, p := range r.Items {
				company := ""
				if p.Company != nil {
					company = "at " + *p.Company
				}
				location := ""
				if p.Location != nil {
					location = *p.Location
				}
				fmt.Fprintf(w, "[%s] %s\n", p.ID, p.Name)
				fmt.Fprintf(w, "    %s %s\n", p.Role, company)
				fmt.Fprintf(w, "    %s\n", joinNonEmpty(fmt.Sprintf("Class of %d", p.GraduationYear), p.Department, location, string(p.Connection)))
			}
			return nil
		},
	}
}
