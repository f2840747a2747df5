package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newJobCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "job <id>",
		Short: "Show one job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.service.Job(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !d.Found {
				printEmpty(w, d.Title, d.Message)
				return nil
			}
			j := d.Item
			experience, salary := "", ""
			if j.ExperienceLevel != nil {
				experience = *j.ExperienceLevel
			}
			if j.Salary != nil {
				salary = *j.Salary
			}
			fmt.Fprintf(w, "[%s] %s\n", j.ID, j.Title)
			fmt.Fprintf(w, "%s\n", joinNonEmpty(j.Company, j.Location, string(j.EmploymentType)))
			fmt.Fprintf(w, "%s\n", joinNonEmpty("Posted "+j.AgeLabel, experience, salary, j.DeadlineLabel))
			if j.Description != "" {
				fmt.Fprintf(w, "\n%s\n", j.Description)
			}
			printList(w, "Responsibilities", j.Responsibilities)
			printList(w, "Requirements", j.Requirements)
			printList(w, "Skills", j.Skills)
			printList(w, "Benefits", j.Benefits)
			if j.PostedByName != "" {
				fmt.Fprintf(w, "\nPosted by %s\n", j.PostedByName)
			}
			if j.Applied {
				fmt.Fprintln(w, "Applied")
			}
			return nil
		},
	}
}

func newProfileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <id>",
		Short: "Show one alumni profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.service.Profile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !d.Found {
				printEmpty(w, d.Title, d.Message)
				return nil
			}
			p := d.Item
			company, location := "", ""
			if p.Company != nil {
				company = *p.Company
			}
			if p.Location != nil {
				location = *p.Location
			}
			fmt.Fprintf(w, "[%s] %s\n", p.ID, p.Name)
			fmt.Fprintf(w, "%s\n", joinNonEmpty(p.Role, company))
			fmt.Fprintf(w, "%s\n", joinNonEmpty(fmt.Sprintf("Class of %d", p.GraduationYear), p.Department, location, string(p.Connection)))
			if p.About != "" {
				fmt.Fprintf(w, "\nAbout\n  %s\n", p.About)
			}

			var lines []string
			for _, e := range p.Experience {
				end := e.EndDate
				if e.Current {
					end = "Present"
				}
				lines = append(lines, joinNonEmpty(e.Role+" at "+e.Company, e.StartDate+" - "+end, e.Location))
			}
			printList(w, "Experience", lines)

			lines = nil
			for _, e := range p.Education {
				lines = append(lines, joinNonEmpty(e.Degree+", "+e.Institution, e.Department, e.Year))
			}
			printList(w, "Education", lines)
			printList(w, "Skills", p.Skills)

			lines = nil
			for _, a := range p.Achievements {
				lines = append(lines, joinNonEmpty(a.Title, a.Year))
			}
			printList(w, "Achievements", lines)
			return nil
		},
	}
}

func printList(w io.Writer, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	for _, line := range lines {
		fmt.Fprintf(w, "  - %s\n", line)
	}
}
