package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
)

func newCommunitiesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "communities",
		Short: "Search communities by name and description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireNoTab(opts, catalog.PageCommunities); err != nil {
				return err
			}
			r, err := opts.service.Communities(cmd.Context(), opts.query)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printHeader(w, "Communities", len(r.Items), r.Total)
			if r.Empty() {
				printEmpty(w, r.Title, r.Message)
				return nil
			}
			for _, c := range r.Items {
				fmt.Fprintf(w, "[%s] %s (%d members)\n", c.ID, c.Name, c.Members)
				fmt.Fprintf(w, "    %s\n", c.Description)
			}
			return nil
		},
	}
}
