package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
)

func newMessagesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "messages",
		Short: "List conversations, searching by the other participant's name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireNoTab(opts, catalog.PageConversations); err != nil {
				return err
			}
			r, err := opts.service.Conversations(cmd.Context(), opts.query)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printHeader(w, "Messages", len(r.Items), r.Total)
			if r.Empty() {
				printEmpty(w, r.Title, r.Message)
				return nil
			}
			for _, c := range r.Items {
				unread := ""
				if c.Unread > 0 {
					unread = fmt.Sprintf("%d unread", c.Unread)
				}
				fmt.Fprintf(w, "[%s] %s\n", c.ID, joinNonEmpty(c.With.Name, unread, c.TimeText))
				if c.LastMessage != nil {
					fmt.Fprintf(w, "    %s\n", c.LastMessage.Text)
				}
			}
			return nil
		},
	}
}

func newThreadCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "thread <conversation-id>",
		Short: "Show a conversation grouped by day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := opts.service.Thread(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, view.With.Name)
			if len(view.Buckets) == 0 {
				fmt.Fprintln(w, "No messages yet.")
				return nil
			}
			for _, bucket := range view.Buckets {
				fmt.Fprintf(w, "\n-- %s --\n", bucket.Label)
				for _, m := range bucket.Items {
					fmt.Fprintf(w, "%s %s: %s\n", m.TimeText, m.SenderName, m.Text)
				}
			}
			return nil
		},
	}
}
