package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
)

const dateLayout = "2006-01-02"

func newEventsCmd(opts *options) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Search events",
		Long: `Lists events matching --query over title, description, location and organizer.

Tabs: upcoming, past, my-events.
Filters: eventType, category. --from and --to bound the event day, inclusive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.pipelineQuery()
			if err != nil {
				return err
			}
			loc := opts.service.Clock().Now().Location()
			var rng catalog.DateRange
			if rng.From, err = parseDate(from, loc); err != nil {
				return err
			}
			if rng.To, err = parseDate(to, loc); err != nil {
				return err
			}

			r, err := opts.service.Events(cmd.Context(), catalog.EventsQuery{Query: q, Tab: catalog.EventsTab(opts.tab), Range: rng})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printHeader(w, "Events", len(r.Items), r.Total)
			if r.Empty() {
				printEmpty(w, r.Title, r.Message)
				return nil
			}
			for _, e := range r.Items {
				where := "Virtual"
				if !e.IsOnline && e.Location != nil {
					where = *e.Location
				}
				full, rsvp := "", ""
				if e.IsFull {
					full = "full"
				}
				if e.RSVP != models.RSVPNone {
					rsvp = "you: " + string(e.RSVP)
				}
				fmt.Fprintf(w, "[%s] %s\n", e.ID, e.Title)
				fmt.Fprintf(w, "    %s\n", joinNonEmpty(e.DateLabel, e.StartTime, where))
				fmt.Fprintf(w, "    %s\n", joinNonEmpty(string(e.Status), fmt.Sprintf("%d attending", e.AttendeeCount), full, rsvp))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first day, "+dateLayout)
	cmd.Flags().StringVar(&to, "to", "", "last day, "+dateLayout)
	return cmd
}

func parseDate(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want %s: %w", s, dateLayout, err)
	}
	return &t, nil
}
