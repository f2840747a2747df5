package catalog

import (
	"fmt"
	"time"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/classifier"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

// EventsTab scopes the events list.
type EventsTab string

const (
	EventsUpcoming EventsTab = "upcoming"
	EventsPast     EventsTab = "past"
	EventsMine     EventsTab = "my-events"
)

func ParseEventsTab(s string) (EventsTab, error) {
	switch tab := EventsTab(s); tab {
	case "":
		return EventsUpcoming, nil
	case EventsUpcoming, EventsPast, EventsMine:
		return tab, nil
	}
	return "", fmt.Errorf("%w %q for events", ErrUnknownTab, s)
}

// DateRange keeps events whose calendar day lies between From and To,
// inclusive. Either bound may be nil.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Contains compares calendar days in loc.
func (r DateRange) Contains(t time.Time, loc *time.Location) bool {
	day := classifier.StartOfDay(t.In(loc))
	if r.From != nil && day.Before(classifier.StartOfDay(r.From.In(loc))) {
		return false
	}
	if r.To != nil && day.After(classifier.StartOfDay(r.To.In(loc))) {
		return false
	}
	return true
}

// EventsQuery is the events page's filter state.
type EventsQuery struct {
	pipeline.Query
	Tab   EventsTab
	Range DateRange
}

// EventCard is an event with its display labels, computed against now.
type EventCard struct {
	models.Event
	Status    classifier.EventStatus
	DateLabel string
	IsFull    bool
}

// DescribeEvent derives the display labels for event at now.
func DescribeEvent(event models.Event, now time.Time) EventCard {
	return EventCard{
		Event:     event,
		Status:    classifier.ClassifyEvent(event.Date, now),
		DateLabel: classifier.EventDate(event.Date, now.Location()),
		IsFull:    event.IsFull(),
	}
}

var eventCategories = []pipeline.Option{
	{ID: "networking", Label: "Networking"},
	{ID: "workshop", Label: "Workshop"},
	{ID: "seminar", Label: "Seminar"},
	{ID: "social", Label: "Social"},
	{ID: "career", Label: "Career"},
}

var eventsMatcher = pipeline.NewMatcher(
	pipeline.Text(func(e models.Event) string { return e.Title }),
	pipeline.Text(func(e models.Event) string { return e.Description }),
	pipeline.OptionalText(func(e models.Event) *string { return e.Location }),
	pipeline.Text(func(e models.Event) string { return e.Organizer }),
)

// EventsFilter holds the events facets.
var EventsFilter = pipeline.NewFilter(
	pipeline.Facet[models.Event]{
		ID:      "eventType",
		Label:   "Event Type",
		Options: []pipeline.Option{{ID: "in-person", Label: "In-person"}, {ID: "virtual", Label: "Virtual"}},
		Match: func(e models.Event, option string) bool {
			switch option {
			case "virtual":
				return e.IsOnline
			case "in-person":
				return !e.IsOnline
			}
			return false
		},
	},
	pipeline.EqualityFacet("category", "Category", eventCategories, nil,
		func(e models.Event) (string, bool) { return optional(e.Category) }),
)

func (t EventsTab) predicate(now time.Time) pipeline.Stage[models.Event] {
	switch t {
	case EventsPast:
		return func(e models.Event) bool { return classifier.ClassifyEvent(e.Date, now) == classifier.StatusPast }
	case EventsMine:
		return func(e models.Event) bool { return e.RSVP != models.RSVPNone }
	}
	return func(e models.Event) bool { return classifier.ClassifyEvent(e.Date, now) != classifier.StatusPast }
}

// Events evaluates the events page against now.
func Events(events []models.Event, q EventsQuery, now time.Time) (Result[EventCard], error) {
	tab, err := ParseEventsTab(string(q.Tab))
	if err != nil {
		return Result[EventCard]{}, err
	}
	if err := validate(EventsFilter, q.Facets); err != nil {
		return Result[EventCard]{}, err
	}

	var inRange pipeline.Stage[models.Event]
	if !q.Range.IsZero() {
		inRange = func(e models.Event) bool { return q.Range.Contains(e.Date, now.Location()) }
	}

	p := pipeline.Pipeline[models.Event]{Matcher: eventsMatcher, Filter: EventsFilter}
	matched := p.Run(events, q.Query, inRange, tab.predicate(now))

	cards := make([]EventCard, len(matched))
	for i, e := range matched {
		cards[i] = DescribeEvent(e, now)
	}

	r := newResult(cards, len(events), q.Search, !q.Facets.IsEmpty() || !q.Range.IsZero())
	if r.Empty() {
		r.Title = "No events found"
		if r.Reason == EmptySearch {
			r.Message = fmt.Sprintf("No events matching %q were found. Try a different search term.", q.Search)
		} else {
			r.Message = "There are no events in this category yet."
		}
	}
	return r, nil
}
