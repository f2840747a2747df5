// Package classifier derives display labels from records.
//
// Temporal labels compare one timestamp against "now" using calendar days in
// now's location, not 24-hour deltas:
//
//	event date ──► same day as now ──► Today
//	           └─► before today ──────► Past
//	           └─► otherwise ─────────► Upcoming
//
// Keyword classifiers map company names, locations and experience strings to
// the option ids used by the listing facets.
package classifier

import (
	"fmt"
	"time"
)

// EventStatus is the temporal state of an event relative to now.
type EventStatus string

const (
	StatusPast     EventStatus = "Past"
	StatusToday    EventStatus = "Today"
	StatusUpcoming EventStatus = "Upcoming"
)

// Day is one calendar day.
const Day = 24 * time.Hour

// DefaultNewJobDays is the age, in days, up to which a posting counts as new.
const DefaultNewJobDays = 3

// SameDay reports whether a and b fall on the same calendar day in the
// location of b.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ClassifyEvent labels an event date as Past, Today or Upcoming.
func ClassifyEvent(date, now time.Time) EventStatus {
	if SameDay(date, now) {
		return StatusToday
	}
	if date.Before(StartOfDay(now)) {
		return StatusPast
	}
	return StatusUpcoming
}

// JobAgeDays is the number of whole days between posted and now. A post date
// in the future is measured the same way as one in the past.
func JobAgeDays(posted, now time.Time) int {
	diff := now.Sub(posted)
	if diff < 0 {
		diff = -diff
	}
	return int(diff / Day)
}

// JobAgeLabel renders the age as "Today", "Yesterday" or "N days ago".
func JobAgeLabel(posted, now time.Time) string {
	switch days := JobAgeDays(posted, now); days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// IsNewJob reports whether a posting is at most maxDays old.
func IsNewJob(posted, now time.Time, maxDays int) bool {
	return JobAgeDays(posted, now) <= maxDays
}

// DaysUntil counts whole days from now until t; negative once t has passed.
func DaysUntil(t, now time.Time) int {
	return int(t.Sub(now) / Day)
}

// DateLabel labels a message timestamp as "Today", "Yesterday" or its
// calendar date (M/D/YYYY) in now's location.
func DateLabel(ts, now time.Time) string {
	if SameDay(ts, now) {
		return "Today"
	}
	if SameDay(ts, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	return ts.In(now.Location()).Format("1/2/2006")
}
