package classifier

import "time"

// ShortDate renders "Jan 2", used for job deadlines.
func ShortDate(t time.Time, loc *time.Location) string {
	return in(t, loc).Format("Jan 2")
}

// EventDate renders "Mon, Jan 2".
func EventDate(t time.Time, loc *time.Location) string {
	return in(t, loc).Format("Mon, Jan 2")
}

// TimeOfDay renders "15:04".
func TimeOfDay(t time.Time, loc *time.Location) string {
	return in(t, loc).Format("15:04")
}

func in(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}
