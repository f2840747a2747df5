package models

import "time"

// Event represents an alumni gathering, online or in person.
type Event struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Date          time.Time  `json:"date"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	Location      *string    `json:"location,omitempty"`
	IsOnline      bool       `json:"is_online"`
	Organizer     string     `json:"organizer"`
	Category      *string    `json:"category,omitempty"`
	AttendeeCount int        `json:"attendee_count"`
	Capacity      *int       `json:"capacity,omitempty"`
	RSVP          RSVPStatus `json:"rsvp,omitempty"`
}

// IsFull reports whether the event has a capacity and has reached it.
func (e Event) IsFull() bool {
	return e.Capacity != nil && e.AttendeeCount >= *e.Capacity
}
