package models

import "time"

// Message represents a single chat message inside a conversation
type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// Participant is a member of a conversation.
type Participant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsOnline bool   `json:"is_online,omitempty"`
}

// LastMessage is the denormalized summary shown in conversation lists.
type LastMessage struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// Conversation is a message thread between two or more participants.
type Conversation struct {
	ID           string        `json:"id"`
	Participants []Participant `json:"participants"`
	LastMessage  *LastMessage  `json:"last_message,omitempty"`
	Messages     []Message     `json:"messages"`
}

// Other returns the first participant that is not userID.
func (c Conversation) Other(userID string) (Participant, bool) {
	for _, p := range c.Participants {
		if p.ID != userID {
			return p, true
		}
	}
	return Participant{}, false
}

// Participant looks up a member by id.
func (c Conversation) Participant(id string) (Participant, bool) {
	for _, p := range c.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// UnreadCount counts unread messages not sent by userID.
func (c Conversation) UnreadCount(userID string) int {
	n := 0
	for _, m := range c.Messages {
		if !m.Read && m.SenderID != userID {
			n++
		}
	}
	return n
}
