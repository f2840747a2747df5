package catalog

import (
	"time"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/classifier"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

// ConversationSummary is one row of the conversation list.
type ConversationSummary struct {
	models.Conversation
	With     models.Participant
	Unread   int
	TimeText string
}

// Conversations filters conversations by the names of participants other
// than userID.
func Conversations(conversations []models.Conversation, search, userID string, now time.Time) Result[ConversationSummary] {
	matcher := pipeline.NewMatcher(
		pipeline.List(func(c models.Conversation) []string {
			names := make([]string, 0, len(c.Participants))
			for _, p := range c.Participants {
				if p.ID != userID {
					names = append(names, p.Name)
				}
			}
			return names
		}),
	)
	matched := pipeline.Apply(conversations, matcher.Stage(search))

	rows := make([]ConversationSummary, len(matched))
	for i, c := range matched {
		with, _ := c.Other(userID)
		rows[i] = ConversationSummary{
			Conversation: c,
			With:         with,
			Unread:       c.UnreadCount(userID),
		}
		if c.LastMessage != nil {
			rows[i].TimeText = classifier.TimeOfDay(c.LastMessage.Timestamp, now.Location())
		}
	}

	r := newResult(rows, len(conversations), search, false)
	if r.Empty() {
		r.Title = "No conversations found"
	}
	return r
}

// ThreadMessage is a message with its rendered time of day.
type ThreadMessage struct {
	models.Message
	Mine bool
	// SenderName is "You" for the viewer's own messages, otherwise the
	// participant's name, or the sender id when nobody in the conversation
	// has it.
	SenderName string
	TimeText   string
}

// Thread buckets a conversation's messages under date dividers. Messages
// keep their stored order; labels are computed against now.
func Thread(conversation models.Conversation, userID string, now time.Time) []pipeline.Bucket[ThreadMessage] {
	messages := make([]ThreadMessage, len(conversation.Messages))
	for i, m := range conversation.Messages {
		messages[i] = ThreadMessage{
			Message:    m,
			Mine:       m.SenderID == userID,
			SenderName: senderName(conversation, m.SenderID, userID),
			TimeText:   classifier.TimeOfDay(m.Timestamp, now.Location()),
		}
	}
	return pipeline.Group(messages, func(m ThreadMessage) string {
		return classifier.DateLabel(m.Timestamp, now)
	})
}

func senderName(conversation models.Conversation, senderID, userID string) string {
	if senderID == userID {
		return "You"
	}
	if p, ok := conversation.Participant(senderID); ok && p.Name != "" {
		return p.Name
	}
	return senderID
}
