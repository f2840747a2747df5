package catalog_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
)

func conversationsFixture() []models.Conversation {
	return []models.Conversation{
		{
			ID:           "c1",
			Participants: []models.Participant{{ID: "me", Name: "You"}, {ID: "1", Name: "Priya Sharma"}},
			Messages: []models.Message{
				{ID: "m1", SenderID: "1", Text: "hello", Timestamp: now.AddDate(0, 0, -3), Read: true},
				{ID: "m2", SenderID: "me", Text: "hi", Timestamp: now.AddDate(0, 0, -3).Add(time.Minute), Read: true},
				{ID: "m3", SenderID: "1", Text: "still there?", Timestamp: now.AddDate(0, 0, -1)},
				{ID: "m4", SenderID: "1", Text: "ping", Timestamp: now.Add(-time.Hour)},
				{ID: "m5", SenderID: "me", Text: "pong", Timestamp: now.Add(-30 * time.Minute)},
			},
			LastMessage: &models.LastMessage{Text: "pong", Timestamp: now.Add(-30 * time.Minute), Read: true},
		},
		{
			ID:           "c2",
			Participants: []models.Participant{{ID: "me", Name: "You"}, {ID: "5", Name: "Neha Gupta"}},
		},
	}
}

func TestConversations_SearchOtherParticipants(t *testing.T) {
	r := catalog.Conversations(conversationsFixture(), "neha", "me", now)
	require.Len(t, r.Items, 1)
	assert.Equal(t, "c2", r.Items[0].ID)
	assert.Equal(t, "Neha Gupta", r.Items[0].With.Name)

	// The viewer's own name never matches
	r = catalog.Conversations(conversationsFixture(), "you", "me", now)
	assert.True(t, r.Empty())
	assert.Equal(t, "No conversations found", r.Title)

	r = catalog.Conversations(conversationsFixture(), "", "me", now)
	require.Len(t, r.Items, 2)
	assert.Equal(t, 2, r.Items[0].Unread)
	assert.Equal(t, "14:00", r.Items[0].TimeText)
	assert.Empty(t, r.Items[1].TimeText)
}

func TestThread_GroupsByDay(t *testing.T) {
	buckets := catalog.Thread(conversationsFixture()[0], "me", now)

	labels := make([]string, len(buckets))
	var order []string
	for i, b := range buckets {
		labels[i] = b.Label
		for _, m := range b.Items {
			order = append(order, m.ID)
		}
	}
	if diff := cmp.Diff([]string{"3/12/2024", "Yesterday", "Today"}, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"m1", "m2", "m3", "m4", "m5"}, order)
	assert.True(t, buckets[2].Items[1].Mine)
	assert.False(t, buckets[2].Items[0].Mine)
}

func TestThread_SenderNamesInGroupConversation(t *testing.T) {
	group := models.Conversation{
		ID: "g",
		Participants: []models.Participant{
			{ID: "me", Name: "You"},
			{ID: "1", Name: "Priya Sharma"},
			{ID: "5", Name: "Neha Gupta"},
		},
		Messages: []models.Message{
			{ID: "a", SenderID: "1", Text: "Hi all", Timestamp: now.Add(-3 * time.Minute)},
			{ID: "b", SenderID: "5", Text: "Hello!", Timestamp: now.Add(-2 * time.Minute)},
			{ID: "c", SenderID: "me", Text: "Hey", Timestamp: now.Add(-time.Minute)},
			{ID: "d", SenderID: "9", Text: "Left the group", Timestamp: now},
		},
	}

	buckets := catalog.Thread(group, "me", now)
	require.Len(t, buckets, 1)
	var names []string
	for _, m := range buckets[0].Items {
		names = append(names, m.SenderName)
	}
	assert.Equal(t, []string{"Priya Sharma", "Neha Gupta", "You", "9"}, names)
}

func TestThread_Empty(t *testing.T) {
	buckets := catalog.Thread(conversationsFixture()[1], "me", now)
	assert.Empty(t, buckets)
}
