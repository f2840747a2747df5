package storage

import (
	"context"
	"errors"
	"time"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrEventFull      = errors.New("event is at capacity")
	ErrEmptyMessage   = errors.New("message text is empty")
)

// Storage serves the five record collections. Reads return copies; callers
// may keep or modify them freely.
type Storage interface {
	Profiles(ctx context.Context) ([]models.Profile, error)
	Jobs(ctx context.Context) ([]models.JobPosting, error)
	Events(ctx context.Context) ([]models.Event, error)
	Communities(ctx context.Context) ([]models.Community, error)
	Conversations(ctx context.Context) ([]models.Conversation, error)
	Conversation(ctx context.Context, id string) (models.Conversation, error)
	Close() error

	// Embed Actions interface
	Actions
}

// Actions are the local, non-persistent updates a viewer can make. Each one
// replaces the stored record with an updated copy and returns it.
type Actions interface {
	Connect(ctx context.Context, profileID string) (models.Profile, error)
	ToggleSaved(ctx context.Context, jobID string) (models.JobPosting, error)
	Apply(ctx context.Context, jobID string) (models.JobPosting, error)
	SetRSVP(ctx context.Context, eventID string, status models.RSVPStatus) (models.Event, error)
	JoinCommunity(ctx context.Context, communityID string) (models.Community, error)
	SendMessage(ctx context.Context, conversationID, senderID, text string, at time.Time) (models.Message, error)
}

// Snapshot is a full set of records loaded at startup.
type Snapshot struct {
	Profiles      []models.Profile
	Jobs          []models.JobPosting
	Events        []models.Event
	Communities   []models.Community
	Conversations []models.Conversation
}
