package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
)

// MemoryStorage keeps every collection in process memory. Updates live until
// the process exits; nothing is written back to the source they came from.
type MemoryStorage struct {
	mu            sync.RWMutex
	profiles      []models.Profile
	jobs          []models.JobPosting
	events        []models.Event
	communities   []models.Community
	conversations []models.Conversation
}

func NewMemoryStorage(snapshot *Snapshot) *MemoryStorage {
	s := &MemoryStorage{}
	if snapshot != nil {
		s.profiles = cloneEach(snapshot.Profiles, cloneProfile)
		s.jobs = cloneEach(snapshot.Jobs, cloneJob)
		s.events = cloneEach(snapshot.Events, cloneEvent)
		s.communities = clone(snapshot.Communities)
		s.conversations = cloneEach(snapshot.Conversations, cloneConversation)
	}
	return s
}

// Read methods
func (s *MemoryStorage) Profiles(ctx context.Context) ([]models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEach(s.profiles, cloneProfile), nil
}

func (s *MemoryStorage) Jobs(ctx context.Context) ([]models.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEach(s.jobs, cloneJob), nil
}

func (s *MemoryStorage) Events(ctx context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEach(s.events, cloneEvent), nil
}

func (s *MemoryStorage) Communities(ctx context.Context) ([]models.Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.communities), nil
}

func (s *MemoryStorage) Conversations(ctx context.Context) ([]models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEach(s.conversations, cloneConversation), nil
}

func (s *MemoryStorage) Conversation(ctx context.Context, id string) (models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.conversations, func(c models.Conversation) bool { return c.ID == id })
	if i < 0 {
		return models.Conversation{}, fmt.Errorf("conversation %q: %w", id, ErrNotFound)
	}
	return cloneConversation(s.conversations[i]), nil
}

// Action methods
func (s *MemoryStorage) Connect(ctx context.Context, profileID string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.profiles, func(p models.Profile) bool { return p.ID == profileID })
	if i < 0 {
		return models.Profile{}, fmt.Errorf("profile %q: %w", profileID, ErrNotFound)
	}

	profile := s.profiles[i]
	// Pending and connected profiles stay as they are
	if profile.Connection == models.ConnectionNone || profile.Connection == "" {
		profile.Connection = models.ConnectionPending
		s.profiles[i] = profile
	}
	return cloneProfile(profile), nil
}

func (s *MemoryStorage) ToggleSaved(ctx context.Context, jobID string) (models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.jobs, func(j models.JobPosting) bool { return j.ID == jobID })
	if i < 0 {
		return models.JobPosting{}, fmt.Errorf("job %q: %w", jobID, ErrNotFound)
	}

	job := s.jobs[i]
	job.Saved = !job.Saved
	s.jobs[i] = job
	return cloneJob(job), nil
}

func (s *MemoryStorage) Apply(ctx context.Context, jobID string) (models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.jobs, func(j models.JobPosting) bool { return j.ID == jobID })
	if i < 0 {
		return models.JobPosting{}, fmt.Errorf("job %q: %w", jobID, ErrNotFound)
	}

	job := s.jobs[i]
	if job.Applied {
		return cloneJob(job), ErrAlreadyApplied
	}
	job.Applied = true
	s.jobs[i] = job
	return cloneJob(job), nil
}

func (s *MemoryStorage) SetRSVP(ctx context.Context, eventID string, status models.RSVPStatus) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.events, func(e models.Event) bool { return e.ID == eventID })
	if i < 0 {
		return models.Event{}, fmt.Errorf("event %q: %w", eventID, ErrNotFound)
	}

	event := s.events[i]
	wasGoing := event.RSVP == models.RSVPGoing
	isGoing := status == models.RSVPGoing
	switch {
	case isGoing && !wasGoing:
		if event.IsFull() {
			return cloneEvent(event), ErrEventFull
		}
		event.AttendeeCount++
	case wasGoing && !isGoing && event.AttendeeCount > 0:
		event.AttendeeCount--
	}
	event.RSVP = status
	s.events[i] = event
	return cloneEvent(event), nil
}

func (s *MemoryStorage) JoinCommunity(ctx context.Context, communityID string) (models.Community, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.communities, func(c models.Community) bool { return c.ID == communityID })
	if i < 0 {
		return models.Community{}, fmt.Errorf("community %q: %w", communityID, ErrNotFound)
	}

	community := s.communities[i]
	if !community.Joined {
		community.Joined = true
		community.Members++
		s.communities[i] = community
	}
	return community, nil
}

func (s *MemoryStorage) SendMessage(ctx context.Context, conversationID, senderID, text string, at time.Time) (models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.conversations, func(c models.Conversation) bool { return c.ID == conversationID })
	if i < 0 {
		return models.Message{}, fmt.Errorf("conversation %q: %w", conversationID, ErrNotFound)
	}

	msg := models.Message{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: at,
		Read:      true,
	}

	conversation := cloneConversation(s.conversations[i])
	conversation.Messages = append(conversation.Messages, msg)
	conversation.LastMessage = &models.LastMessage{
		Text:      msg.Text,
		Timestamp: msg.Timestamp,
		Read:      true,
	}
	s.conversations[i] = conversation
	return msg, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

func clone[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func cloneEach[T any](items []T, cloneItem func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = cloneItem(item)
	}
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// cloneProfile copies every slice and pointer so callers never share
// memory with the store.
func cloneProfile(p models.Profile) models.Profile {
	p.Company = clonePtr(p.Company)
	p.Location = clonePtr(p.Location)
	p.Industry = clonePtr(p.Industry)
	p.Skills = clone(p.Skills)
	p.Experience = clone(p.Experience)
	p.Education = clone(p.Education)
	p.Achievements = clone(p.Achievements)
	return p
}

func cloneJob(j models.JobPosting) models.JobPosting {
	j.Salary = clonePtr(j.Salary)
	j.ExperienceLevel = clonePtr(j.ExperienceLevel)
	j.Deadline = clonePtr(j.Deadline)
	j.Skills = clone(j.Skills)
	j.Responsibilities = clone(j.Responsibilities)
	j.Requirements = clone(j.Requirements)
	j.Benefits = clone(j.Benefits)
	return j
}

func cloneEvent(e models.Event) models.Event {
	e.Location = clonePtr(e.Location)
	e.Category = clonePtr(e.Category)
	e.Capacity = clonePtr(e.Capacity)
	return e
}

func cloneConversation(c models.Conversation) models.Conversation {
	c.Participants = clone(c.Participants)
	c.Messages = clone(c.Messages)
	c.LastMessage = clonePtr(c.LastMessage)
	return c
}
