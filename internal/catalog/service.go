package catalog

import (
	"context"
	"fmt"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/classifier"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/storage"
	"go.uber.org/zap"
)

// Service evaluates pages over a Storage. It reads the clock once per call,
// so labels always reflect the time of the request.
type Service struct {
	store       storage.Storage
	clock       classifier.Clock
	currentUser string
	newJobDays  int
	logger      *zap.Logger
}

type Options struct {
	CurrentUserID string
	NewJobDays    int
}

func NewService(store storage.Storage, clock classifier.Clock, opts Options, logger *zap.Logger) *Service {
	if opts.NewJobDays <= 0 {
		opts.NewJobDays = classifier.DefaultNewJobDays
	}
	return &Service{
		store:       store,
		clock:       clock,
		currentUser: opts.CurrentUserID,
		newJobDays:  opts.NewJobDays,
		logger:      logger,
	}
}

// CurrentUser returns the id of the viewer.
func (s *Service) CurrentUser() string {
	return s.currentUser
}

// Clock returns the clock labels are computed against.
func (s *Service) Clock() classifier.Clock {
	return s.clock
}

// Store exposes the underlying storage for viewer actions.
func (s *Service) Store() storage.Storage {
	return s.store
}

func (s *Service) Alumni(ctx context.Context, q AlumniQuery) (Result[models.Profile], error) {
	profiles, err := s.store.Profiles(ctx)
	if err != nil {
		return Result[models.Profile]{}, fmt.Errorf("failed to load profiles: %w", err)
	}
	r, err := Alumni(profiles, q)
	if err != nil {
		return r, err
	}
	s.logPage(PageAlumni, q.Query, len(r.Items), len(profiles))
	return r, nil
}

// AlumniFacets lists the facets available for the current profiles.
func (s *Service) AlumniFacets(ctx context.Context) ([]pipeline.Facet[models.Profile], error) {
	profiles, err := s.store.Profiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return AlumniFilter(profiles).Facets(), nil
}

func (s *Service) Jobs(ctx context.Context, q JobsQuery) (Result[JobCard], error) {
	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return Result[JobCard]{}, fmt.Errorf("failed to load jobs: %w", err)
	}
	r, err := Jobs(jobs, q, s.clock.Now(), s.newJobDays)
	if err != nil {
		return r, err
	}
	s.logPage(PageJobs, q.Query, len(r.Items), len(jobs))
	return r, nil
}

// Companies summarises open positions per company.
func (s *Service) Companies(ctx context.Context) ([]CompanyOpenings, error) {
	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	return Companies(jobs), nil
}

func (s *Service) Events(ctx context.Context, q EventsQuery) (Result[EventCard], error) {
	events, err := s.store.Events(ctx)
	if err != nil {
		return Result[EventCard]{}, fmt.Errorf("failed to load events: %w", err)
	}
	r, err := Events(events, q, s.clock.Now())
	if err != nil {
		return r, err
	}
	s.logPage(PageEvents, q.Query, len(r.Items), len(events))
	return r, nil
}

func (s *Service) Communities(ctx context.Context, search string) (Result[models.Community], error) {
	communities, err := s.store.Communities(ctx)
	if err != nil {
		return Result[models.Community]{}, fmt.Errorf("failed to load communities: %w", err)
	}
	r := Communities(communities, search)
	s.logPage(PageCommunities, pipeline.Query{Search: search}, len(r.Items), len(communities))
	return r, nil
}

func (s *Service) Conversations(ctx context.Context, search string) (Result[ConversationSummary], error) {
	conversations, err := s.store.Conversations(ctx)
	if err != nil {
		return Result[ConversationSummary]{}, fmt.Errorf("failed to load conversations: %w", err)
	}
	r := Conversations(conversations, search, s.currentUser, s.clock.Now())
	s.logPage(PageConversations, pipeline.Query{Search: search}, len(r.Items), len(conversations))
	return r, nil
}

// Job returns the detail page for one posting.
func (s *Service) Job(ctx context.Context, id string) (Detail[JobCard], error) {
	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return Detail[JobCard]{}, fmt.Errorf("failed to load jobs: %w", err)
	}
	return Job(jobs, id, s.clock.Now(), s.newJobDays), nil
}

// Profile returns the detail page for one alumnus.
func (s *Service) Profile(ctx context.Context, id string) (Detail[models.Profile], error) {
	profiles, err := s.store.Profiles(ctx)
	if err != nil {
		return Detail[models.Profile]{}, fmt.Errorf("failed to load profiles: %w", err)
	}
	return Profile(profiles, id), nil
}

// ThreadView is one conversation grouped by day.
type ThreadView struct {
	Conversation models.Conversation
	With         models.Participant
	Buckets      []pipeline.Bucket[ThreadMessage]
}

func (s *Service) Thread(ctx context.Context, conversationID string) (ThreadView, error) {
	c, err := s.store.Conversation(ctx, conversationID)
	if err != nil {
		return ThreadView{}, err
	}
	with, _ := c.Other(s.currentUser)
	return ThreadView{
		Conversation: c,
		With:         with,
		Buckets:      Thread(c, s.currentUser, s.clock.Now()),
	}, nil
}

func (s *Service) logPage(page Page, q pipeline.Query, results, total int) {
	s.logger.Debug("Evaluated page",
		zap.String("page", string(page)),
		zap.String("query", q.Search),
		zap.Int("filters", q.Facets.Count()),
		zap.Int("results", results),
		zap.Int("total", total))
}
