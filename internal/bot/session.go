package bot

import (
	"sync"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

// Session is the filter state of one chat. Opening a page starts from a
// clean state, the same as mounting it fresh.
type Session struct {
	Page   catalog.Page
	Search string
	Tab    string
	Facets pipeline.Selection
}

func (s Session) query() pipeline.Query {
	return pipeline.Query{Search: s.Search, Facets: s.Facets}
}

type Sessions struct {
	mu     sync.Mutex
	byChat map[int64]Session
}

func NewSessions() *Sessions {
	return &Sessions{byChat: make(map[int64]Session)}
}

// Get returns the chat's session; ok is false before any page was opened.
func (s *Sessions) Get(chatID int64) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.byChat[chatID]
	return session, ok
}

// Open switches the chat to page and drops all previous filter state.
func (s *Sessions) Open(chatID int64, page catalog.Page, search string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := Session{Page: page, Search: search}
	s.byChat[chatID] = session
	return session
}

// Update applies fn to a copy of the chat's session and stores the result.
// It returns false when the chat has no open page.
func (s *Sessions) Update(chatID int64, fn func(*Session)) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.byChat[chatID]
	if !ok {
		return Session{}, false
	}
	fn(&session)
	s.byChat[chatID] = session
	return session, true
}
