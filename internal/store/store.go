// Package store holds the in-memory content of the Q&A platform: questions,
// answers, users, saved questions and the activity feed.
//
// A single RWMutex guards all collections. Mutations update in place under
// the write lock so derived counters (answer counts, solved flags, saved
// pairs) change atomically with the records they describe. Reads return
// clones, never references into store-owned slices.
package store

import (
	"sync"
	"time"

	"github.com/P3chys/studyqa-api/internal/models"
	"github.com/google/uuid"
)

// DefaultCurrentUserID is the user the seeded store acts on behalf of.
const DefaultCurrentUserID = "current-user"

// Authors of the starter answers added by EnsureTutorAnswers.
const (
	TutorAuthorID      = "ai-tutor"
	PeerHelperAuthorID = "peer-helper"
)

type Store struct {
	mu sync.RWMutex

	questions  []models.Question
	answers    []models.Answer
	users      []models.User
	savedItems []models.SavedItem
	activities []models.Activity

	currentUserID string

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock replaces time.Now for CreatedAt / SavedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the uuid generator used for new entities.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

func WithCurrentUser(id string) Option {
	return func(s *Store) {
		s.currentUserID = id
	}
}

// WithUsers registers users in addition to any seeded ones.
func WithUsers(users ...models.User) Option {
	return func(s *Store) {
		for _, u := range users {
			s.users = append(s.users, u.Clone())
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		currentUserID: DefaultCurrentUserID,
		now:           time.Now,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeeded returns a store preloaded with the demo catalogue.
func NewSeeded(opts ...Option) *Store {
	s := New()
	s.questions = seedQuestions()
	s.answers = seedAnswers()
	s.users = seedUsers()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats is a point-in-time size of each collection.
type Stats struct {
	Questions  int `json:"questions"`
	Answers    int `json:"answers"`
	Users      int `json:"users"`
	SavedItems int `json:"saved_items"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Questions:  len(s.questions),
		Answers:    len(s.answers),
		Users:      len(s.users),
		SavedItems: len(s.savedItems),
	}
}

// CurrentUser returns the user the store acts for. The bool is false when
// the current user id has no matching user record; the returned User still
// carries that id.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.findUser(s.currentUserID); ok {
		return u.Clone(), true
	}
	return models.User{ID: s.currentUserID}, false
}

// SetCurrentUser switches the acting user. Unknown ids are rejected.
func (s *Store) SetCurrentUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findUser(id); !ok {
		return false
	}
	s.currentUserID = id
	return true
}

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.findUser(id)
	if !ok {
		return models.User{}, false
	}
	return u.Clone(), true
}

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Clone())
	}
	return out
}

func (s *Store) findUser(id string) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
