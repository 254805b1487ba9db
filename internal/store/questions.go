package store

import (
	"github.com/P3chys/studyqa-api/internal/models"
)

// DefaultSimilarLimit caps SimilarQuestions when the caller passes no limit.
const DefaultSimilarLimit = 5

// AddQuestion stores a new unsolved question ahead of all existing ones and
// returns its id.
func (s *Store) AddQuestion(draft models.QuestionDraft) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := models.Question{
		ID:          s.uniqueID(),
		Title:       draft.Title,
		Description: draft.Description,
		Subject:     draft.Subject,
		Tags:        append([]string{}, draft.Tags...),
		AuthorID:    draft.AuthorID,
		Attachments: append([]models.Attachment{}, draft.Attachments...),
		CreatedAt:   s.now(),
	}
	if draft.Difficulty != nil {
		d := *draft.Difficulty
		q.Difficulty = &d
	}

	s.questions = append([]models.Question{q}, s.questions...)
	s.recordActivity(draft.AuthorID, models.ActivityQuestionAsked, q.ID, "")
	return q.ID
}

// UpvoteQuestion adds one upvote. It reports whether the question exists;
// nothing changes when it does not.
func (s *Store) UpvoteQuestion(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.questionIndex(id)
	if i < 0 {
		return false
	}
	s.questions[i].Upvotes++
	return true
}

func (s *Store) QuestionByID(id string) (models.Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.questionIndex(id)
	if i < 0 {
		return models.Question{}, false
	}
	return s.questions[i].Clone(), true
}

// Questions returns every question in storage order.
func (s *Store) Questions() []models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterQuestions(func(models.Question) bool { return true })
}

func (s *Store) QuestionsByAuthor(authorID string) []models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterQuestions(func(q models.Question) bool {
		return q.AuthorID == authorID
	})
}

// SimilarQuestions lists solved questions of the same subject other than
// excludeID, in storage order, at most limit of them. It does not rank by
// relevance.
func (s *Store) SimilarQuestions(subject models.Subject, excludeID string, limit int) []models.Question {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Question, 0, limit)
	for _, q := range s.questions {
		if len(out) == limit {
			break
		}
		if q.Subject == subject && q.ID != excludeID && q.IsSolved {
			out = append(out, q.Clone())
		}
	}
	return out
}

func (s *Store) questionIndex(id string) int {
	for i := range s.questions {
		if s.questions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) filterQuestions(keep func(models.Question) bool) []models.Question {
	out := make([]models.Question, 0)
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q.Clone())
		}
	}
	return out
}

// uniqueID draws ids until one is unused by any question or answer. With
// uuids this loops once; injected generators in tests may collide.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if s.questionIndex(id) < 0 && s.answerIndex(id) < 0 {
			return id
		}
	}
}
