package store

import (
	"github.com/P3chys/studyqa-api/internal/models"
)

// ToggleSave adds or removes the current user's bookmark on a question and
// returns the resulting state. The question is not required to exist.
func (s *Store) ToggleSave(questionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.savedIndex(s.currentUserID, questionID); i >= 0 {
		s.savedItems = append(s.savedItems[:i], s.savedItems[i+1:]...)
		return false
	}

	s.savedItems = append(s.savedItems, models.SavedItem{
		UserID:     s.currentUserID,
		QuestionID: questionID,
		SavedAt:    s.now(),
	})
	s.recordActivity(s.currentUserID, models.ActivityQuestionSaved, questionID, "")
	return true
}

func (s *Store) IsSaved(questionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.savedIndex(s.currentUserID, questionID) >= 0
}

// SavedQuestions returns the current user's bookmarked questions in question
// storage order, not in the order they were saved.
func (s *Store) SavedQuestions() []models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	saved := make(map[string]struct{})
	for _, item := range s.savedItems {
		if item.UserID == s.currentUserID {
			saved[item.QuestionID] = struct{}{}
		}
	}

	return s.filterQuestions(func(q models.Question) bool {
		_, ok := saved[q.ID]
		return ok
	})
}

func (s *Store) savedIndex(userID, questionID string) int {
	for i, item := range s.savedItems {
		if item.UserID == userID && item.QuestionID == questionID {
			return i
		}
	}
	return -1
}
