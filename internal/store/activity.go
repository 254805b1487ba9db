package store

import (
	"github.com/P3chys/studyqa-api/internal/models"
)

// maxActivities bounds the feed; the oldest entries are dropped first.
const maxActivities = 500

// recordActivity must be called with the write lock held.
func (s *Store) recordActivity(userID string, activityType models.ActivityType, questionID, answerID string) {
	s.activities = append(s.activities, models.Activity{
		ID:           s.newID(),
		UserID:       userID,
		ActivityType: activityType,
		QuestionID:   questionID,
		AnswerID:     answerID,
		CreatedAt:    s.now(),
	})
	if over := len(s.activities) - maxActivities; over > 0 {
		s.activities = append([]models.Activity{}, s.activities[over:]...)
	}
}

// RecentActivities returns up to limit activities, newest first.
func (s *Store) RecentActivities(limit int) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.activities)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]models.Activity, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.activities[i])
	}
	return out
}
