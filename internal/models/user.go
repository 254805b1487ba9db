package models

import (
	"time"
)

type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Avatar   string   `json:"avatar,omitempty"`
	Badges   []string `json:"badges"`
}

func (u User) Clone() User {
	out := u
	out.Badges = cloneStrings(u.Badges)
	return out
}

// SavedItem records that a user bookmarked a question. A (UserID, QuestionID)
// pair appears at most once.
type SavedItem struct {
	UserID     string    `json:"user_id"`
	QuestionID string    `json:"question_id"`
	SavedAt    time.Time `json:"saved_at"`
}
