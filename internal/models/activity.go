package models

import (
	"time"
)

type ActivityType string

const (
	ActivityQuestionAsked ActivityType = "question_asked"
	ActivityAnswerPosted  ActivityType = "answer_posted"
	ActivityQuestionSaved ActivityType = "question_saved"
)

type Activity struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	ActivityType ActivityType `json:"activity_type"`
	QuestionID   string       `json:"question_id,omitempty"`
	AnswerID     string       `json:"answer_id,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
