package models

import (
	"time"
)

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type Question struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Subject     Subject      `json:"subject"`
	Difficulty  *Difficulty  `json:"difficulty,omitempty"`
	Tags        []string     `json:"tags"`
	AuthorID    string       `json:"author_id"`
	Attachments []Attachment `json:"attachments"`
	Upvotes     int          `json:"upvotes"`
	AnswerCount int          `json:"answer_count"`
	CreatedAt   time.Time    `json:"created_at"`
	IsSolved    bool         `json:"is_solved"`
}

// Clone returns a copy that shares no slices or pointers with q.
func (q Question) Clone() Question {
	out := q
	if q.Difficulty != nil {
		d := *q.Difficulty
		out.Difficulty = &d
	}
	out.Tags = cloneStrings(q.Tags)
	out.Attachments = append([]Attachment{}, q.Attachments...)
	return out
}

// QuestionDraft is what a caller supplies to create a question. The store
// assigns the id, timestamp and counters.
type QuestionDraft struct {
	Title       string
	Description string
	Subject     Subject
	Difficulty  *Difficulty
	Tags        []string
	AuthorID    string
	Attachments []Attachment
}

type Answer struct {
	ID         string     `json:"id"`
	QuestionID string     `json:"question_id"`
	Content    string     `json:"content"`
	Steps      []string   `json:"steps"`
	AuthorID   string     `json:"author_id"`
	AuthorName string     `json:"author_name"`
	AuthorType AuthorType `json:"author_type"`
	Upvotes    int        `json:"upvotes"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (a Answer) Clone() Answer {
	out := a
	out.Steps = cloneStrings(a.Steps)
	return out
}

type AnswerDraft struct {
	QuestionID string
	Content    string
	Steps      []string
	AuthorID   string
	AuthorName string
	AuthorType AuthorType
}

func cloneStrings(in []string) []string {
	return append([]string{}, in...)
}
