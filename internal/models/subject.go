package models

import "strings"

type Subject string

const (
	SubjectMath        Subject = "Math"
	SubjectProgramming Subject = "Programming"
	SubjectScience     Subject = "Science"
	SubjectWriting     Subject = "Writing"
	SubjectPhysics     Subject = "Physics"
	SubjectChemistry   Subject = "Chemistry"
	SubjectBiology     Subject = "Biology"
	SubjectOther       Subject = "Other"
)

// AllSubjects is the catalogue order used by listings.
var AllSubjects = []Subject{
	SubjectMath,
	SubjectProgramming,
	SubjectScience,
	SubjectWriting,
	SubjectPhysics,
	SubjectChemistry,
	SubjectBiology,
	SubjectOther,
}

func (s Subject) Valid() bool {
	for _, known := range AllSubjects {
		if s == known {
			return true
		}
	}
	return false
}

// DefaultTag is the tag a question gets when the asker supplies none.
func (s Subject) DefaultTag() string {
	return strings.ToLower(string(s))
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type AuthorType string

const (
	AuthorAITutor    AuthorType = "AI Tutor"
	AuthorPeerHelper AuthorType = "Peer Helper"
)

func (a AuthorType) Valid() bool {
	return a == AuthorAITutor || a == AuthorPeerHelper
}

// SubjectCount is the number of questions filed under a subject.
type SubjectCount struct {
	Subject       Subject `json:"subject"`
	QuestionCount int     `json:"question_count"`
}
