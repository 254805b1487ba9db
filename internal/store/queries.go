package store

import (
	"sort"
	"strings"

	"github.com/P3chys/studyqa-api/internal/models"
)

type SortOrder string

const (
	SortNewest   SortOrder = "newest"
	SortTrending SortOrder = "trending"
)

// SearchFilter narrows the question library. Zero values match everything.
type SearchFilter struct {
	Query      string
	Subjects   []models.Subject
	Difficulty *models.Difficulty
	Sort       SortOrder
}

// Search returns questions matching every set field of f. Query is a
// case-insensitive substring match against title, description or any tag,
// whitespace included.
// Results are ordered newest first unless f.Sort is SortTrending, which
// orders by upvotes; ties keep storage order.
func (s *Store) Search(f SearchFilter) []models.Question {
	query := strings.ToLower(f.Query)

	s.mu.RLock()
	result := s.filterQuestions(func(q models.Question) bool {
		if query != "" && !matchesQuery(q, query) {
			return false
		}
		if len(f.Subjects) > 0 && !containsSubject(f.Subjects, q.Subject) {
			return false
		}
		if f.Difficulty != nil && (q.Difficulty == nil || *q.Difficulty != *f.Difficulty) {
			return false
		}
		return true
	})
	s.mu.RUnlock()

	switch f.Sort {
	case SortTrending:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Upvotes > result[j].Upvotes
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}
	return result
}

// SampleQuestions returns the first limit solved questions in storage order.
func (s *Store) SampleQuestions(limit int) []models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Question, 0)
	for _, q := range s.questions {
		if limit > 0 && len(out) == limit {
			break
		}
		if q.IsSolved {
			out = append(out, q.Clone())
		}
	}
	return out
}

// SubjectCounts reports how many questions each subject holds, in catalogue
// order, including subjects with none.
func (s *Store) SubjectCounts() []models.SubjectCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[models.Subject]int, len(models.AllSubjects))
	for _, q := range s.questions {
		counts[q.Subject]++
	}

	out := make([]models.SubjectCount, 0, len(models.AllSubjects))
	for _, subject := range models.AllSubjects {
		out = append(out, models.SubjectCount{Subject: subject, QuestionCount: counts[subject]})
	}
	return out
}

func matchesQuery(q models.Question, query string) bool {
	if strings.Contains(strings.ToLower(q.Title), query) ||
		strings.Contains(strings.ToLower(q.Description), query) {
		return true
	}
	for _, tag := range q.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func containsSubject(subjects []models.Subject, subject models.Subject) bool {
	for _, s := range subjects {
		if s == subject {
			return true
		}
	}
	return false
}
