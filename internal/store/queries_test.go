package store

import (
	"testing"
	"time"

	"github.com/P3chys/studyqa-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionIDs(questions []models.Question) []string {
	out := make([]string, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	intermediate := models.DifficultyIntermediate
	beginner := models.DifficultyBeginner

	tests := []struct {
		name   string
		filter SearchFilter
		want   []string
	}{
		{
			name:   "no filter sorts newest first",
			filter: SearchFilter{},
			want:   []string{"1", "2", "3", "4", "5"},
		},
		{
			name:   "trending sorts by upvotes",
			filter: SearchFilter{Sort: SortTrending},
			want:   []string{"2", "4", "3", "5", "1"},
		},
		{
			name:   "query matches tags case-insensitively",
			filter: SearchFilter{Query: "EQUATIONS"},
			want:   []string{"1", "4"},
		},
		{
			name:   "query matches description",
			filter: SearchFilter{Query: "argumentative"},
			want:   []string{"5"},
		},
		{
			name:   "subject set",
			filter: SearchFilter{Subjects: []models.Subject{models.SubjectPhysics, models.SubjectWriting}},
			want:   []string{"3", "5"},
		},
		{
			name:   "difficulty",
			filter: SearchFilter{Difficulty: &intermediate, Sort: SortTrending},
			want:   []string{"2", "4", "5"},
		},
		{
			name:   "combined filters",
			filter: SearchFilter{Query: "equations", Difficulty: &beginner},
			want:   []string{"1"},
		},
		{
			name:   "query whitespace is significant",
			filter: SearchFilter{Query: "efficiently "},
			want:   []string{},
		},
		{
			name:   "query without trailing space",
			filter: SearchFilter{Query: "efficiently"},
			want:   []string{"4"},
		},
		{
			name:   "nothing matches",
			filter: SearchFilter{Query: "photosynthesis"},
			want:   []string{},
		},
	}

	s := NewSeeded()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, questionIDs(s.Search(tt.filter)))
		})
	}
}

func TestSearch_DifficultyFilterSkipsUnrated(t *testing.T) {
	s := New(WithClock(func() time.Time { return time.Unix(0, 0) }))
	s.AddQuestion(models.QuestionDraft{Title: "unrated", Subject: models.SubjectOther})

	advanced := models.DifficultyAdvanced
	assert.Empty(t, s.Search(SearchFilter{Difficulty: &advanced}))
	assert.Len(t, s.Search(SearchFilter{}), 1)
}

func TestSampleQuestions(t *testing.T) {
	s := NewSeeded()
	unsolved := s.AddQuestion(sampleDraft(models.SubjectMath))

	got := questionIDs(s.SampleQuestions(3))
	assert.Equal(t, []string{"1", "2", "3"}, got)
	assert.NotContains(t, questionIDs(s.SampleQuestions(0)), unsolved)
	assert.Len(t, s.SampleQuestions(0), 5)
}

func TestSubjectCounts(t *testing.T) {
	s := NewSeeded()
	s.AddQuestion(sampleDraft(models.SubjectMath))

	counts := s.SubjectCounts()
	require.Len(t, counts, len(models.AllSubjects))

	byName := make(map[models.Subject]int)
	for i, c := range counts {
		assert.Equal(t, models.AllSubjects[i], c.Subject)
		byName[c.Subject] = c.QuestionCount
	}
	assert.Equal(t, 2, byName[models.SubjectMath])
	assert.Equal(t, 1, byName[models.SubjectChemistry])
	assert.Equal(t, 0, byName[models.SubjectBiology])
}
