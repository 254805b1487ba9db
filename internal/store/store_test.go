package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/P3chys/studyqa-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sequentialIDs(prefix string) func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func sampleDraft(subject models.Subject) models.QuestionDraft {
	return models.QuestionDraft{
		Title:       "How does recursion unwind?",
		Description: "I can write recursive functions but I lose track of the return path.",
		Subject:     subject,
		Tags:        []string{"recursion"},
		AuthorID:    DefaultCurrentUserID,
	}
}

func TestAddQuestion(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSeeded(WithClock(fixedClock(now)))
	before := s.Questions()

	advanced := models.DifficultyAdvanced
	draft := sampleDraft(models.SubjectProgramming)
	draft.Difficulty = &advanced
	draft.Attachments = []models.Attachment{{ID: "att-1", Name: "trace.png", URL: "/a/trace.png", Type: "image/png"}}

	id := s.AddQuestion(draft)
	require.NotEmpty(t, id)
	for _, q := range before {
		assert.NotEqual(t, q.ID, id)
	}

	q, ok := s.QuestionByID(id)
	require.True(t, ok)
	assert.Equal(t, draft.Title, q.Title)
	assert.Equal(t, draft.Description, q.Description)
	assert.Equal(t, models.SubjectProgramming, q.Subject)
	require.NotNil(t, q.Difficulty)
	assert.Equal(t, models.DifficultyAdvanced, *q.Difficulty)
	assert.Equal(t, []string{"recursion"}, q.Tags)
	assert.Equal(t, draft.Attachments, q.Attachments)
	assert.Equal(t, 0, q.Upvotes)
	assert.Equal(t, 0, q.AnswerCount)
	assert.False(t, q.IsSolved)
	assert.Equal(t, now, q.CreatedAt)

	all := s.Questions()
	require.Len(t, all, len(before)+1)
	assert.Equal(t, id, all[0].ID, "new questions are prepended")
}

func TestAddQuestion_RegeneratesCollidingIDs(t *testing.T) {
	ids := []string{"1", "1", "fresh"}
	var n int
	s := NewSeeded(WithIDGenerator(func() string {
		id := ids[n%len(ids)]
		n++
		return id
	}))

	id := s.AddQuestion(sampleDraft(models.SubjectMath))
	assert.Equal(t, "fresh", id)
}

func TestUpvoteQuestion(t *testing.T) {
	t.Run("increments by one per call", func(t *testing.T) {
		s := NewSeeded()

		require.True(t, s.UpvoteQuestion("1"))
		q, _ := s.QuestionByID("1")
		assert.Equal(t, 43, q.Upvotes)

		require.True(t, s.UpvoteQuestion("1"))
		q, _ = s.QuestionByID("1")
		assert.Equal(t, 44, q.Upvotes)
	})

	t.Run("unknown id leaves state unchanged", func(t *testing.T) {
		s := NewSeeded()
		before := s.Questions()

		assert.False(t, s.UpvoteQuestion("does-not-exist"))
		assert.Equal(t, before, s.Questions())
	})
}

func TestAddAnswer(t *testing.T) {
	t.Run("seeded question", func(t *testing.T) {
		s := NewSeeded()
		prior, _ := s.QuestionByID("1")
		priorAnswers := s.AnswersByQuestionID("1")

		id := s.AddAnswer(models.AnswerDraft{
			QuestionID: "1",
			Content:    "Complete the square first.",
			Steps:      []string{"Move c", "Halve b", "Square it"},
			AuthorID:   "user-2",
			AuthorName: "Mike Chen",
			AuthorType: models.AuthorPeerHelper,
		})

		answers := s.AnswersByQuestionID("1")
		require.Len(t, answers, len(priorAnswers)+1)
		last := answers[len(answers)-1]
		assert.Equal(t, id, last.ID)
		assert.Equal(t, 0, last.Upvotes)
		assert.Equal(t, []string{"Move c", "Halve b", "Square it"}, last.Steps)

		q, _ := s.QuestionByID("1")
		assert.Equal(t, prior.AnswerCount+1, q.AnswerCount)
		assert.True(t, q.IsSolved)
	})

	t.Run("first answer solves the question and it stays solved", func(t *testing.T) {
		s := New()
		qid := s.AddQuestion(sampleDraft(models.SubjectMath))

		s.AddAnswer(models.AnswerDraft{QuestionID: qid, Content: "one", AuthorType: models.AuthorAITutor})
		q, _ := s.QuestionByID(qid)
		assert.True(t, q.IsSolved)
		assert.Equal(t, 1, q.AnswerCount)

		s.AddAnswer(models.AnswerDraft{QuestionID: qid, Content: "two", AuthorType: models.AuthorPeerHelper})
		q, _ = s.QuestionByID(qid)
		assert.True(t, q.IsSolved)
		assert.Equal(t, 2, q.AnswerCount)
	})

	t.Run("unknown question still records the answer", func(t *testing.T) {
		s := NewSeeded()
		before := s.Questions()

		s.AddAnswer(models.AnswerDraft{QuestionID: "missing", Content: "orphan"})

		assert.Len(t, s.AnswersByQuestionID("missing"), 1)
		assert.Equal(t, before, s.Questions())
	})
}

func TestUpvoteAnswer(t *testing.T) {
	s := NewSeeded()

	require.True(t, s.UpvoteAnswer("a1"))
	a, ok := s.AnswerByID("a1")
	require.True(t, ok)
	assert.Equal(t, 36, a.Upvotes)

	assert.False(t, s.UpvoteAnswer("nope"))
}

func TestToggleSave(t *testing.T) {
	s := NewSeeded()
	require.Empty(t, s.SavedQuestions())

	assert.False(t, s.IsSaved("2"))
	assert.True(t, s.ToggleSave("2"))
	assert.True(t, s.IsSaved("2"))

	saved := s.SavedQuestions()
	require.Len(t, saved, 1)
	assert.Equal(t, "2", saved[0].ID)

	assert.False(t, s.ToggleSave("2"))
	assert.False(t, s.IsSaved("2"))
	assert.Empty(t, s.SavedQuestions())
}

func TestToggleSave_ScopedToCurrentUser(t *testing.T) {
	s := NewSeeded()
	s.ToggleSave("1")

	require.True(t, s.SetCurrentUser("user-1"))
	assert.False(t, s.IsSaved("1"))
	assert.Empty(t, s.SavedQuestions())

	s.ToggleSave("3")
	require.True(t, s.SetCurrentUser(DefaultCurrentUserID))
	assert.True(t, s.IsSaved("1"))
	assert.False(t, s.IsSaved("3"))
	assert.Equal(t, 2, s.Stats().SavedItems)
}

func TestSavedQuestions_StorageOrder(t *testing.T) {
	s := NewSeeded()
	s.ToggleSave("5")
	s.ToggleSave("1")
	s.ToggleSave("3")

	var ids []string
	for _, q := range s.SavedQuestions() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"1", "3", "5"}, ids)
}

func TestSimilarQuestions(t *testing.T) {
	s := NewSeeded()
	unsolved := s.AddQuestion(sampleDraft(models.SubjectMath))
	solved := s.AddQuestion(sampleDraft(models.SubjectMath))
	s.AddAnswer(models.AnswerDraft{QuestionID: solved, Content: "done"})

	similar := s.SimilarQuestions(models.SubjectMath, "1", 0)
	var ids []string
	for _, q := range similar {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{solved}, ids)
	assert.NotContains(t, ids, unsolved)

	t.Run("limit truncates in storage order", func(t *testing.T) {
		s := New()
		var want []string
		for i := 0; i < 8; i++ {
			id := s.AddQuestion(sampleDraft(models.SubjectBiology))
			s.AddAnswer(models.AnswerDraft{QuestionID: id, Content: "ok"})
			want = append([]string{id}, want...)
		}

		got := s.SimilarQuestions(models.SubjectBiology, "", 3)
		require.Len(t, got, 3)
		for i, q := range got {
			assert.Equal(t, want[i], q.ID)
		}

		assert.Len(t, s.SimilarQuestions(models.SubjectBiology, "", 0), DefaultSimilarLimit)
	})
}

func TestByAuthor(t *testing.T) {
	s := NewSeeded()

	var qids []string
	for _, q := range s.QuestionsByAuthor("user-1") {
		qids = append(qids, q.ID)
	}
	assert.Equal(t, []string{"1", "3"}, qids)

	var aids []string
	for _, a := range s.AnswersByAuthor("ai-tutor") {
		aids = append(aids, a.ID)
	}
	assert.Equal(t, []string{"a1", "a2"}, aids)

	assert.Empty(t, s.QuestionsByAuthor("nobody"))
	assert.Empty(t, s.AnswersByAuthor("nobody"))
}

func TestQuestionByID_NotFound(t *testing.T) {
	s := NewSeeded()
	q, ok := s.QuestionByID("42")
	assert.False(t, ok)
	assert.Equal(t, models.Question{}, q)
}

func TestReadsDoNotAliasStoreState(t *testing.T) {
	s := NewSeeded()

	q, _ := s.QuestionByID("2")
	q.Tags[0] = "mutated"
	*q.Difficulty = models.DifficultyAdvanced

	again, _ := s.QuestionByID("2")
	assert.Equal(t, "react", again.Tags[0])
	assert.Equal(t, models.DifficultyIntermediate, *again.Difficulty)

	answers := s.AnswersByQuestionID("1")
	answers[0].Steps[0] = "mutated"
	assert.NotEqual(t, "mutated", s.AnswersByQuestionID("1")[0].Steps[0])

	draft := sampleDraft(models.SubjectMath)
	id := s.AddQuestion(draft)
	draft.Tags[0] = "mutated"
	stored, _ := s.QuestionByID(id)
	assert.Equal(t, "recursion", stored.Tags[0])
}

func TestCurrentUser(t *testing.T) {
	s := NewSeeded()

	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Alex Johnson", u.Username)

	assert.False(t, s.SetCurrentUser("ghost"))
	u, _ = s.CurrentUser()
	assert.Equal(t, DefaultCurrentUserID, u.ID)

	empty := New(WithCurrentUser("guest"))
	u, ok = empty.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, "guest", u.ID)
}

func TestWithUsers(t *testing.T) {
	s := New(WithUsers(models.User{ID: "u-9", Username: "Nina"}), WithCurrentUser("u-9"))

	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Nina", u.Username)
	assert.Len(t, s.Users(), 1)
}

func TestConcurrentAddAnswer(t *testing.T) {
	s := New()
	qid := s.AddQuestion(sampleDraft(models.SubjectScience))

	const workers = 16
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.AddAnswer(models.AnswerDraft{QuestionID: qid, Content: "concurrent"})
				s.UpvoteQuestion(qid)
			}
		}()
	}
	wg.Wait()

	q, _ := s.QuestionByID(qid)
	assert.Equal(t, workers*perWorker, q.AnswerCount)
	assert.Equal(t, workers*perWorker, q.Upvotes)
	assert.Len(t, s.AnswersByQuestionID(qid), workers*perWorker)
	assert.True(t, q.IsSolved)
}

func TestRecentActivities(t *testing.T) {
	s := New(WithIDGenerator(sequentialIDs("id")))
	qid := s.AddQuestion(sampleDraft(models.SubjectWriting))
	aid := s.AddAnswer(models.AnswerDraft{QuestionID: qid, AuthorID: "user-2"})
	s.ToggleSave(qid)
	s.ToggleSave(qid)

	got := s.RecentActivities(10)
	require.Len(t, got, 3)
	assert.Equal(t, models.ActivityQuestionSaved, got[0].ActivityType)
	assert.Equal(t, DefaultCurrentUserID, got[0].UserID)
	assert.Equal(t, models.ActivityAnswerPosted, got[1].ActivityType)
	assert.Equal(t, aid, got[1].AnswerID)
	assert.Equal(t, models.ActivityQuestionAsked, got[2].ActivityType)
	assert.Equal(t, qid, got[2].QuestionID)

	assert.Len(t, s.RecentActivities(1), 1)
}

func TestRecentActivities_Bounded(t *testing.T) {
	s := New()
	for i := 0; i < maxActivities+20; i++ {
		s.AddQuestion(sampleDraft(models.SubjectOther))
	}
	assert.Len(t, s.RecentActivities(0), maxActivities)
}

func TestEnsureTutorAnswers(t *testing.T) {
	s := New(WithIDGenerator(sequentialIDs("id")))
	qid := s.AddQuestion(sampleDraft(models.SubjectPhysics))

	added := s.EnsureTutorAnswers(qid)
	require.Len(t, added, 2)

	assert.Equal(t, TutorAuthorID, added[0].AuthorID)
	assert.Equal(t, "AI Tutor", added[0].AuthorName)
	assert.Equal(t, models.AuthorAITutor, added[0].AuthorType)
	assert.Equal(t, "Here's a comprehensive solution to your Physics question.", added[0].Content)
	assert.Len(t, added[0].Steps, 4)

	assert.Equal(t, PeerHelperAuthorID, added[1].AuthorID)
	assert.Equal(t, "Study Helper", added[1].AuthorName)
	assert.Equal(t, models.AuthorPeerHelper, added[1].AuthorType)
	assert.Len(t, added[1].Steps, 4)

	q, _ := s.QuestionByID(qid)
	assert.Equal(t, 2, q.AnswerCount)
	assert.True(t, q.IsSolved)
	assert.Equal(t, []models.Answer{added[0], added[1]}, s.AnswersByQuestionID(qid))

	t.Run("second view adds nothing", func(t *testing.T) {
		assert.Nil(t, s.EnsureTutorAnswers(qid))
		assert.Len(t, s.AnswersByQuestionID(qid), 2)
	})

	t.Run("answered question is left alone", func(t *testing.T) {
		other := s.AddQuestion(sampleDraft(models.SubjectPhysics))
		s.AddAnswer(models.AnswerDraft{QuestionID: other, Content: "already answered"})

		assert.Nil(t, s.EnsureTutorAnswers(other))
		assert.Len(t, s.AnswersByQuestionID(other), 1)
	})

	t.Run("unknown question", func(t *testing.T) {
		before := s.Stats().Answers
		assert.Nil(t, s.EnsureTutorAnswers("ghost"))
		assert.Equal(t, before, s.Stats().Answers)
	})
}

func TestEnsureTutorAnswers_NewQuestionBecomesSimilarAndSample(t *testing.T) {
	s := New()
	viewed := s.AddQuestion(sampleDraft(models.SubjectBiology))
	reference := s.AddQuestion(sampleDraft(models.SubjectBiology))

	assert.Empty(t, s.SimilarQuestions(models.SubjectBiology, reference, 0))

	s.EnsureTutorAnswers(viewed)

	assert.Equal(t, []string{viewed}, questionIDs(s.SimilarQuestions(models.SubjectBiology, reference, 0)))
	assert.Equal(t, []string{viewed}, questionIDs(s.SampleQuestions(0)))
}

func TestEnsureTutorAnswers_Concurrent(t *testing.T) {
	s := New()
	qid := s.AddQuestion(sampleDraft(models.SubjectChemistry))

	const viewers = 32
	var wg sync.WaitGroup
	added := make([]int, viewers)
	for v := 0; v < viewers; v++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			added[v] = len(s.EnsureTutorAnswers(qid))
		}(v)
	}
	wg.Wait()

	total := 0
	for _, n := range added {
		total += n
	}
	assert.Equal(t, 2, total)

	q, _ := s.QuestionByID(qid)
	assert.Equal(t, 2, q.AnswerCount)
	assert.Len(t, s.AnswersByQuestionID(qid), 2)
}
