package handlers

import (
	"net/http"
	"strings"

	"github.com/P3chys/studyqa-api/internal/logger"
	"github.com/P3chys/studyqa-api/internal/models"
	"github.com/P3chys/studyqa-api/internal/store"
	"github.com/gin-gonic/gin"
)

const defaultSampleLimit = 6

type CreateQuestionRequest struct {
	Title       string              `json:"title" binding:"required,min=10,max=200"`
	Description string              `json:"description" binding:"required,min=20"`
	Subject     models.Subject      `json:"subject" binding:"required,subject"`
	Difficulty  *models.Difficulty  `json:"difficulty" binding:"omitempty,difficulty"`
	Tags        []string            `json:"tags" binding:"omitempty,max=10,dive,required,max=40"`
	Attachments []models.Attachment `json:"attachments" binding:"omitempty,max=5"`
}

type CreateAnswerRequest struct {
	Content    string            `json:"content" binding:"required"`
	Steps      []string          `json:"steps" binding:"omitempty,dive,required"`
	AuthorName string            `json:"author_name"`
	AuthorType models.AuthorType `json:"author_type" binding:"omitempty,author_type"`
}

// ListQuestions is the question library: full filter and sort over the store.
func ListQuestions(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.SearchFilter{
			Query: c.Query("q"),
			Sort:  store.SortOrder(strings.ToLower(c.DefaultQuery("sort", string(store.SortNewest)))),
		}

		if filter.Sort != store.SortNewest && filter.Sort != store.SortTrending {
			respondValidation(c, "sort must be newest or trending")
			return
		}

		for _, raw := range c.QueryArray("subject") {
			subject := models.Subject(raw)
			if !subject.Valid() {
				respondValidation(c, "Unknown subject "+raw)
				return
			}
			filter.Subjects = append(filter.Subjects, subject)
		}

		if raw := c.Query("difficulty"); raw != "" {
			difficulty := models.Difficulty(raw)
			if !difficulty.Valid() {
				respondValidation(c, "Unknown difficulty "+raw)
				return
			}
			filter.Difficulty = &difficulty
		}

		respondOK(c, http.StatusOK, s.Search(filter))
	}
}

// ListSampleQuestions returns solved questions for the landing page.
func ListSampleQuestions(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondOK(c, http.StatusOK, s.SampleQuestions(queryLimit(c, defaultSampleLimit)))
	}
}

func CreateQuestion(s *store.Store, indexer QuestionIndexer, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateQuestionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidation(c, validationMessage(err))
			return
		}

		tags := req.Tags
		if len(tags) == 0 {
			tags = []string{req.Subject.DefaultTag()}
		}

		author, _ := s.CurrentUser()
		id := s.AddQuestion(models.QuestionDraft{
			Title:       strings.TrimSpace(req.Title),
			Description: strings.TrimSpace(req.Description),
			Subject:     req.Subject,
			Difficulty:  req.Difficulty,
			Tags:        tags,
			AuthorID:    author.ID,
			Attachments: req.Attachments,
		})

		log.WithUserID(author.ID).WithField("question_id", id).Info("Question created")
		reindexQuestion(indexer, s, log, id)

		question, _ := s.QuestionByID(id)
		respondOK(c, http.StatusCreated, question)
	}
}

func GetQuestion(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		question, ok := s.QuestionByID(c.Param("id"))
		if !ok {
			respondNotFound(c, "Question not found")
			return
		}
		respondOK(c, http.StatusOK, question)
	}
}

func UpvoteQuestion(s *store.Store, indexer QuestionIndexer, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !s.UpvoteQuestion(id) {
			respondNotFound(c, "Question not found")
			return
		}

		reindexQuestion(indexer, s, log, id)

		question, _ := s.QuestionByID(id)
		respondOK(c, http.StatusOK, gin.H{"upvotes": question.Upvotes})
	}
}

// GetSimilarQuestions lists other solved questions of the same subject.
func GetSimilarQuestions(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		question, ok := s.QuestionByID(c.Param("id"))
		if !ok {
			respondNotFound(c, "Question not found")
			return
		}

		similar := s.SimilarQuestions(question.Subject, question.ID, queryLimit(c, store.DefaultSimilarLimit))
		respondOK(c, http.StatusOK, similar)
	}
}

// ListAnswers is the question detail view. A question nobody has answered
// yet gets its tutor and peer-helper starter answers on first view.
func ListAnswers(s *store.Store, indexer QuestionIndexer, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		questionID := c.Param("id")
		if _, ok := s.QuestionByID(questionID); !ok {
			respondNotFound(c, "Question not found")
			return
		}

		if added := s.EnsureTutorAnswers(questionID); len(added) > 0 {
			log.WithField("question_id", questionID).WithField("answers", len(added)).Info("Starter answers added")
			reindexQuestion(indexer, s, log, questionID)
		}

		respondOK(c, http.StatusOK, s.AnswersByQuestionID(questionID))
	}
}

func CreateAnswer(s *store.Store, indexer QuestionIndexer, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		questionID := c.Param("id")
		if _, ok := s.QuestionByID(questionID); !ok {
			respondNotFound(c, "Question not found")
			return
		}

		var req CreateAnswerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidation(c, validationMessage(err))
			return
		}

		author, _ := s.CurrentUser()
		authorName := req.AuthorName
		if authorName == "" {
			authorName = author.Username
		}
		authorType := req.AuthorType
		if authorType == "" {
			authorType = models.AuthorPeerHelper
		}

		id := s.AddAnswer(models.AnswerDraft{
			QuestionID: questionID,
			Content:    strings.TrimSpace(req.Content),
			Steps:      req.Steps,
			AuthorID:   author.ID,
			AuthorName: authorName,
			AuthorType: authorType,
		})

		log.WithUserID(author.ID).WithField("answer_id", id).WithField("question_id", questionID).Info("Answer posted")
		reindexQuestion(indexer, s, log, questionID)

		answer, _ := s.AnswerByID(id)
		respondOK(c, http.StatusCreated, answer)
	}
}

func UpvoteAnswer(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !s.UpvoteAnswer(id) {
			respondNotFound(c, "Answer not found")
			return
		}

		answer, _ := s.AnswerByID(id)
		respondOK(c, http.StatusOK, gin.H{"upvotes": answer.Upvotes})
	}
}
