package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/P3chys/studyqa-api/internal/logger"
	"github.com/P3chys/studyqa-api/internal/models"
	"github.com/P3chys/studyqa-api/internal/store"
	"github.com/gin-gonic/gin"
)

// QuestionIndexer mirrors questions into an external search index.
type QuestionIndexer interface {
	IndexQuestion(q models.Question) error
}

// QuestionSearcher resolves a full-text query to question ids.
type QuestionSearcher interface {
	SearchQuestionIDs(query string, subject models.Subject, limit int64) ([]string, error)
}

// AttachmentStore keeps uploaded files for question attachments.
type AttachmentStore interface {
	UploadAttachment(ctx context.Context, file io.Reader, size int64, originalName, contentType string) (models.Attachment, error)
	OpenAttachment(ctx context.Context, objectName string) (io.ReadCloser, int64, string, error)
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func respondNotFound(c *gin.Context, message string) {
	respondError(c, http.StatusNotFound, "NOT_FOUND", message)
}

func respondValidation(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", message)
}

// queryLimit reads a positive ?limit= value, falling back to def when it is
// missing or malformed.
func queryLimit(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

// reindexQuestion pushes the current state of a question to the index in
// the background. Index failures are logged and never reach the caller.
func reindexQuestion(indexer QuestionIndexer, s *store.Store, log *logger.Logger, questionID string) {
	if indexer == nil {
		return
	}
	q, ok := s.QuestionByID(questionID)
	if !ok {
		return
	}
	go func() {
		if err := indexer.IndexQuestion(q); err != nil {
			log.WithError(err).WithField("question_id", q.ID).Warn("Failed to index question")
		}
	}()
}
