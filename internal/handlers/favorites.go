package handlers

import (
	"net/http"

	"github.com/P3chys/studyqa-api/internal/store"
	"github.com/gin-gonic/gin"
)

// ToggleSaveQuestion adds or removes a question from the current user's saved list
func ToggleSaveQuestion(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		questionID := c.Param("id")

		// Check if question exists
		if _, ok := s.QuestionByID(questionID); !ok {
			respondNotFound(c, "Question not found")
			return
		}

		saved := s.ToggleSave(questionID)
		respondOK(c, http.StatusOK, gin.H{"question_id": questionID, "is_saved": saved})
	}
}

func GetSavedStatus(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		questionID := c.Param("id")
		if _, ok := s.QuestionByID(questionID); !ok {
			respondNotFound(c, "Question not found")
			return
		}
		respondOK(c, http.StatusOK, gin.H{"question_id": questionID, "is_saved": s.IsSaved(questionID)})
	}
}

func ListSavedQuestions(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondOK(c, http.StatusOK, s.SavedQuestions())
	}
}
