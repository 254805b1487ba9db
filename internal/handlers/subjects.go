package handlers

import (
	"net/http"

	"github.com/P3chys/studyqa-api/internal/store"
	"github.com/gin-gonic/gin"
)

// ListSubjects returns every subject with its question count
func ListSubjects(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondOK(c, http.StatusOK, s.SubjectCounts())
	}
}
