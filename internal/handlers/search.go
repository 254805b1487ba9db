package handlers

import (
	"net/http"

	"github.com/P3chys/studyqa-api/internal/logger"
	"github.com/P3chys/studyqa-api/internal/models"
	"github.com/P3chys/studyqa-api/internal/store"
	"github.com/gin-gonic/gin"
)

// Search runs a full-text query against the index mirror and resolves the
// hits back to live store questions, keeping relevance order. Ids the store
// no longer knows are dropped.
func Search(s *store.Store, searcher QuestionSearcher, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if searcher == nil {
			respondError(c, http.StatusServiceUnavailable, "SEARCH_UNAVAILABLE", "Search index is not configured")
			return
		}

		query := c.Query("q")
		if query == "" {
			respondValidation(c, "q is required")
			return
		}

		subject := models.Subject(c.Query("subject"))
		if subject != "" && !subject.Valid() {
			respondValidation(c, "Unknown subject "+string(subject))
			return
		}

		ids, err := searcher.SearchQuestionIDs(query, subject, int64(queryLimit(c, 20)))
		if err != nil {
			log.WithError(err).Error("Search failed")
			respondError(c, http.StatusBadGateway, "SEARCH_FAILED", "Search failed")
			return
		}

		results := make([]models.Question, 0, len(ids))
		for _, id := range ids {
			if q, ok := s.QuestionByID(id); ok {
				results = append(results, q)
			}
		}
		respondOK(c, http.StatusOK, results)
	}
}
