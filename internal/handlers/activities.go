package handlers

import (
	"net/http"

	"github.com/P3chys/studyqa-api/internal/store"
	"github.com/gin-gonic/gin"
)

func GetRecentActivities(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondOK(c, http.StatusOK, s.RecentActivities(queryLimit(c, 20)))
	}
}
