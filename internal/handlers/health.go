package handlers

import (
	"net/http"

	"github.com/P3chys/studyqa-api/internal/store"
	"github.com/gin-gonic/gin"
)

// HealthCheck reports liveness together with the store's collection sizes
// and which optional integrations are wired.
func HealthCheck(s *store.Store, integrations map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{}
		for name, enabled := range integrations {
			if enabled {
				status[name] = "ok"
			} else {
				status[name] = "disabled"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":       "healthy",
			"store":        s.Stats(),
			"integrations": status,
		})
	}
}
