package router

import (
	"net/http"

	"github.com/P3chys/studyqa-api/internal/handlers"
	"github.com/P3chys/studyqa-api/internal/metrics"
	"github.com/P3chys/studyqa-api/internal/middleware"
	"github.com/P3chys/studyqa-api/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func Setup(deps *Dependencies) *gin.Engine {
	cfg := deps.Config
	s := deps.Store
	log := deps.Logger

	handlers.RegisterValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(deps.Metrics.GinMiddleware())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	// Health and metrics endpoints
	r.GET("/health", handlers.HealthCheck(s, map[string]bool{
		"search":      deps.Searcher != nil,
		"storage":     deps.Attachments != nil,
		"rate_limits": deps.RateLimiter != nil,
	}))
	r.GET("/metrics", func(c *gin.Context) {
		deps.Metrics.RecordStoreStats(storeStats(s))
		deps.Metrics.Handler().ServeHTTP(c.Writer, c.Request)
	})

	// Mutating routes are rate limited when Redis is configured. Store
	// mutations count against the acting user, uploads against the client.
	byUser := middleware.ByActingUser(func() string {
		user, _ := s.CurrentUser()
		return user.ID
	})
	limitBy := func(key middleware.KeyFunc, h gin.HandlerFunc) []gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{deps.RateLimiter.RateLimit(cfg.RateLimitMax, cfg.RateLimitWindow, key), h}
	}
	limit := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return limitBy(byUser, h)
	}

	// API v1 routes
	api := r.Group("/api/v1")
	api.Use(recordStoreStats(s, deps.Metrics))
	{
		// Subjects
		api.GET("/subjects", handlers.ListSubjects(s))

		// Questions
		questions := api.Group("/questions")
		{
			questions.GET("", handlers.ListQuestions(s))
			questions.GET("/samples", handlers.ListSampleQuestions(s))
			questions.POST("", limit(handlers.CreateQuestion(s, deps.Indexer, log))...)
			questions.GET("/:id", handlers.GetQuestion(s))
			questions.POST("/:id/upvote", limit(handlers.UpvoteQuestion(s, deps.Indexer, log))...)
			questions.GET("/:id/similar", handlers.GetSimilarQuestions(s))
			questions.GET("/:id/answers", handlers.ListAnswers(s, deps.Indexer, log))
			questions.POST("/:id/answers", limit(handlers.CreateAnswer(s, deps.Indexer, log))...)
			questions.POST("/:id/save", handlers.ToggleSaveQuestion(s))
			questions.GET("/:id/saved", handlers.GetSavedStatus(s))
		}

		// Answers
		api.POST("/answers/:id/upvote", limit(handlers.UpvoteAnswer(s))...)

		// Current user
		api.GET("/me", handlers.GetCurrentUser(s))
		api.PUT("/me", handlers.SetCurrentUser(s))
		api.GET("/me/saved", handlers.ListSavedQuestions(s))

		// Users
		users := api.Group("/users")
		{
			users.GET("/:id", handlers.GetUser(s))
			users.GET("/:id/questions", handlers.ListUserQuestions(s))
			users.GET("/:id/answers", handlers.ListUserAnswers(s))
			users.GET("/:id/profile", handlers.GetProfile(s))
		}

		// Activities
		api.GET("/activities/recent", handlers.GetRecentActivities(s))

		// Attachments
		api.POST("/attachments", limitBy(middleware.ByClientIP, handlers.UploadAttachment(deps.Attachments, log))...)
		api.GET("/attachments/:name", handlers.DownloadAttachment(deps.Attachments))

		// Search
		api.GET("/search", handlers.Search(s, deps.Searcher, log))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Route not found",
			},
		})
	})

	return r
}

// recordStoreStats refreshes the store gauges after every mutating request.
func recordStoreStats(s *store.Store, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Request.Method != http.MethodGet {
			m.RecordStoreStats(storeStats(s))
		}
	}
}

func storeStats(s *store.Store) (questions, answers, users, savedItems int) {
	stats := s.Stats()
	return stats.Questions, stats.Answers, stats.Users, stats.SavedItems
}
