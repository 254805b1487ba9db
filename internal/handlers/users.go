package handlers

import (
	"net/http"

	"github.com/P3chys/studyqa-api/internal/models"
	"github.com/P3chys/studyqa-api/internal/store"
	"github.com/gin-gonic/gin"
)

type SetCurrentUserRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type ProfileStats struct {
	Questions       int `json:"questions"`
	Answers         int `json:"answers"`
	Saved           int `json:"saved"`
	UpvotesReceived int `json:"upvotes_received"`
}

type Profile struct {
	User      models.User       `json:"user"`
	Questions []models.Question `json:"questions"`
	Answers   []models.Answer   `json:"answers"`
	Saved     []models.Question `json:"saved"`
	Stats     ProfileStats      `json:"stats"`
}

func GetCurrentUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.CurrentUser()
		if !ok {
			respondNotFound(c, "Current user not found")
			return
		}
		respondOK(c, http.StatusOK, user)
	}
}

// SetCurrentUser switches which user the store acts for.
func SetCurrentUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetCurrentUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidation(c, validationMessage(err))
			return
		}

		if !s.SetCurrentUser(req.UserID) {
			respondNotFound(c, "User not found")
			return
		}

		user, _ := s.CurrentUser()
		respondOK(c, http.StatusOK, user)
	}
}

func GetUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.UserByID(c.Param("id"))
		if !ok {
			respondNotFound(c, "User not found")
			return
		}
		respondOK(c, http.StatusOK, user)
	}
}

func ListUserQuestions(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondOK(c, http.StatusOK, s.QuestionsByAuthor(c.Param("id")))
	}
}

func ListUserAnswers(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondOK(c, http.StatusOK, s.AnswersByAuthor(c.Param("id")))
	}
}

// GetProfile aggregates a user's questions and answers. Saved questions are
// private, so they are only included for the current user.
func GetProfile(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.UserByID(c.Param("id"))
		if !ok {
			respondNotFound(c, "User not found")
			return
		}

		profile := Profile{
			User:      user,
			Questions: s.QuestionsByAuthor(user.ID),
			Answers:   s.AnswersByAuthor(user.ID),
			Saved:     []models.Question{},
		}
		if current, _ := s.CurrentUser(); current.ID == user.ID {
			profile.Saved = s.SavedQuestions()
		}

		profile.Stats = ProfileStats{
			Questions: len(profile.Questions),
			Answers:   len(profile.Answers),
			Saved:     len(profile.Saved),
		}
		for _, q := range profile.Questions {
			profile.Stats.UpvotesReceived += q.Upvotes
		}
		for _, a := range profile.Answers {
			profile.Stats.UpvotesReceived += a.Upvotes
		}

		respondOK(c, http.StatusOK, profile)
	}
}
