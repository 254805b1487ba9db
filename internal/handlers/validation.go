package handlers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/P3chys/studyqa-api/internal/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the domain enum tags (subject, difficulty,
// author_type) to gin's validator. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("subject", func(fl validator.FieldLevel) bool {
			return models.Subject(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
			return models.Difficulty(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("author_type", func(fl validator.FieldLevel) bool {
			return models.AuthorType(fl.Field().String()).Valid()
		})
	})
}

// validationMessage turns binding errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		case "subject", "difficulty", "author_type":
			msgs = append(msgs, fmt.Sprintf("%s has an unknown value %v", field, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}
