package app_error

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ValidationError rejects a write before it reaches the database,
// e.g. a point event whose absolute score exceeds its category maximum.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a missing student/group/category/badge reference.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// Respond maps an error to the matching http status. Unrecognized errors
// become 500s.
func Respond(c *gin.Context, err error) {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(400, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(404, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": err.Error()})
	}
}
