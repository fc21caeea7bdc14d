// Package apierror is the single place where service errors become HTTP
// responses. Services return typed errors; controllers call Respond and
// never build status codes by hand.
package apierror

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"workforce/internal/util/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Validation covers malformed input and business-rule violations: duplicate
// unique fields, daily-hour caps, deleting in-use entities.
func Validation(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Respond translates a service error into the JSON error envelope.
// Unknown errors become a generic 500 so internals never leak.
func Respond(ctx *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		ctx.JSON(apiErr.Status, gin.H{"message": apiErr.Message})
		return
	}

	logger.GetLogger().Error("unexpected error", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// RespondBinding translates a gin ShouldBindJSON error. Field validation
// failures become {errors: [{path, message}]}; anything else (broken JSON,
// wrong types) becomes a plain 400.
func RespondBinding(ctx *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]FieldError, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields = append(fields, FieldError{
				Path:    lowerFirst(fieldError.Field()),
				Message: validationMessage(fieldError),
			})
		}

		ctx.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fieldError.Param()
	case "max":
		return "must be at most " + fieldError.Param()
	case "gte":
		return "must be at least " + fieldError.Param()
	case "lte":
		return "must be at most " + fieldError.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])

	return strings.TrimSpace(string(runes))
}
