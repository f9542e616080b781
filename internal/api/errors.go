package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/store"
)

// Client-facing error messages.
const (
	msgTaskNotFound     = "Task not found"
	msgBodyRequired     = "Request body is required"
	msgBodyTooLarge     = "Request body too large"
	msgInvalidFormat    = "Invalid request format"
	msgValidation       = "Validation error"
	msgNoFields         = "No fields to update"
	msgInternal         = "Internal server error"
	msgEndpointNotFound = "Endpoint not found"
	msgMethodNotAllowed = "Method not allowed"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrTaskNotFound), store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, shared.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, shared.ErrMalformedBody):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgInternal
	}

	var vErr *domain.ValidationError
	var fieldErr *shared.FieldTypeError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, service.ErrTaskNotFound), store.IsNotFoundError(err):
		return msgTaskNotFound

	case errors.As(err, &vErr):
		return capitalize(vErr.Field) + " " + vErr.Message

	case errors.Is(err, domain.ErrEmptyUpdate):
		return msgNoFields

	case errors.Is(err, shared.ErrEmptyBody):
		return msgBodyRequired

	case errors.Is(err, shared.ErrBodyTooLarge):
		return msgBodyTooLarge

	case errors.As(err, &fieldErr):
		return capitalize(fieldErr.Error())

	case errors.Is(err, shared.ErrMalformedBody):
		return msgInvalidFormat

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)

	case errors.Is(err, domain.ErrValidation):
		return msgValidation

	default:
		return msgInternal
	}
}

// SanitizeValidationError turns validator errors into a user-friendly message
// naming the first failing field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return msgValidation
	}

	fe := validationErrs[0]
	return fmt.Sprintf("%s %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "oneof":
		return "has an invalid value"
	default:
		return "is invalid"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
