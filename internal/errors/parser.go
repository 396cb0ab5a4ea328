package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a user-facing message.
type ErrorInfo struct {
	Code    string // see codes.go
	Message string
}

// ParseError maps an error from any layer to a code and a safe message.
// Driver details are never included in the message.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An unexpected error occurred",
		}
	}

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(notFound.Kind),
		}
	}

	var invalid *ValidationError
	if errors.As(err, &invalid) {
		return ErrorInfo{
			Code:    ValidationInvalidInput,
			Message: invalid.Error(),
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	errStrLower := strings.ToLower(err.Error())

	// postgres 23505 / sqlite UNIQUE
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "A record with the same key already exists",
		}
	}

	// postgres 23503 / sqlite FOREIGN KEY
	if strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "The record references data that does not exist",
		}
	}

	// postgres 23502 / sqlite NOT NULL
	if strings.Contains(errStrLower, "not-null constraint") || strings.Contains(errStrLower, "not null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "database is locked") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The database is unavailable, please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "An unexpected error occurred",
	}
}

func getNotFoundMessage(kind string) string {
	switch strings.ToLower(kind) {
	case "letting":
		return "Letting not found"
	case "profile":
		return "Profile not found"
	case "user":
		return "User not found"
	case "address":
		return "Address not found"
	default:
		return "The requested page was not found"
	}
}
