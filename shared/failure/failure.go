package failure

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	AccessTokenRequired = &Failure{Code: http.StatusUnauthorized, Message: "Access token required"}
	InvalidToken        = &Failure{Code: http.StatusUnauthorized, Message: "Invalid token"}
	TokenExpired        = &Failure{Code: http.StatusUnauthorized, Message: "Token expired"}
	InvalidCredentials  = &Failure{Code: http.StatusUnauthorized, Message: "Invalid credentials"}
	ForbiddenError      = &Failure{Code: http.StatusForbidden, Message: "Admin access required"}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// FloorConflict reports floors that are already held by another employee.
// Each held entry is rendered as "<floor> (<holder>)".
func FloorConflict(held []string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("Floor already assigned: %s", strings.Join(held, ", ")),
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
