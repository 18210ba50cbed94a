package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cleanrate/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{"AccessTokenRequired", failure.AccessTokenRequired, http.StatusUnauthorized, "Access token required"},
		{"InvalidToken", failure.InvalidToken, http.StatusUnauthorized, "Invalid token"},
		{"TokenExpired", failure.TokenExpired, http.StatusUnauthorized, "Token expired"},
		{"InvalidCredentials", failure.InvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"ForbiddenError", failure.ForbiddenError, http.StatusForbidden, "Admin access required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.Equal(t, tt.message, tt.failure.Error())
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"bad request", failure.BadRequest(errors.New("bad input")), http.StatusBadRequest, "bad input"},
		{"bad request from string", failure.BadRequestFromString("All fields are required"), http.StatusBadRequest, "All fields are required"},
		{"unauthorized", failure.Unauthorized("nope"), http.StatusUnauthorized, "nope"},
		{"internal", failure.InternalError(errors.New("boom")), http.StatusInternalServerError, "boom"},
		{"not found", failure.NotFound("Employee not found"), http.StatusNotFound, "Employee not found"},
		{"conflict", failure.Conflict("Employee with this email already exists"), http.StatusConflict, "Employee with this email already exists"},
		{"forbidden", failure.Forbidden("denied"), http.StatusForbidden, "denied"},
		{
			"floor conflict",
			failure.FloorConflict([]string{"3 (Jane Doe)", "4 (John Roe)"}),
			http.StatusConflict,
			"Floor already assigned: 3 (Jane Doe), 4 (John Roe)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{"failure error", &failure.Failure{Code: http.StatusBadRequest, Message: "test"}, http.StatusBadRequest},
		{"wrapped failure error", fmt.Errorf("failed to save: %w", failure.NotFound("missing")), http.StatusNotFound},
		{"regular error", errors.New("regular error"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}
