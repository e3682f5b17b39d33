package errors

import (
	"fmt"
	"net/http"
)

// Error is the error type surfaced to API clients. The Status is the HTTP
// status the handler should respond with; the Message is safe to return in
// the response body.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("error: %s, status: %d", e.Message, e.Status)
}

// New creates a new Error
func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

var (
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)

	// Business errors. Messages mirror what the API contract promises the
	// front-end; InvalidCredentials is deliberately uniform so a caller
	// cannot tell a bad username from a bad password.
	ErrInvalidCredentials = New("invalid credentials", http.StatusUnauthorized)
	ErrUsernameTaken      = New("username taken", http.StatusBadRequest)
	ErrReportNotFound     = New("report not found", http.StatusNotFound)
	ErrAlreadyLiked       = New("already liked", http.StatusBadRequest)
	ErrRateLimited        = New("rate limit exceeded", http.StatusTooManyRequests)
)

// InvalidInput builds a 400 for a malformed, missing or oversized field.
func InvalidInput(message string) *Error {
	return New(message, http.StatusBadRequest)
}
