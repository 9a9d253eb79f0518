package errors

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Display       string         `json:"message"`
	InternalError string         `json:"internal_error,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}

// NewErrorResponse builds the wire representation for an error. Hints become
// the display message; the raw error string is kept for operators.
func NewErrorResponse(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	display := err.Error()
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		display = strings.Join(hints, ": ")
	}

	return &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Display:       display,
			InternalError: err.Error(),
		},
	}
}
