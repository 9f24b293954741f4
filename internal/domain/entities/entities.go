package entities

import (
	"errors"
	"time"
)

// Storage-boundary values for the completed flag. Completed is always exactly
// 0 or 1 at rest, regardless of the form the client sent.
const (
	CompletedFalse = 0
	CompletedTrue  = 1
)

// Common errors. The messages are part of the API contract and are relayed to
// clients verbatim.
var (
	ErrTodoNotFound       = errors.New("Todo not found or not updated.")
	ErrCreateNotConfirmed = errors.New("Failed to create todo or retrieve it after creation.")
)

// ValidationError marks input rejected before any storage access.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation failures, one per rejection rule.
var (
	ErrTextRequired     = &ValidationError{Message: "Todo text is required and must be a non-empty string."}
	ErrTextInvalid      = &ValidationError{Message: "Todo text must be a non-empty string if provided."}
	ErrCompletedInvalid = &ValidationError{Message: "Completed status must be a boolean or a number (0 or 1)."}
	ErrNothingToUpdate  = &ValidationError{Message: "Either text or completed status must be provided for update."}
	ErrInvalidTodoID    = &ValidationError{Message: "Invalid todo ID parameter."}
)

// Todo represents a single task record
type Todo struct {
	ID        int64     `json:"id" db:"id"`
	Text      string    `json:"text" db:"text"`
	Completed int       `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsCompleted reports whether the todo is marked done.
func (t *Todo) IsCompleted() bool {
	return t.Completed == CompletedTrue
}
