package http

import "github.com/todolist/core/internal/domain/entities"

// All API responses share an envelope: a success flag plus exactly one of
// todos, todo, message or error.

// ListResponse carries the full todo collection
type ListResponse struct {
	Success bool             `json:"success"`
	Todos   []*entities.Todo `json:"todos"`
}

// TodoResponse carries a single todo record
type TodoResponse struct {
	Success bool           `json:"success"`
	Todo    *entities.Todo `json:"todo"`
}

// MessageResponse carries a human-readable success message
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse carries a failure message
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NameResponse identifies the service on GET /api/
type NameResponse struct {
	Name string `json:"name"`
}
