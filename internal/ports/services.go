package ports

import (
	"context"
	"encoding/json"

	"github.com/todolist/core/internal/domain/entities"
)

// TodoService defines the application-level todo operations
type TodoService interface {
	ListTodos(ctx context.Context) ([]*entities.Todo, error)
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*entities.Todo, error)
	UpdateTodo(ctx context.Context, id int64, req UpdateTodoRequest) (*entities.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
}

// CreateTodoRequest is the payload for creating a todo
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required"`
}

// UpdateTodoRequest is the payload for a partial todo update. Nil fields were
// absent from the request and are left unchanged.
type UpdateTodoRequest struct {
	Text      *string         `json:"text,omitempty"`
	Completed *CompletedValue `json:"completed,omitempty"`
}

// CompletedValue holds the completed field in either of the two wire forms the
// API accepts, a JSON boolean or a JSON number. Any other type is rejected at
// decode time.
type CompletedValue struct {
	Bool   *bool
	Number *float64
}

// UnmarshalJSON accepts a boolean or a number and rejects everything else with
// the contract's validation message.
func (v *CompletedValue) UnmarshalJSON(data []byte) error {
	// json.Unmarshal treats null as a no-op for bool targets, so reject it
	// before probing the two accepted forms.
	if string(data) == "null" {
		return entities.ErrCompletedInvalid
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		v.Bool = &b
		v.Number = nil
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		v.Number = &n
		v.Bool = nil
		return nil
	}

	return entities.ErrCompletedInvalid
}

// MarshalJSON writes the value back in the form it was received.
func (v CompletedValue) MarshalJSON() ([]byte, error) {
	if v.Bool != nil {
		return json.Marshal(*v.Bool)
	}
	if v.Number != nil {
		return json.Marshal(*v.Number)
	}
	return []byte("null"), nil
}

// Flag reduces the value to its stored form. Only boolean true and the number
// 1 map to 1; every other accepted value maps to 0. Not a truthiness check:
// 2 and 0.5 store as 0.
func (v CompletedValue) Flag() int {
	if v.Bool != nil && *v.Bool {
		return entities.CompletedTrue
	}
	if v.Number != nil && *v.Number == 1 {
		return entities.CompletedTrue
	}
	return entities.CompletedFalse
}
