package ports

import (
	"context"

	"github.com/todolist/core/internal/domain/entities"
)

// TodoRepository defines the interface for todo data operations
type TodoRepository interface {
	// List returns every todo ordered by creation time, newest first.
	List(ctx context.Context) ([]*entities.Todo, error)

	// Create inserts a new todo with the given text and returns the complete
	// stored record. Returns entities.ErrCreateNotConfirmed when the inserted
	// row cannot be read back.
	Create(ctx context.Context, text string) (*entities.Todo, error)

	// Update changes only the supplied fields of the todo with the given id.
	// Nil fields are left unchanged. Returns entities.ErrTodoNotFound when no
	// row matches.
	Update(ctx context.Context, id int64, text *string, completed *int) (*entities.Todo, error)

	// Delete removes the todo with the given id. Deleting an id that does not
	// exist is not an error.
	Delete(ctx context.Context, id int64) error
}
