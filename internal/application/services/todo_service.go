package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/todolist/core/internal/domain/entities"
	"github.com/todolist/core/internal/infrastructure/logger"
	"github.com/todolist/core/internal/ports"
)

// TodoService handles todo operations: validation, normalization and the
// completed-flag coercion, in front of the repository.
type TodoService struct {
	todoRepo ports.TodoRepository
	logger   *logger.Logger
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo ports.TodoRepository, logger *logger.Logger) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
		logger:   logger,
	}
}

// ListTodos returns all todos, newest first. An empty store yields an empty
// slice, never an error.
func (s *TodoService) ListTodos(ctx context.Context) ([]*entities.Todo, error) {
	todos, err := s.todoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

// CreateTodo validates and creates a new todo. Text is trimmed before storage
// and must not be empty afterwards.
func (s *TodoService) CreateTodo(ctx context.Context, req ports.CreateTodoRequest) (*entities.Todo, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, entities.ErrTextRequired
	}

	todo, err := s.todoRepo.Create(ctx, text)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Todo created", "todo_id", todo.ID)

	return todo, nil
}

// UpdateTodo applies a partial update to the todo with the given id. At least
// one of text or completed must be supplied; omitted fields stay unchanged.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, req ports.UpdateTodoRequest) (*entities.Todo, error) {
	var text *string
	if req.Text != nil {
		trimmed := strings.TrimSpace(*req.Text)
		if trimmed == "" {
			return nil, entities.ErrTextInvalid
		}
		text = &trimmed
	}

	var completed *int
	if req.Completed != nil {
		flag := req.Completed.Flag()
		completed = &flag
	}

	if text == nil && completed == nil {
		return nil, entities.ErrNothingToUpdate
	}

	todo, err := s.todoRepo.Update(ctx, id, text, completed)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Todo updated", "todo_id", todo.ID)

	return todo, nil
}

// DeleteTodo removes the todo with the given id. Deleting an absent id
// succeeds; clients only need the row gone.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.todoRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Todo deleted", "todo_id", id)

	return nil
}
