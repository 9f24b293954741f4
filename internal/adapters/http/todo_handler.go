package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/todolist/core/internal/domain/entities"
	"github.com/todolist/core/internal/infrastructure/logger"
	"github.com/todolist/core/internal/ports"
)

const messageTodoDeleted = "Todo deleted successfully (or did not exist)."

// TodoHandler handles todo-related requests
type TodoHandler struct {
	todoService ports.TodoService
	logger      *logger.Logger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService ports.TodoService, logger *logger.Logger) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		logger:      logger,
	}
}

// ListTodos handles GET /api/todos
func (h *TodoHandler) ListTodos(c echo.Context) error {
	todos, err := h.todoService.ListTodos(c.Request().Context())
	if err != nil {
		h.logger.Error("List todos failed", "error", err)
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, ListResponse{Success: true, Todos: todos})
}

// CreateTodo handles POST /api/todos
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	var req ports.CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, entities.ErrTextRequired)
	}

	if err := c.Validate(&req); err != nil {
		return h.fail(c, entities.ErrTextRequired)
	}

	todo, err := h.todoService.CreateTodo(c.Request().Context(), req)
	if err != nil {
		if !isValidation(err) {
			h.logger.Error("Create todo failed", "error", err)
		}
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, TodoResponse{Success: true, Todo: todo})
}

// UpdateTodo handles PUT /api/todos/:id
func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	id, err := parseTodoID(c)
	if err != nil {
		return h.fail(c, err)
	}

	req, err := bindUpdateRequest(c)
	if err != nil {
		return h.fail(c, err)
	}

	todo, err := h.todoService.UpdateTodo(c.Request().Context(), id, req)
	if err != nil {
		if !isValidation(err) && !errors.Is(err, entities.ErrTodoNotFound) {
			h.logger.Error("Update todo failed", "error", err, "todo_id", id)
		}
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, TodoResponse{Success: true, Todo: todo})
}

// DeleteTodo handles DELETE /api/todos/:id
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	id, err := parseTodoID(c)
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.todoService.DeleteTodo(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete todo failed", "error", err, "todo_id", id)
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: messageTodoDeleted})
}

// fail maps domain errors onto the response envelope: validation errors to
// 400, missing todos to 404, everything else to 500 with the failure detail
// passed through as a string.
func (h *TodoHandler) fail(c echo.Context, err error) error {
	var ve *entities.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message})
	case errors.Is(err, entities.ErrTodoNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: entities.ErrTodoNotFound.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func isValidation(err error) bool {
	var ve *entities.ValidationError
	return errors.As(err, &ve)
}

// parseTodoID validates the :id path segment before any storage access.
func parseTodoID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, entities.ErrInvalidTodoID
	}
	return id, nil
}

// updateTodoBody captures the raw update payload so that an absent field, a
// null field and a wrongly typed field can be told apart.
type updateTodoBody struct {
	Text      json.RawMessage `json:"text"`
	Completed json.RawMessage `json:"completed"`
}

// bindUpdateRequest turns the duck-typed update body into a fully typed
// request, or rejects it. No handler logic runs on an unvalidated body.
func bindUpdateRequest(c echo.Context) (ports.UpdateTodoRequest, error) {
	var req ports.UpdateTodoRequest

	var body updateTodoBody
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return req, &entities.ValidationError{Message: "Invalid request format."}
	}

	if body.Text != nil {
		var text string
		if string(body.Text) == "null" || json.Unmarshal(body.Text, &text) != nil {
			return req, entities.ErrTextInvalid
		}
		req.Text = &text
	}

	if body.Completed != nil {
		var completed ports.CompletedValue
		if err := json.Unmarshal(body.Completed, &completed); err != nil {
			return req, entities.ErrCompletedInvalid
		}
		req.Completed = &completed
	}

	if req.Text == nil && req.Completed == nil {
		return req, entities.ErrNothingToUpdate
	}

	return req, nil
}
