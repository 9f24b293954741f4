package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/todolist/core/internal/domain/entities"
	"github.com/todolist/core/internal/infrastructure/config"
	"github.com/todolist/core/internal/ports"
)

// APIError carries a failure envelope returned by the server. The message is
// shown to the user as-is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// envelope mirrors the server's uniform response wrapper
type envelope struct {
	Success bool             `json:"success"`
	Todos   []*entities.Todo `json:"todos"`
	Todo    *entities.Todo   `json:"todo"`
	Message string           `json:"message"`
	Error   string           `json:"error"`
}

// Client talks to the Todo API and keeps the list cache in sync: reads are
// served from the cache while it is fresh, and every successful mutation
// invalidates it so the next read re-fetches the full collection.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *ListCache
}

// New creates a new API client
func New(cfg config.ClientConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		cache:   NewListCache(),
	}
}

// ListTodos returns the current todo collection, newest first
func (c *Client) ListTodos(ctx context.Context) ([]*entities.Todo, error) {
	if todos, ok := c.cache.Get(); ok {
		return todos, nil
	}

	env, err := c.do(ctx, http.MethodGet, "/api/todos", nil)
	if err != nil {
		return nil, err
	}

	c.cache.Set(env.Todos)
	return env.Todos, nil
}

// CreateTodo creates a new todo from the given text
func (c *Client) CreateTodo(ctx context.Context, text string) (*entities.Todo, error) {
	body := ports.CreateTodoRequest{Text: text}

	env, err := c.do(ctx, http.MethodPost, "/api/todos", body)
	if err != nil {
		return nil, err
	}

	c.cache.Invalidate()
	return env.Todo, nil
}

// UpdateTodo applies a partial update to the todo with the given id
func (c *Client) UpdateTodo(ctx context.Context, id int64, req ports.UpdateTodoRequest) (*entities.Todo, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/todos/%d", id), req)
	if err != nil {
		return nil, err
	}

	c.cache.Invalidate()
	return env.Todo, nil
}

// SetCompleted marks the todo done or not done
func (c *Client) SetCompleted(ctx context.Context, id int64, completed bool) (*entities.Todo, error) {
	return c.UpdateTodo(ctx, id, ports.UpdateTodoRequest{
		Completed: &ports.CompletedValue{Bool: &completed},
	})
}

// SetText replaces the todo's text
func (c *Client) SetText(ctx context.Context, id int64, text string) (*entities.Todo, error) {
	return c.UpdateTodo(ctx, id, ports.UpdateTodoRequest{Text: &text})
}

// DeleteTodo removes the todo with the given id
func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	if _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil); err != nil {
		return err
	}

	c.cache.Invalidate()
	return nil
}

// ServiceName returns the name the API identifies itself with
func (c *Client) ServiceName(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set(echoHeaderRequestID, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var named struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&named); err != nil {
		return "", fmt.Errorf("decode name response: %w", err)
	}

	return named.Name, nil
}

const echoHeaderRequestID = "X-Request-ID"

// do sends one request and decodes the response envelope. Failure envelopes
// become APIError values carrying the server-provided message.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(echoHeaderRequestID, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	return &env, nil
}
