package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/todolist/core/internal/domain/entities"
	"github.com/todolist/core/internal/infrastructure/config"
)

// fakeAPI is a minimal in-memory stand-in for the server, good enough to
// observe the client's fetch and invalidation behavior.
type fakeAPI struct {
	todos      []*entities.Todo
	nextID     int64
	listCalls  int
	failCreate string // when set, create fails with this message
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/todos", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			f.listCalls++
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "todos": f.todos})
		case http.MethodPost:
			if f.failCreate != "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": f.failCreate})
				return
			}
			var body struct {
				Text string `json:"text"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			f.nextID++
			todo := &entities.Todo{ID: f.nextID, Text: body.Text, CreatedAt: time.Now()}
			f.todos = append([]*entities.Todo{todo}, f.todos...)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "todo": todo})
		}
	})

	return mux
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()

	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	return New(config.ClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestListServedFromCacheUntilInvalidated(t *testing.T) {
	api := &fakeAPI{}
	c := newTestClient(t, api)
	ctx := context.Background()

	if _, err := c.ListTodos(ctx); err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	if _, err := c.ListTodos(ctx); err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	if api.listCalls != 1 {
		t.Errorf("listCalls = %d, want 1 (second read must hit the cache)", api.listCalls)
	}

	// A successful mutation invalidates; the next read re-fetches.
	if _, err := c.CreateTodo(ctx, "buy milk"); err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}

	todos, err := c.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	if api.listCalls != 2 {
		t.Errorf("listCalls = %d, want 2 (mutation must invalidate the cache)", api.listCalls)
	}
	if len(todos) != 1 || todos[0].Text != "buy milk" {
		t.Errorf("todos = %+v, want the created todo", todos)
	}
}

func TestFailedMutationSurfacesServerMessage(t *testing.T) {
	api := &fakeAPI{failCreate: "Todo text is required and must be a non-empty string."}
	c := newTestClient(t, api)
	ctx := context.Background()

	if _, err := c.ListTodos(ctx); err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}

	_, err := c.CreateTodo(ctx, "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want an APIError", err)
	}
	if apiErr.Message != api.failCreate {
		t.Errorf("message = %q, want the server-provided text", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.StatusCode)
	}

	// A failed mutation must not invalidate the cached list.
	if _, err := c.ListTodos(ctx); err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	if api.listCalls != 1 {
		t.Errorf("listCalls = %d, want 1 (failed mutation must not invalidate)", api.listCalls)
	}
}
