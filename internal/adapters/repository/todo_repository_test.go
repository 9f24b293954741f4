package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/todolist/core/internal/domain/entities"
	"github.com/todolist/core/internal/infrastructure/config"
	"github.com/todolist/core/internal/infrastructure/database"
	"github.com/todolist/core/internal/ports"
)

func newTestRepo(t *testing.T) ports.TodoRepository {
	t.Helper()

	db, err := database.New(config.DatabaseConfig{
		Driver: "sqlite3",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.MigrateUp(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewTodoRepository(db.DB)
}

func TestCreateAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "buy milk")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a store-assigned id")
	}
	if created.Text != "buy milk" {
		t.Errorf("text = %q, want %q", created.Text, "buy milk")
	}
	if created.Completed != entities.CompletedFalse {
		t.Errorf("completed = %d, want 0", created.Completed)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	todos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("len(todos) = %d, want 1", len(todos))
	}
	if todos[0].ID != created.ID || todos[0].Text != "buy milk" || todos[0].Completed != 0 {
		t.Errorf("listed todo = %+v, want the created record", todos[0])
	}
}

func TestListEmpty(t *testing.T) {
	repo := newTestRepo(t)

	todos, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if todos == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(todos) != 0 {
		t.Errorf("len(todos) = %d, want 0", len(todos))
	}
}

func TestListOrderingNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, text := range []string{"A", "B", "C"} {
		if _, err := repo.Create(ctx, text); err != nil {
			t.Fatalf("Create %q failed: %v", text, err)
		}
	}

	todos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("len(todos) = %d, want 3", len(todos))
	}

	want := []string{"C", "B", "A"}
	for i, text := range want {
		if todos[i].Text != text {
			t.Errorf("todos[%d].Text = %q, want %q", i, todos[i].Text, text)
		}
	}
}

func TestUpdatePartial(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "original")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Completed only: text stays untouched.
	completed := entities.CompletedTrue
	updated, err := repo.Update(ctx, created.ID, nil, &completed)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Text != "original" {
		t.Errorf("text = %q, want unchanged %q", updated.Text, "original")
	}
	if updated.Completed != 1 {
		t.Errorf("completed = %d, want 1", updated.Completed)
	}

	// Text only: completed stays untouched.
	text := "new"
	updated, err = repo.Update(ctx, created.ID, &text, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Text != "new" {
		t.Errorf("text = %q, want %q", updated.Text, "new")
	}
	if updated.Completed != 1 {
		t.Errorf("completed = %d, want unchanged 1", updated.Completed)
	}

	// created_at never moves.
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdateNotFound(t *testing.T) {
	repo := newTestRepo(t)

	text := "whatever"
	_, err := repo.Update(context.Background(), 9999, &text, nil)
	if !errors.Is(err, entities.ErrTodoNotFound) {
		t.Errorf("err = %v, want ErrTodoNotFound", err)
	}
}

func TestDeleteIdempotentToAbsence(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Deleting an id that never existed is not an error.
	if err := repo.Delete(ctx, 12345); err != nil {
		t.Fatalf("Delete of absent id failed: %v", err)
	}

	keep, err := repo.Create(ctx, "keep")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	gone, err := repo.Create(ctx, "gone")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(ctx, gone.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	todos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("len(todos) = %d, want 1", len(todos))
	}
	if todos[0].ID != keep.ID {
		t.Errorf("surviving todo id = %d, want %d", todos[0].ID, keep.ID)
	}

	// Deleting again still succeeds.
	if err := repo.Delete(ctx, gone.ID); err != nil {
		t.Errorf("second Delete failed: %v", err)
	}
}

func TestCreateConfirmsInsertedRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// sqlite has no usable RETURNING path here, so Create goes through the
	// last-inserted-id fallback; the returned record must be the stored one.
	first, err := repo.Create(ctx, "first")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := repo.Create(ctx, "second")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if second.ID == first.ID {
		t.Errorf("ids must be unique, both %d", first.ID)
	}
	if second.Text != "second" {
		t.Errorf("fallback re-read returned %q, want %q", second.Text, "second")
	}
}
