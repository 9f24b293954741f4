package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/todolist/core/internal/domain/entities"
	"github.com/todolist/core/internal/ports"
)

// TodoRepositoryImpl implements the TodoRepository interface on top of sqlx.
// It supports both postgres and sqlite3. Postgres inserts use RETURNING;
// sqlite3 falls back to the last-inserted id plus a re-read, since the driver
// cannot hand back the inserted row from the insert statement itself.
type TodoRepositoryImpl struct {
	db *sqlx.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *sqlx.DB) ports.TodoRepository {
	return &TodoRepositoryImpl{db: db}
}

func (r *TodoRepositoryImpl) List(ctx context.Context) ([]*entities.Todo, error) {
	query := `
		SELECT id, text, completed, created_at
		FROM todos
		ORDER BY created_at DESC, id DESC`

	todos := []*entities.Todo{}
	if err := r.db.SelectContext(ctx, &todos, query); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return todos, nil
}

func (r *TodoRepositoryImpl) Create(ctx context.Context, text string) (*entities.Todo, error) {
	now := time.Now().UTC()

	if r.db.DriverName() == "postgres" {
		query := r.db.Rebind(`
			INSERT INTO todos (text, completed, created_at)
			VALUES (?, ?, ?)
			RETURNING id, text, completed, created_at`)

		var todo entities.Todo
		err := r.db.GetContext(ctx, &todo, query, text, entities.CompletedFalse, now)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, entities.ErrCreateNotConfirmed
			}
			return nil, fmt.Errorf("create todo: %w", err)
		}
		return &todo, nil
	}

	// sqlite3 path: insert, then confirm by re-reading the last-inserted row.
	query := r.db.Rebind(`INSERT INTO todos (text, completed, created_at) VALUES (?, ?, ?)`)

	result, err := r.db.ExecContext(ctx, query, text, entities.CompletedFalse, now)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil || id == 0 {
		return nil, entities.ErrCreateNotConfirmed
	}

	todo, err := r.getByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrTodoNotFound) {
			return nil, entities.ErrCreateNotConfirmed
		}
		return nil, err
	}

	return todo, nil
}

func (r *TodoRepositoryImpl) Update(ctx context.Context, id int64, text *string, completed *int) (*entities.Todo, error) {
	set := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if text != nil {
		set = append(set, "text = ?")
		args = append(args, *text)
	}
	if completed != nil {
		set = append(set, "completed = ?")
		args = append(args, *completed)
	}
	args = append(args, id)

	query := r.db.Rebind(fmt.Sprintf(`UPDATE todos SET %s WHERE id = ?`, strings.Join(set, ", ")))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, entities.ErrTodoNotFound
	}

	return r.getByID(ctx, id)
}

func (r *TodoRepositoryImpl) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM todos WHERE id = ?`)

	// A delete that matches no rows still succeeds; absence is not an error.
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	return nil
}

func (r *TodoRepositoryImpl) getByID(ctx context.Context, id int64) (*entities.Todo, error) {
	query := r.db.Rebind(`SELECT id, text, completed, created_at FROM todos WHERE id = ?`)

	var todo entities.Todo
	if err := r.db.GetContext(ctx, &todo, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTodoNotFound
		}
		return nil, fmt.Errorf("get todo by id: %w", err)
	}

	return &todo, nil
}
