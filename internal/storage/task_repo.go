package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type TaskRepo struct {
	q querier
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{q: db}
}

// WithTx returns a copy of the repo bound to the given transaction.
func (r *TaskRepo) WithTx(tx *sql.Tx) *TaskRepo {
	return &TaskRepo{q: tx}
}

type TodoInsert struct {
	UserID     string
	Task       string
	Difficulty int
	XP         int
}

func (r *TaskRepo) Insert(ctx context.Context, in TodoInsert) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO todos (user_id, task, difficulty, xp, completed)
		VALUES (?, ?, ?, ?, 0)
	`, in.UserID, in.Task, in.Difficulty, in.XP)
	if err != nil {
		return 0, fmt.Errorf("todo insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("todo last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Todo, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, task, difficulty, xp, completed, created_at
		FROM todos
		WHERE id = ?
	`, id)
	return scanTodo(row)
}

// ListByOwner returns the user's quests, newest first. The id tiebreak keeps
// the order stable when two rows share a created_at second.
func (r *TaskRepo) ListByOwner(ctx context.Context, userID string) ([]Todo, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, task, difficulty, xp, completed, created_at
		FROM todos
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("todo list: %w", err)
	}
	defer rows.Close()

	var out []Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("todo list rows: %w", err)
	}
	return out, nil
}

// MarkCompleted flips completed 0 → 1. The guard on completed makes the
// transition one-way: a row that is missing or already completed yields
// ErrNotFound instead of a second award.
func (r *TaskRepo) MarkCompleted(ctx context.Context, id int64, userID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE todos SET completed = 1
		WHERE id = ? AND user_id = ? AND completed = 0
	`, id, userID)
	if err != nil {
		return fmt.Errorf("todo mark completed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("todo mark completed rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64, userID string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM todos WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("todo delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("todo delete rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(row scanner) (*Todo, error) {
	var t Todo
	var completed int
	if err := row.Scan(&t.ID, &t.UserID, &t.Task, &t.Difficulty, &t.XP, &completed, &t.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("todo scan: %w", err)
	}
	t.Completed = completed != 0
	return &t, nil
}
