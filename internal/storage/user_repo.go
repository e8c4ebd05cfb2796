package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type UserRepo struct {
	q querier
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{q: db}
}

func (r *UserRepo) Get(ctx context.Context, id string) (*User, error) {
	row := r.q.QueryRowContext(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.q.QueryRowContext(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *UserRepo) Insert(ctx context.Context, u *User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, u.ID, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("user insert: %w", err)
	}
	return nil
}

func scanUser(row scanner) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user scan: %w", err)
	}
	return &u, nil
}
