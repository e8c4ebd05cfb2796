package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ProfileRepo struct {
	q querier
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{q: db}
}

// WithTx returns a copy of the repo bound to the given transaction.
func (r *ProfileRepo) WithTx(tx *sql.Tx) *ProfileRepo {
	return &ProfileRepo{q: tx}
}

func (r *ProfileRepo) Get(ctx context.Context, id string) (*Profile, error) {
	row := r.q.QueryRowContext(ctx, `SELECT id, username, exp, level FROM profiles WHERE id = ?`, id)
	return scanProfile(row)
}

// GetByUsername is the allocator's uniqueness probe.
func (r *ProfileRepo) GetByUsername(ctx context.Context, username string) (*Profile, error) {
	row := r.q.QueryRowContext(ctx, `SELECT id, username, exp, level FROM profiles WHERE username = ?`, username)
	return scanProfile(row)
}

func (r *ProfileRepo) Insert(ctx context.Context, p *Profile) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO profiles (id, username, exp, level)
		VALUES (?, ?, ?, ?)
	`, p.ID, p.Username, p.Exp, p.Level)
	if err != nil {
		return fmt.Errorf("profile insert: %w", err)
	}
	return nil
}

func (r *ProfileRepo) Update(ctx context.Context, p *Profile) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE profiles SET username = ?, exp = ?, level = ? WHERE id = ?
	`, p.Username, p.Exp, p.Level, p.ID)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profile update rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Top returns the n highest-ranked profiles: level descending, ties by exp
// descending, remaining ties by username so repeated reads are identical.
func (r *ProfileRepo) Top(ctx context.Context, n int) ([]Profile, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, username, exp, level
		FROM profiles
		ORDER BY level DESC, exp DESC, username ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("profile top: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("profile top rows: %w", err)
	}
	return out, nil
}

func scanProfile(row scanner) (*Profile, error) {
	var p Profile
	if err := row.Scan(&p.ID, &p.Username, &p.Exp, &p.Level); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile scan: %w", err)
	}
	return &p, nil
}
