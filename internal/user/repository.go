package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLRepository implements Repository on database/sql. It holds no state
// besides the handle.
type SQLRepository struct {
	db *sql.DB
}

// NewRepository creates a SQL-backed Repository.
func NewRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS users (login varchar PRIMARY KEY, firstname varchar, lastname varchar)`)
	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *SQLRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// FindAll returns every user in storage order.
func (r *SQLRepository) FindAll(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT login, firstname, lastname FROM users`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Login, &u.Firstname, &u.Lastname); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *SQLRepository) FindOne(ctx context.Context, login string) (*User, error) {
	u := &User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT login, firstname, lastname FROM users WHERE login = ?`, login,
	).Scan(&u.Login, &u.Firstname, &u.Lastname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user by login: %w", err)
	}
	return u, nil
}

func (r *SQLRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	return nil
}

// Save inserts u and returns the stored login.
func (r *SQLRepository) Save(ctx context.Context, u User) (string, error) {
	var login string
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (login, firstname, lastname) VALUES (?, ?, ?) RETURNING login`,
		u.Login, u.Firstname, u.Lastname,
	).Scan(&login)
	if err != nil {
		return "", fmt.Errorf("insert user %s: %w", u.Login, err)
	}
	return login, nil
}
