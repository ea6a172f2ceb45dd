// Package user is the user listing demo: a SQL-backed repository, the seed
// sequence run when the application is ready, and the JSON handler.
package user

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no user has the requested login.
var ErrNotFound = errors.New("user: not found")

// User is one row of the users table.
type User struct {
	Login     string `json:"login"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Repository defines persistence operations for users.
type Repository interface {
	EnsureSchema(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	FindAll(ctx context.Context) ([]User, error)
	FindOne(ctx context.Context, login string) (*User, error)
	DeleteAll(ctx context.Context) error
	Save(ctx context.Context, u User) (string, error)
}
