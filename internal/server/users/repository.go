package users

import "context"

// Repository is the storage contract for user records.
type Repository interface {
	// FindByEmail returns the user with the given email, or
	// common.ErrNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the user with the given id, or common.ErrNotFound.
	FindByID(ctx context.Context, id string) (*User, error)

	// Create inserts a new user. A unique-constraint violation on email is
	// reported as common.ErrEmailTaken.
	Create(ctx context.Context, user *User) (*User, error)
}
