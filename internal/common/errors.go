// Package common defines sentinel errors shared across the repository,
// service, and transport layers. Callers should use errors.Is to match
// these values; HTTP status mapping never inspects error text.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration errors.
	ErrEmailTaken   = errors.New("email already exists")
	ErrUserCreation = errors.New("user creation failed")

	// Authentication errors.
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Primitive-level failures. The underlying cause is logged server-side;
	// only these values cross the service boundary.
	ErrHashing    = errors.New("password hashing failed")
	ErrComparison = errors.New("password comparison failed")
	ErrSigning    = errors.New("token signing failed")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
