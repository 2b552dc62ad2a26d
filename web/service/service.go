// Package service implements the auth and script operations on top of the
// database package. Controllers translate the sentinel errors declared here
// into HTTP status codes.
package service

import (
	"context"
	"errors"
	"time"
)

// queryTimeout bounds every store call so no request hangs on the database.
const queryTimeout = 5 * time.Second

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
)

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, queryTimeout)
}
