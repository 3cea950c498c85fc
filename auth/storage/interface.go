package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/goserg/sportscheduler/auth/users"
)

// AuthStorage is the identity store. Lookups of unknown users fail with domain.ErrNotFound,
// a second user with the same email fails with domain.ErrConflict.
type AuthStorage interface {
	CreateUser(ctx context.Context, user users.User, secret users.Secret) error
	GetUser(ctx context.Context, id uuid.UUID) (users.User, error)
	GetUserByEmail(ctx context.Context, email string) (users.User, error)
	GetUserSecret(ctx context.Context, id uuid.UUID) (users.Secret, error)
}
