package sqlite

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/sportscheduler/auth/users"
	"github.com/goserg/sportscheduler/internal/domain"
	"github.com/goserg/sportscheduler/internal/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	db, err := storage.New(l, filepath.Join(t.TempDir(), "auth.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(l, db)
}

func TestStorage_CreateAndGetUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := users.User{
		ID:           uuid.New(),
		FirstName:    "Test",
		LastName:     "User A",
		Email:        "usera@test.com",
		Role:         domain.RolePlayer,
		RegisteredAt: time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user, users.Secret{PasswordHash: []byte("hash")}))

	got, err := s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, domain.RolePlayer, got.Role)
	assert.Equal(t, "Test User A", got.Name())

	byEmail, err := s.GetUserByEmail(ctx, "usera@test.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	secret, err := s.GetUserSecret(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("hash"), secret.PasswordHash)
}

func TestStorage_DuplicateEmail(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := users.User{ID: uuid.New(), FirstName: "A", LastName: "B", Email: "dup@test.com", Role: domain.RoleAdmin, RegisteredAt: time.Now()}
	require.NoError(t, s.CreateUser(ctx, user, users.Secret{PasswordHash: []byte("x")}))

	user.ID = uuid.New()
	err := s.CreateUser(ctx, user, users.Secret{PasswordHash: []byte("y")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestStorage_UnknownUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.GetUserByEmail(ctx, "nobody@test.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.GetUserSecret(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
