package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/goserg/sportscheduler/auth/storage"
	"github.com/goserg/sportscheduler/auth/users"
	"github.com/goserg/sportscheduler/gen/model"
	"github.com/goserg/sportscheduler/gen/table"
	"github.com/goserg/sportscheduler/internal/domain"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger, db *sql.DB) *Storage {
	return &Storage{
		db:  db,
		log: l.WithField("from", "auth-storage"),
	}
}

func (s *Storage) CreateUser(ctx context.Context, user users.User, secret users.Secret) error {
	dbUser := model.Users{
		ID:           user.ID.String(),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: string(secret.PasswordHash),
		Role:         user.Role.String(),
		CreatedAt:    user.RegisteredAt,
	}
	_, err := table.Users.INSERT(table.Users.AllColumns).MODEL(dbUser).ExecContext(ctx, s.db)
	if err != nil {
		return wrapErr(err)
	}
	s.log.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user created")
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	return s.getUser(ctx, table.Users.ID.EQ(sqlite.String(id.String())))
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (users.User, error) {
	return s.getUser(ctx, table.Users.Email.EQ(sqlite.String(email)))
}

func (s *Storage) getUser(ctx context.Context, where sqlite.BoolExpression) (users.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
		FROM(table.Users).
		WHERE(where).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		return users.User{}, wrapErr(err)
	}
	return convertUserToDomain(dbUser)
}

func (s *Storage) GetUserSecret(ctx context.Context, id uuid.UUID) (users.Secret, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.ID, table.Users.PasswordHash).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		return users.Secret{}, wrapErr(err)
	}
	return users.Secret{
		PasswordHash: []byte(dbUser.PasswordHash),
	}, nil
}

func convertUserToDomain(user model.Users) (users.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return users.User{}, fmt.Errorf("%w: bad user id: %w", domain.ErrPersistence, err)
	}
	role, err := domain.ParseRole(user.Role)
	if err != nil {
		return users.User{}, fmt.Errorf("%w: user %s: %w", domain.ErrPersistence, user.ID, err)
	}
	return users.User{
		ID:           id,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Role:         role,
		RegisteredAt: user.CreatedAt,
	}, nil
}

func wrapErr(err error) error {
	if errors.Is(err, qrm.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
}
