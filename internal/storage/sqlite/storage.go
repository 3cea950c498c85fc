package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/goserg/sportscheduler/internal/domain"
	"github.com/goserg/sportscheduler/internal/storage"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.EventStorage = (*Storage)(nil)
var _ storage.MembershipStorage = (*Storage)(nil)

func New(l *logrus.Logger, db *sql.DB) *Storage {
	return &Storage{
		db:  db,
		log: l.WithField("from", "event-storage"),
	}
}

// wrapErr maps driver and query errors onto domain error kinds.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, qrm.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		}
	}
	if strings.HasPrefix(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
}

func inTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, wrapErr(err)
	}
	value, err := fn(tx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return zero, errors.Join(err, wrapErr(rbErr))
		}
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		return zero, wrapErr(err)
	}
	return value, nil
}

func inTxSimple(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	_, err := inTx(ctx, db, func(tx *sql.Tx) (struct{}, error) { return struct{}{}, fn(tx) })
	return err
}
