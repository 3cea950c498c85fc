package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"

	"github.com/goserg/sportscheduler/gen/model"
	"github.com/goserg/sportscheduler/gen/table"
	"github.com/goserg/sportscheduler/internal/domain"
)

func ownedEvent(eventID int64, adminID uuid.UUID) sqlite.BoolExpression {
	return table.Events.ID.EQ(sqlite.Int(eventID)).
		AND(table.Events.AdminID.EQ(sqlite.String(adminID.String())))
}

func (s *Storage) CreateEvent(ctx context.Context, adminID uuid.UUID, fields domain.EventFields) (domain.Event, error) {
	now := time.Now().UTC()
	dbEvent, err := convertFieldsFromDomain(fields)
	if err != nil {
		return domain.Event{}, err
	}
	dbEvent.AdminID = adminID.String()
	dbEvent.CreatedAt = now
	dbEvent.UpdatedAt = now
	res, err := table.Events.
		INSERT(table.Events.MutableColumns).
		MODEL(dbEvent).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Event{}, wrapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Event{}, wrapErr(err)
	}
	if dbEvent.ID, err = eventID32(id); err != nil {
		return domain.Event{}, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	s.log.WithFields(map[string]interface{}{
		"event_id": id,
		"admin_id": adminID,
	}).Debug("event created")
	return convertEventToDomain(dbEvent)
}

func (s *Storage) GetEventByAdmin(ctx context.Context, eventID int64, adminID uuid.UUID) (domain.Event, error) {
	return getOwnedEvent(ctx, s.db, eventID, adminID)
}

func getOwnedEvent(ctx context.Context, db qrm.Queryable, eventID int64, adminID uuid.UUID) (domain.Event, error) {
	var dbEvent model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(ownedEvent(eventID, adminID)).
		QueryContext(ctx, db, &dbEvent)
	if err != nil {
		return domain.Event{}, wrapErr(err)
	}
	return convertEventToDomain(dbEvent)
}

func (s *Storage) UpdateEvent(ctx context.Context, eventID int64, adminID uuid.UUID, fields domain.EventFields) (domain.Event, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) (domain.Event, error) {
		dbEvent, err := convertFieldsFromDomain(fields)
		if err != nil {
			return domain.Event{}, err
		}
		dbEvent.UpdatedAt = time.Now().UTC()
		res, err := table.Events.
			UPDATE(
				table.Events.Title,
				table.Events.Date,
				table.Events.Time,
				table.Events.Venue,
				table.Events.TeamLimit,
				table.Events.Description,
				table.Events.UpdatedAt,
			).
			MODEL(dbEvent).
			WHERE(ownedEvent(eventID, adminID)).
			ExecContext(ctx, tx)
		if err != nil {
			return domain.Event{}, wrapErr(err)
		}
		if err := expectAffected(res); err != nil {
			return domain.Event{}, err
		}
		return getOwnedEvent(ctx, tx, eventID, adminID)
	})
}

// DeleteEvent removes the event's memberships and then the event itself in one transaction.
func (s *Storage) DeleteEvent(ctx context.Context, eventID int64, adminID uuid.UUID) error {
	err := inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := getOwnedEvent(ctx, tx, eventID, adminID); err != nil {
			return err
		}
		res, err := table.PlayerEvents.
			DELETE().
			WHERE(table.PlayerEvents.EventID.EQ(sqlite.Int(eventID))).
			ExecContext(ctx, tx)
		if err != nil {
			return wrapErr(err)
		}
		removed, err := res.RowsAffected()
		if err != nil {
			return wrapErr(err)
		}
		res, err = table.Events.
			DELETE().
			WHERE(ownedEvent(eventID, adminID)).
			ExecContext(ctx, tx)
		if err != nil {
			return wrapErr(err)
		}
		if err := expectAffected(res); err != nil {
			return err
		}
		s.log.WithFields(map[string]interface{}{
			"event_id":            eventID,
			"admin_id":            adminID,
			"memberships_removed": removed,
		}).Debug("event deleted")
		return nil
	})
	return err
}

func (s *Storage) ListEventsByAdmin(ctx context.Context, adminID uuid.UUID) ([]domain.Event, error) {
	var events []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(table.Events.AdminID.EQ(sqlite.String(adminID.String()))).
		ORDER_BY(table.Events.ID.ASC()).
		QueryContext(ctx, s.db, &events)
	if err != nil {
		return nil, wrapErr(err)
	}
	return convertEventsToDomain(events)
}

func (s *Storage) ListAllEvents(ctx context.Context) ([]domain.Event, error) {
	var events []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		ORDER_BY(table.Events.ID.ASC()).
		QueryContext(ctx, s.db, &events)
	if err != nil {
		return nil, wrapErr(err)
	}
	return convertEventsToDomain(events)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr(err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
