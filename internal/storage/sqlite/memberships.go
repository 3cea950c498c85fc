package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"

	"github.com/goserg/sportscheduler/gen/model"
	"github.com/goserg/sportscheduler/gen/table"
	"github.com/goserg/sportscheduler/internal/domain"
)

// JoinEvent fails with domain.ErrNotFound for a missing event and domain.ErrConflict
// when the player already joined it.
func (s *Storage) JoinEvent(ctx context.Context, playerID uuid.UUID, eventID int64) (domain.Membership, error) {
	dbEventID, err := eventID32(eventID)
	if err != nil {
		return domain.Membership{}, err
	}
	return inTx(ctx, s.db, func(tx *sql.Tx) (domain.Membership, error) {
		var dbEvent model.Events
		err := table.Events.
			SELECT(table.Events.ID).
			FROM(table.Events).
			WHERE(table.Events.ID.EQ(sqlite.Int(eventID))).
			QueryContext(ctx, tx, &dbEvent)
		if err != nil {
			return domain.Membership{}, wrapErr(err)
		}
		now := time.Now().UTC()
		membership := model.PlayerEvents{
			PlayerID:  playerID.String(),
			EventID:   dbEventID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		res, err := table.PlayerEvents.
			INSERT(table.PlayerEvents.MutableColumns).
			MODEL(membership).
			ExecContext(ctx, tx)
		if err != nil {
			return domain.Membership{}, wrapErr(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return domain.Membership{}, wrapErr(err)
		}
		if membership.ID, err = eventID32(id); err != nil {
			return domain.Membership{}, fmt.Errorf("%w: membership id: %w", domain.ErrPersistence, err)
		}
		return convertMembershipToDomain(membership)
	})
}

func (s *Storage) LeaveEvent(ctx context.Context, playerID uuid.UUID, eventID int64) error {
	res, err := table.PlayerEvents.
		DELETE().
		WHERE(
			table.PlayerEvents.PlayerID.EQ(sqlite.String(playerID.String())).
				AND(table.PlayerEvents.EventID.EQ(sqlite.Int(eventID))),
		).
		ExecContext(ctx, s.db)
	if err != nil {
		return wrapErr(err)
	}
	return expectAffected(res)
}

func (s *Storage) ListMembershipsByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Membership, error) {
	var dest []model.PlayerEvents
	err := table.PlayerEvents.
		SELECT(table.PlayerEvents.AllColumns).
		FROM(table.PlayerEvents).
		WHERE(table.PlayerEvents.PlayerID.EQ(sqlite.String(playerID.String()))).
		ORDER_BY(table.PlayerEvents.ID.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, wrapErr(err)
	}
	memberships := make([]domain.Membership, 0, len(dest))
	for _, m := range dest {
		membership, err := convertMembershipToDomain(m)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}
	return memberships, nil
}

// CountMembershipsByEvent returns the number of players per event. Events nobody joined are absent.
func (s *Storage) CountMembershipsByEvent(ctx context.Context, eventIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}
	ids := make([]sqlite.Expression, 0, len(eventIDs))
	for _, id := range eventIDs {
		ids = append(ids, sqlite.Int(id))
	}
	var dest []model.PlayerEvents
	err := table.PlayerEvents.
		SELECT(table.PlayerEvents.AllColumns).
		FROM(table.PlayerEvents).
		WHERE(table.PlayerEvents.EventID.IN(ids...)).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, wrapErr(err)
	}
	for _, m := range dest {
		counts[int64(m.EventID)]++
	}
	return counts, nil
}
