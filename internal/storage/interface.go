package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/goserg/sportscheduler/internal/domain"
)

type EventStorage interface {
	CreateEvent(ctx context.Context, adminID uuid.UUID, fields domain.EventFields) (domain.Event, error)
	// GetEventByAdmin, UpdateEvent and DeleteEvent report domain.ErrNotFound both for a missing
	// event and for an event owned by another admin.
	GetEventByAdmin(ctx context.Context, eventID int64, adminID uuid.UUID) (domain.Event, error)
	UpdateEvent(ctx context.Context, eventID int64, adminID uuid.UUID, fields domain.EventFields) (domain.Event, error)
	DeleteEvent(ctx context.Context, eventID int64, adminID uuid.UUID) error
	ListEventsByAdmin(ctx context.Context, adminID uuid.UUID) ([]domain.Event, error)
	ListAllEvents(ctx context.Context) ([]domain.Event, error)
}

type MembershipStorage interface {
	JoinEvent(ctx context.Context, playerID uuid.UUID, eventID int64) (domain.Membership, error)
	LeaveEvent(ctx context.Context, playerID uuid.UUID, eventID int64) error
	ListMembershipsByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Membership, error)
	CountMembershipsByEvent(ctx context.Context, eventIDs []int64) (map[int64]int, error)
}
