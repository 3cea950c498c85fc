package sqlite

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/goserg/sportscheduler/gen/model"
	"github.com/goserg/sportscheduler/internal/domain"
)

func convertEventToDomain(e model.Events) (domain.Event, error) {
	adminID, err := uuid.Parse(e.AdminID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: event %d: bad admin id: %w", domain.ErrPersistence, e.ID, err)
	}
	return domain.Event{
		ID:          int64(e.ID),
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Venue:       e.Venue,
		TeamLimit:   int(e.TeamLimit),
		Description: e.Description,
		AdminID:     adminID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}, nil
}

func convertEventsToDomain(events []model.Events) ([]domain.Event, error) {
	converted := make([]domain.Event, 0, len(events))
	for _, e := range events {
		event, err := convertEventToDomain(e)
		if err != nil {
			return nil, err
		}
		converted = append(converted, event)
	}
	return converted, nil
}

func convertFieldsFromDomain(fields domain.EventFields) (model.Events, error) {
	if fields.TeamLimit < math.MinInt32 || fields.TeamLimit > math.MaxInt32 {
		return model.Events{}, fmt.Errorf("%w: team limit %d is out of range", domain.ErrValidation, fields.TeamLimit)
	}
	return model.Events{
		Title:       fields.Title,
		Date:        fields.Date,
		Time:        fields.Time,
		Venue:       fields.Venue,
		TeamLimit:   int32(fields.TeamLimit),
		Description: fields.Description,
	}, nil
}

// eventID32 narrows an event id to the column type. Larger ids cannot be stored, so they are not found.
func eventID32(id int64) (int32, error) {
	if id < math.MinInt32 || id > math.MaxInt32 {
		return 0, fmt.Errorf("%w: event %d", domain.ErrNotFound, id)
	}
	return int32(id), nil
}

func convertMembershipToDomain(m model.PlayerEvents) (domain.Membership, error) {
	playerID, err := uuid.Parse(m.PlayerID)
	if err != nil {
		return domain.Membership{}, fmt.Errorf("%w: membership %d: bad player id: %w", domain.ErrPersistence, m.ID, err)
	}
	return domain.Membership{
		ID:        int64(m.ID),
		PlayerID:  playerID,
		EventID:   int64(m.EventID),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
