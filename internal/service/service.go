// Package service implements the event and membership operations on behalf of an explicit caller identity.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/goserg/sportscheduler/internal/domain"
	"github.com/goserg/sportscheduler/internal/policy"
	"github.com/goserg/sportscheduler/internal/storage"
)

type Service struct {
	events      storage.EventStorage
	memberships storage.MembershipStorage
	log         *logrus.Entry
}

func New(l *logrus.Logger, events storage.EventStorage, memberships storage.MembershipStorage) *Service {
	return &Service{
		events:      events,
		memberships: memberships,
		log:         l.WithField("from", "event-service"),
	}
}

func (s *Service) CreateEvent(ctx context.Context, who domain.Identity, fields domain.EventFields) (domain.Event, error) {
	if err := policy.Authorize(who, policy.CreateEvent, policy.Target{}); err != nil {
		return domain.Event{}, err
	}
	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return domain.Event{}, err
	}
	event, err := s.events.CreateEvent(ctx, who.ID, fields)
	if err != nil {
		return domain.Event{}, err
	}
	s.log.WithFields(logrus.Fields{"event_id": event.ID, "admin_id": who.ID}).Info("event created")
	return event, nil
}

// CanCreateEvent reports whether who may create events, without touching storage.
func (s *Service) CanCreateEvent(who domain.Identity) error {
	return policy.Authorize(who, policy.CreateEvent, policy.Target{})
}

// GetEvent returns an event owned by the caller.
func (s *Service) GetEvent(ctx context.Context, who domain.Identity, eventID int64) (domain.Event, error) {
	if err := policy.Authorize(who, policy.EditEvent, policy.Target{}); err != nil {
		return domain.Event{}, err
	}
	event, err := s.events.GetEventByAdmin(ctx, eventID, who.ID)
	if err != nil {
		return domain.Event{}, err
	}
	if err := policy.Authorize(who, policy.EditEvent, policy.Target{Event: &event}); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

// UpdateEvent replaces every field of an event owned by the caller. Events of other
// admins are reported as domain.ErrNotFound.
func (s *Service) UpdateEvent(ctx context.Context, who domain.Identity, eventID int64, fields domain.EventFields) (domain.Event, error) {
	if err := policy.Authorize(who, policy.EditEvent, policy.Target{}); err != nil {
		return domain.Event{}, err
	}
	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return domain.Event{}, err
	}
	event, err := s.events.UpdateEvent(ctx, eventID, who.ID, fields)
	if err != nil {
		return domain.Event{}, err
	}
	s.log.WithFields(logrus.Fields{"event_id": event.ID, "admin_id": who.ID}).Info("event updated")
	return event, nil
}

// DeleteEvent deletes an event owned by the caller together with its memberships.
func (s *Service) DeleteEvent(ctx context.Context, who domain.Identity, eventID int64) error {
	if err := policy.Authorize(who, policy.DeleteEvent, policy.Target{}); err != nil {
		return err
	}
	if err := s.events.DeleteEvent(ctx, eventID, who.ID); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"event_id": eventID, "admin_id": who.ID}).Info("event deleted")
	return nil
}

func (s *Service) ListEventsByAdmin(ctx context.Context, who domain.Identity) ([]domain.Event, error) {
	if err := policy.Authorize(who, policy.ViewAdminDashboard, policy.Target{}); err != nil {
		return nil, err
	}
	return s.events.ListEventsByAdmin(ctx, who.ID)
}

// ListAllEvents is available to every authenticated caller.
func (s *Service) ListAllEvents(ctx context.Context, who domain.Identity) ([]domain.Event, error) {
	if !who.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.events.ListAllEvents(ctx)
}

func (s *Service) JoinEvent(ctx context.Context, who domain.Identity, eventID int64) (domain.Membership, error) {
	if err := policy.Authorize(who, policy.JoinEvent, policy.Target{}); err != nil {
		return domain.Membership{}, err
	}
	membership, err := s.memberships.JoinEvent(ctx, who.ID, eventID)
	if err != nil {
		return domain.Membership{}, err
	}
	s.log.WithFields(logrus.Fields{"event_id": eventID, "player_id": who.ID}).Info("player joined event")
	return membership, nil
}

func (s *Service) LeaveEvent(ctx context.Context, who domain.Identity, eventID int64) error {
	if err := policy.Authorize(who, policy.LeaveEvent, policy.Target{}); err != nil {
		return err
	}
	if err := s.memberships.LeaveEvent(ctx, who.ID, eventID); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"event_id": eventID, "player_id": who.ID}).Info("player left event")
	return nil
}

func (s *Service) ListMembershipsByPlayer(ctx context.Context, who domain.Identity) ([]domain.Membership, error) {
	if err := policy.Authorize(who, policy.ViewPlayerDashboard, policy.Target{}); err != nil {
		return nil, err
	}
	return s.memberships.ListMembershipsByPlayer(ctx, who.ID)
}
