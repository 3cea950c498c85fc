package service

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/sportscheduler/internal/domain"
	"github.com/goserg/sportscheduler/internal/policy"
)

// AdminDashboard lists the caller's events with the number of players who joined each.
func (s *Service) AdminDashboard(ctx context.Context, who domain.Identity) ([]domain.AdminEvent, error) {
	if err := policy.Authorize(who, policy.ViewAdminDashboard, policy.Target{}); err != nil {
		return nil, err
	}
	events, err := s.events.ListEventsByAdmin(ctx, who.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	counts, err := s.memberships.CountMembershipsByEvent(ctx, ids)
	if err != nil {
		return nil, err
	}
	dashboard := make([]domain.AdminEvent, 0, len(events))
	for _, e := range events {
		dashboard = append(dashboard, domain.AdminEvent{
			Event:   e,
			Players: counts[e.ID],
		})
	}
	return dashboard, nil
}

// PlayerDashboard lists every event and marks the ones the caller has joined.
func (s *Service) PlayerDashboard(ctx context.Context, who domain.Identity) ([]domain.PlayerEvent, error) {
	if err := policy.Authorize(who, policy.ViewPlayerDashboard, policy.Target{}); err != nil {
		return nil, err
	}
	events, err := s.events.ListAllEvents(ctx)
	if err != nil {
		return nil, err
	}
	memberships, err := s.memberships.ListMembershipsByPlayer(ctx, who.ID)
	if err != nil {
		return nil, err
	}
	joined := mapset.NewThreadUnsafeSet[int64]()
	for _, m := range memberships {
		joined.Add(m.EventID)
	}
	dashboard := make([]domain.PlayerEvent, 0, len(events))
	for _, e := range events {
		dashboard = append(dashboard, domain.PlayerEvent{
			Event:  e,
			Joined: joined.Contains(e.ID),
		})
	}
	return dashboard, nil
}
