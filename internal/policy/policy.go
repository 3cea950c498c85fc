// Package policy decides whether an identity may perform an action on a target.
package policy

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/sportscheduler/internal/domain"
)

type Action int

const (
	CreateEvent Action = iota + 1
	EditEvent
	DeleteEvent
	ViewAdminDashboard
	JoinEvent
	LeaveEvent
	ViewPlayerDashboard
)

func (a Action) String() string {
	switch a {
	case CreateEvent:
		return "create event"
	case EditEvent:
		return "edit event"
	case DeleteEvent:
		return "delete event"
	case ViewAdminDashboard:
		return "view admin dashboard"
	case JoinEvent:
		return "join event"
	case LeaveEvent:
		return "leave event"
	case ViewPlayerDashboard:
		return "view player dashboard"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Target is the optional object of an action. Nil fields are not checked.
type Target struct {
	Event      *domain.Event
	Membership *domain.Membership
}

var (
	admins  = mapset.NewSet[domain.Role](domain.RoleAdmin)
	players = mapset.NewSet[domain.Role](domain.RolePlayer)
)

var permissions = map[Action]mapset.Set[domain.Role]{
	CreateEvent:         admins,
	EditEvent:           admins,
	DeleteEvent:         admins,
	ViewAdminDashboard:  admins,
	JoinEvent:           players,
	LeaveEvent:          players,
	ViewPlayerDashboard: players,
}

// Authorize returns nil when who may perform action on target,
// domain.ErrUnauthenticated for anonymous callers and domain.ErrForbidden otherwise.
func Authorize(who domain.Identity, action Action, target Target) error {
	if !who.Authenticated() {
		return domain.ErrUnauthenticated
	}
	allowed, ok := permissions[action]
	if !ok || !allowed.Contains(who.Role) {
		return fmt.Errorf("%w: %s may not %s", domain.ErrForbidden, who.Role, action)
	}
	switch action {
	case EditEvent, DeleteEvent:
		if target.Event != nil && target.Event.AdminID != who.ID {
			return fmt.Errorf("%w: event %d belongs to another admin", domain.ErrForbidden, target.Event.ID)
		}
	case JoinEvent, LeaveEvent:
		if target.Membership != nil && target.Membership.PlayerID != who.ID {
			return fmt.Errorf("%w: membership %d belongs to another player", domain.ErrForbidden, target.Membership.ID)
		}
	}
	return nil
}

// Allowed is Authorize reduced to a boolean, for templates and menus.
func Allowed(who domain.Identity, action Action) bool {
	return Authorize(who, action, Target{}) == nil
}
