package domain

import "fmt"

// Role is the closed set of identity roles. The zero value is not a valid role.
type Role int

const (
	RoleAdmin Role = iota + 1
	RolePlayer
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RolePlayer:
		return "player"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePlayer:
		return true
	default:
		return false
	}
}

func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "player":
		return RolePlayer, nil
	default:
		return 0, fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
}
