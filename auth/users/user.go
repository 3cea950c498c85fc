package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/goserg/sportscheduler/internal/domain"
)

type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Role         domain.Role
	RegisteredAt time.Time
}

func (u User) Identity() domain.Identity {
	return domain.Identity{ID: u.ID, Role: u.Role}
}

func (u User) Name() string {
	return u.FirstName + " " + u.LastName
}

func (u User) IsAdmin() bool {
	return u.Role == domain.RoleAdmin
}

// Secret holds the bcrypt hash of the password; the salt is part of the hash.
type Secret struct {
	PasswordHash []byte
}
