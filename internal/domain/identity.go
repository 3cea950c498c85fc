package domain

import "github.com/google/uuid"

// Identity is the authenticated caller passed into every core operation.
type Identity struct {
	ID   uuid.UUID
	Role Role
}

// Anonymous is the identity of a request without a valid session.
var Anonymous = Identity{}

func (i Identity) Authenticated() bool {
	return i.ID != uuid.Nil && i.Role.Valid()
}
