package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// MaxTeamLimit is the largest limit the events table can hold.
	MaxTeamLimit = math.MaxInt32
)

type Event struct {
	ID          int64
	Title       string
	Date        string
	Time        string
	Venue       string
	TeamLimit   int
	Description string
	AdminID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Fields returns the mutable part of the event.
func (e Event) Fields() EventFields {
	return EventFields{
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Venue:       e.Venue,
		TeamLimit:   e.TeamLimit,
		Description: e.Description,
	}
}

// StartsAt combines Date and Time. The result is only meaningful for validated events.
func (e Event) StartsAt() time.Time {
	t, err := time.Parse(DateLayout+" "+TimeLayout, e.Date+" "+e.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}

// EventFields is the set of values an admin supplies when creating or editing an event.
type EventFields struct {
	Title       string
	Date        string
	Time        string
	Venue       string
	TeamLimit   int
	Description string
}

// Normalize trims surrounding whitespace from text fields.
func (f EventFields) Normalize() EventFields {
	f.Title = strings.TrimSpace(f.Title)
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	f.Venue = strings.TrimSpace(f.Venue)
	f.Description = strings.TrimSpace(f.Description)
	return f
}

// Validate reports every missing or malformed field joined into one error.
// Each joined error wraps ErrValidation.
func (f EventFields) Validate() error {
	var err error
	if f.Title == "" {
		err = errors.Join(err, fieldError("title is required"))
	}
	if f.Date == "" {
		err = errors.Join(err, fieldError("date is required"))
	} else if _, perr := time.Parse(DateLayout, f.Date); perr != nil {
		err = errors.Join(err, fieldError("date must look like "+DateLayout))
	}
	if f.Time == "" {
		err = errors.Join(err, fieldError("time is required"))
	} else if _, perr := time.Parse(TimeLayout, f.Time); perr != nil {
		err = errors.Join(err, fieldError("time must look like "+TimeLayout))
	}
	if f.Venue == "" {
		err = errors.Join(err, fieldError("venue is required"))
	}
	if f.TeamLimit <= 0 {
		err = errors.Join(err, fieldError("team limit must be a positive number"))
	} else if f.TeamLimit > MaxTeamLimit {
		err = errors.Join(err, fieldError("team limit is too large"))
	}
	if f.Description == "" {
		err = errors.Join(err, fieldError("description is required"))
	}
	return err
}

func fieldError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Membership records that a player has joined an event.
type Membership struct {
	ID        int64
	PlayerID  uuid.UUID
	EventID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerEvent is an event as seen on a player's dashboard.
type PlayerEvent struct {
	Event
	Joined bool
}

// AdminEvent is an event as seen on its owner's dashboard.
type AdminEvent struct {
	Event
	Players int
}
