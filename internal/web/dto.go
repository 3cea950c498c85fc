package web

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	authservice "github.com/goserg/sportscheduler/auth/service"
	"github.com/goserg/sportscheduler/internal/domain"
)

var ErrPasswordMismatch = fmt.Errorf("%w: passwords don't match", domain.ErrValidation)

func parseSignUpForm(ctx *fiber.Ctx) (authservice.SignUpRequest, error) {
	req := authservice.SignUpRequest{
		FirstName: ctx.FormValue("firstName"),
		LastName:  ctx.FormValue("lastName"),
		Email:     ctx.FormValue("email"),
		Password:  ctx.FormValue("password"),
	}
	var err error
	if req.Password != ctx.FormValue("password-repeat") {
		err = ErrPasswordMismatch
	}
	role, rerr := domain.ParseRole(ctx.FormValue("role"))
	if rerr != nil {
		return req, errors.Join(err, rerr)
	}
	req.Role = role
	return req, err
}

// parseEventForm leaves TeamLimit at zero for non-numeric input so validation reports it.
func parseEventForm(ctx *fiber.Ctx) domain.EventFields {
	limit, err := strconv.Atoi(strings.TrimSpace(ctx.FormValue("team_limit")))
	if err != nil {
		limit = 0
	}
	return domain.EventFields{
		Title:       ctx.FormValue("title"),
		Date:        ctx.FormValue("date"),
		Time:        ctx.FormValue("time"),
		Venue:       ctx.FormValue("venue"),
		TeamLimit:   limit,
		Description: ctx.FormValue("description"),
	}
}

func eventID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: event %q", domain.ErrNotFound, ctx.Params("id"))
	}
	return id, nil
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type eventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
	TeamLimit   int    `json:"team_limit"`
	Description string `json:"description"`
}

func (r eventRequest) fields() domain.EventFields {
	return domain.EventFields{
		Title:       r.Title,
		Date:        r.Date,
		Time:        r.Time,
		Venue:       r.Venue,
		TeamLimit:   r.TeamLimit,
		Description: r.Description,
	}
}

type eventResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Venue       string    `json:"venue"`
	TeamLimit   int       `json:"team_limit"`
	Description string    `json:"description"`
	AdminID     string    `json:"admin_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Joined      *bool     `json:"joined,omitempty"`
	Players     *int      `json:"players,omitempty"`
}

func convertEvent(e domain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Venue:       e.Venue,
		TeamLimit:   e.TeamLimit,
		Description: e.Description,
		AdminID:     e.AdminID.String(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func convertEvents(events []domain.Event) []eventResponse {
	res := make([]eventResponse, 0, len(events))
	for _, e := range events {
		res = append(res, convertEvent(e))
	}
	return res
}

func convertAdminEvents(events []domain.AdminEvent) []eventResponse {
	res := make([]eventResponse, 0, len(events))
	for _, e := range events {
		r := convertEvent(e.Event)
		players := e.Players
		r.Players = &players
		res = append(res, r)
	}
	return res
}

func convertPlayerEvents(events []domain.PlayerEvent) []eventResponse {
	res := make([]eventResponse, 0, len(events))
	for _, e := range events {
		r := convertEvent(e.Event)
		joined := e.Joined
		r.Joined = &joined
		res = append(res, r)
	}
	return res
}

type membershipResponse struct {
	ID        int64     `json:"id"`
	PlayerID  string    `json:"player_id"`
	EventID   int64     `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

func convertMembership(m domain.Membership) membershipResponse {
	return membershipResponse{
		ID:        m.ID,
		PlayerID:  m.PlayerID.String(),
		EventID:   m.EventID,
		CreatedAt: m.CreatedAt,
	}
}

type errorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}
