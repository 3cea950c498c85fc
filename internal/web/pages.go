package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	authservice "github.com/goserg/sportscheduler/auth/service"
	"github.com/goserg/sportscheduler/internal/domain"
	"github.com/goserg/sportscheduler/internal/web/webpath"
)

func (s *Server) handleHome(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	if !user.Identity().Authenticated() {
		return ctx.Redirect(webpath.Signin)
	}
	return ctx.Redirect(dashboardFor(user.Role))
}

func (s *Server) handleGetSignIn(ctx *fiber.Ctx) error {
	return ctx.Render("signin", newData(ctx, "Sign in"), "layouts/main")
}

func (s *Server) handlePostSignIn(ctx *fiber.Ctx) error {
	email := ctx.FormValue("email")
	user, err := s.auth.Login(ctx.UserContext(), email, ctx.FormValue("password"))
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			d := newData(ctx, "Sign in").With("Email", email).WithErrors(err)
			return ctx.Status(fiber.StatusUnauthorized).Render("signin", d, "layouts/main")
		}
		return err
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(dashboardFor(user.Role))
}

func (s *Server) handleGetSignUp(ctx *fiber.Ctx) error {
	return ctx.Render("signup", newData(ctx, "Sign up"), "layouts/main")
}

func (s *Server) handlePostSignUp(ctx *fiber.Ctx) error {
	req, err := parseSignUpForm(ctx)
	if err == nil {
		_, err = s.auth.SignUp(ctx.UserContext(), req)
	}
	if err != nil {
		code := statusCode(err)
		if code != fiber.StatusBadRequest && code != fiber.StatusConflict {
			return err
		}
		d := newData(ctx, "Sign up").With("Form", req).WithErrors(err)
		return ctx.Status(code).Render("signup", d, "layouts/main")
	}
	return ctx.Redirect(webpath.Signin)
}

func (s *Server) handleSignOut(ctx *fiber.Ctx) error {
	clearSession(ctx)
	return ctx.Redirect(webpath.Signin)
}

func (s *Server) handleAdminDashboard(ctx *fiber.Ctx) error {
	events, err := s.service.AdminDashboard(ctx.UserContext(), currentUser(ctx).Identity())
	if err != nil {
		return err
	}
	return ctx.Render("admin", newData(ctx, "Admin dashboard").With("Events", events), "layouts/main")
}

func (s *Server) handlePlayerDashboard(ctx *fiber.Ctx) error {
	events, err := s.service.PlayerDashboard(ctx.UserContext(), currentUser(ctx).Identity())
	if err != nil {
		return err
	}
	return ctx.Render("player", newData(ctx, "Player dashboard").With("Events", events), "layouts/main")
}

func (s *Server) renderEventForm(ctx *fiber.Ctx, title, action string, fields domain.EventFields, err error) error {
	d := newData(ctx, title).
		With("Action", action).
		With("Event", fields)
	if err != nil {
		d = d.WithErrors(err)
		ctx.Status(fiber.StatusBadRequest)
	}
	return ctx.Render("eventForm", d, "layouts/main")
}

func (s *Server) handleNewEventGet(ctx *fiber.Ctx) error {
	if err := s.service.CanCreateEvent(currentUser(ctx).Identity()); err != nil {
		return err
	}
	return s.renderEventForm(ctx, "New event", webpath.AdminNewEvent, domain.EventFields{}, nil)
}

func (s *Server) handleNewEventPost(ctx *fiber.Ctx) error {
	fields := parseEventForm(ctx)
	_, err := s.service.CreateEvent(ctx.UserContext(), currentUser(ctx).Identity(), fields)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return s.renderEventForm(ctx, "New event", webpath.AdminNewEvent, fields, err)
		}
		return err
	}
	return ctx.Redirect(webpath.AdminDashboard)
}

func (s *Server) handleEditEventGet(ctx *fiber.Ctx) error {
	id, err := eventID(ctx)
	if err != nil {
		return err
	}
	event, err := s.service.GetEvent(ctx.UserContext(), currentUser(ctx).Identity(), id)
	if err != nil {
		return err
	}
	return s.renderEventForm(ctx, "Edit event", webpath.WithID(webpath.AdminEdit, id), event.Fields(), nil)
}

func (s *Server) handleEditEventPost(ctx *fiber.Ctx) error {
	id, err := eventID(ctx)
	if err != nil {
		return err
	}
	fields := parseEventForm(ctx)
	_, err = s.service.UpdateEvent(ctx.UserContext(), currentUser(ctx).Identity(), id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return s.renderEventForm(ctx, "Edit event", webpath.WithID(webpath.AdminEdit, id), fields, err)
		}
		return err
	}
	return ctx.Redirect(webpath.AdminDashboard)
}

func (s *Server) handleDeleteEvent(ctx *fiber.Ctx) error {
	id, err := eventID(ctx)
	if err != nil {
		return err
	}
	if err := s.service.DeleteEvent(ctx.UserContext(), currentUser(ctx).Identity(), id); err != nil {
		return err
	}
	return ctx.Redirect(webpath.AdminDashboard)
}

func (s *Server) handleJoinEvent(ctx *fiber.Ctx) error {
	id, err := eventID(ctx)
	if err != nil {
		return err
	}
	if _, err := s.service.JoinEvent(ctx.UserContext(), currentUser(ctx).Identity(), id); err != nil {
		return err
	}
	return ctx.Redirect(webpath.PlayerDashboard)
}

func (s *Server) handleLeaveEvent(ctx *fiber.Ctx) error {
	id, err := eventID(ctx)
	if err != nil {
		return err
	}
	if err := s.service.LeaveEvent(ctx.UserContext(), currentUser(ctx).Identity(), id); err != nil {
		return err
	}
	return ctx.Redirect(webpath.PlayerDashboard)
}
