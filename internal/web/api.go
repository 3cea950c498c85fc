package web

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/goserg/sportscheduler/internal/domain"
)

func (s *Server) handleAPIToken(ctx *fiber.Ctx) error {
	var req tokenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	user, err := s.auth.Login(ctx.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	token, expiresAt, err := s.auth.GenerateToken(user.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(tokenResponse{Token: token, ExpiresAt: expiresAt})
}

func (s *Server) handleAPIListEvents(ctx *fiber.Ctx) error {
	events, err := s.service.ListAllEvents(ctx.UserContext(), currentUser(ctx).Identity())
	if err != nil {
		return err
	}
	return ctx.JSON(convertEvents(events))
}

func (s *Server) handleAPIDashboard(ctx *fiber.Ctx) error {
	who := currentUser(ctx).Identity()
	switch who.Role {
	case domain.RoleAdmin:
		events, err := s.service.AdminDashboard(ctx.UserContext(), who)
		if err != nil {
			return err
		}
		return ctx.JSON(convertAdminEvents(events))
	case domain.RolePlayer:
		events, err := s.service.PlayerDashboard(ctx.UserContext(), who)
		if err != nil {
			return err
		}
		return ctx.JSON(convertPlayerEvents(events))
	default:
		return domain.ErrForbidden
	}
}

func parseEventRequest(ctx *fiber.Ctx) (domain.EventFields, error) {
	var req eventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return domain.EventFields{}, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	return req.fields(), nil
}

func (s *Server) handleAPICreateEvent(ctx *fiber.Ctx) error {
	fields, err := parseEventRequest(ctx)
	if err != nil {
		return err
	}
	event, err := s.service.CreateEvent(ctx.UserContext(), currentUser(ctx).Identity(), fields)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertEvent(event))
}

func (s *Server) handleAPIUpdateEvent(ctx *fiber.Ctx) error {
	id, err := eventID(ctx)
	if err != nil {
		return err
	}
	fields, err := parseEventRequest(ctx)
	if err != nil {
		return err
	}
	event, err := s.service.UpdateEvent(ctx.UserContext(), currentUser(ctx).Identity(), id, fields)
	if err != nil {
		return err
	}
	return ctx.JSON(convertEvent(event))
}

func (s *Server) handleAPIDeleteEvent(ctx *fiber.Ctx) error {
	id, err := eventID(ctx)
	if err != nil {
		return err
	}
	if err := s.service.DeleteEvent(ctx.UserContext(), currentUser(ctx).Identity(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleAPIJoinEvent(ctx *fiber.Ctx) error {
	id, err := eventID(ctx)
	if err != nil {
		return err
	}
	membership, err := s.service.JoinEvent(ctx.UserContext(), currentUser(ctx).Identity(), id)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertMembership(membership))
}

func (s *Server) handleAPILeaveEvent(ctx *fiber.Ctx) error {
	id, err := eventID(ctx)
	if err != nil {
		return err
	}
	if err := s.service.LeaveEvent(ctx.UserContext(), currentUser(ctx).Identity(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
