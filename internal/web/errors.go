package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	authservice "github.com/goserg/sportscheduler/auth/service"
	"github.com/goserg/sportscheduler/internal/domain"
	"github.com/goserg/sportscheduler/internal/web/webpath"
)

func statusCode(err error) int {
	var ferr *fiber.Error
	switch {
	case errors.As(err, &ferr):
		return ferr.Code
	case errors.Is(err, authservice.ErrInvalidCredentials),
		errors.Is(err, authservice.ErrNotAuthorized),
		errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func isAPI(ctx *fiber.Ctx) bool {
	return strings.HasPrefix(ctx.Path(), webpath.Api)
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code := statusCode(err)
	if code >= fiber.StatusInternalServerError {
		s.log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	}
	// Internal details stay in the log.
	msg := err.Error()
	if code >= fiber.StatusInternalServerError {
		msg = fiber.ErrInternalServerError.Message
	}

	if isAPI(ctx) {
		res := errorResponse{Error: msg}
		if code == fiber.StatusBadRequest {
			for _, e := range unwrap(err) {
				res.Errors = append(res.Errors, e.Error())
			}
		}
		return ctx.Status(code).JSON(res)
	}

	if code == fiber.StatusUnauthorized && !errors.Is(err, authservice.ErrInvalidCredentials) {
		return ctx.Redirect(webpath.Signin)
	}
	d := newData(ctx, "Error").With("Code", code)
	if code >= fiber.StatusInternalServerError {
		d.Errors = []string{msg}
	} else {
		d = d.WithErrors(err)
	}
	return ctx.Status(code).Render("error", d, "layouts/main")
}
