package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/goserg/sportscheduler/auth/users"
	"github.com/goserg/sportscheduler/internal/web/webpath"
)

const (
	userKey = "user"
	csrfKey = "csrf"
)

type data struct {
	Title  string
	Path   map[string]string
	User   users.User
	CSRF   string
	Errors []string
	Data   map[string]any
}

func newData(ctx *fiber.Ctx, title string) data {
	csrf, _ := ctx.Locals(csrfKey).(string)
	return data{
		Title: title,
		Path:  webpath.Path(),
		User:  currentUser(ctx),
		CSRF:  csrf,
		Data:  make(map[string]any),
	}
}

func (m data) LoggedIn() bool {
	return m.User.Identity().Authenticated()
}

func (m data) With(key string, value any) data {
	if m.Data == nil {
		m.Data = make(map[string]any)
	}
	m.Data[key] = value
	return m
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func (m data) WithErrors(err error) data {
	for _, err := range unwrap(err) {
		m.Errors = append(m.Errors, err.Error())
	}
	return m
}

func currentUser(ctx *fiber.Ctx) users.User {
	user, _ := ctx.Locals(userKey).(users.User)
	return user
}
