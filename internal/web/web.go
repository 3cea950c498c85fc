package web

import (
	"errors"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html"
	"github.com/sirupsen/logrus"

	embedded "github.com/goserg/sportscheduler"
	authservice "github.com/goserg/sportscheduler/auth/service"
	"github.com/goserg/sportscheduler/internal/config"
	"github.com/goserg/sportscheduler/internal/domain"
	"github.com/goserg/sportscheduler/internal/service"
	"github.com/goserg/sportscheduler/internal/web/webpath"
)

type Server struct {
	auth    *authservice.Service
	service *service.Service
	app     *fiber.App
	cfg     config.Server
	log     *logrus.Entry
}

func New(l *logrus.Logger, cfg config.Server, authService *authservice.Service, eventService *service.Service) (*Server, error) {
	server := Server{
		auth:    authService,
		service: eventService,
		cfg:     cfg,
		log:     l.WithField("from", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)
	engine.AddFunc("EventPath", webpath.WithID)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ErrorHandler:          server.handleError,
		DisableStartupMessage: !cfg.Debug,
	})
	app.Use(recover.New())
	app.Use(server.logRequests)
	app.Use(csrf.New(csrf.Config{
		Next:           isAPI,
		KeyLookup:      "form:_csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		Expiration:     time.Hour,
		ContextKey:     csrfKey,
	}))
	app.Use(server.identify)

	app.Get(webpath.Home, server.handleHome)
	app.Get(webpath.Signin, server.handleGetSignIn)
	app.Post(webpath.Signin, server.handlePostSignIn)
	app.Get(webpath.Signup, server.handleGetSignUp)
	app.Post(webpath.Signup, server.handlePostSignUp)
	app.Get(webpath.Signout, server.handleSignOut)

	app.Get(webpath.AdminDashboard, requireUser, server.handleAdminDashboard)
	app.Get(webpath.AdminNewEvent, requireUser, server.handleNewEventGet)
	app.Post(webpath.AdminNewEvent, requireUser, server.handleNewEventPost)
	app.Get(webpath.AdminEdit, requireUser, server.handleEditEventGet)
	app.Post(webpath.AdminEdit, requireUser, server.handleEditEventPost)
	app.Post(webpath.AdminDelete, requireUser, server.handleDeleteEvent)

	app.Get(webpath.PlayerDashboard, requireUser, server.handlePlayerDashboard)
	app.Post(webpath.PlayerJoin, requireUser, server.handleJoinEvent)
	app.Post(webpath.PlayerLeave, requireUser, server.handleLeaveEvent)

	app.Post(webpath.ApiToken, server.handleAPIToken)
	app.Get(webpath.ApiEvents, requireUser, server.handleAPIListEvents)
	app.Post(webpath.ApiEvents, requireUser, server.handleAPICreateEvent)
	app.Put(webpath.ApiEvent, requireUser, server.handleAPIUpdateEvent)
	app.Delete(webpath.ApiEvent, requireUser, server.handleAPIDeleteEvent)
	app.Post(webpath.ApiEventMembership, requireUser, server.handleAPIJoinEvent)
	app.Delete(webpath.ApiEventMembership, requireUser, server.handleAPILeaveEvent)
	app.Get(webpath.ApiDashboard, requireUser, server.handleAPIDashboard)

	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	s.log.WithField("addr", addr).WithField("tls", s.cfg.TLSEnabled()).Info("listening")
	if s.cfg.TLSEnabled() {
		return s.app.ListenTLS(addr, s.cfg.TLSCert, s.cfg.TLSKey)
	}
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) logRequests(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()
	if err != nil {
		// Render the error now so the logged status is the one the client gets.
		if herr := s.handleError(ctx, err); herr != nil {
			_ = ctx.SendStatus(fiber.StatusInternalServerError)
		}
	}
	s.log.WithFields(logrus.Fields{
		"method":  ctx.Method(),
		"path":    ctx.Path(),
		"status":  ctx.Response().StatusCode(),
		"latency": time.Since(start),
	}).Debug("request")
	return nil
}

// identify puts the caller into Locals. Pages read the session cookie, the API reads a bearer token.
func (s *Server) identify(ctx *fiber.Ctx) error {
	token := ctx.Cookies(authservice.TokenCookie)
	if isAPI(ctx) {
		token = bearerToken(ctx)
	}
	if token == "" {
		return ctx.Next()
	}
	user, err := s.auth.Authenticate(ctx.UserContext(), token)
	if err != nil {
		if !errors.Is(err, authservice.ErrNotAuthorized) {
			return err
		}
		if !isAPI(ctx) {
			clearSession(ctx)
		}
		return ctx.Next()
	}
	ctx.Locals(userKey, user)
	return ctx.Next()
}

func clearSession(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     authservice.TokenCookie,
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func bearerToken(ctx *fiber.Ctx) string {
	const prefix = "Bearer "
	header := ctx.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func requireUser(ctx *fiber.Ctx) error {
	if !currentUser(ctx).Identity().Authenticated() {
		return domain.ErrUnauthenticated
	}
	return ctx.Next()
}

func dashboardFor(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return webpath.AdminDashboard
	case domain.RolePlayer:
		return webpath.PlayerDashboard
	default:
		return webpath.Signin
	}
}

func formatDate(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon, 02 Jan 2006")
}
