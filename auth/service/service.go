package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/goserg/sportscheduler/auth/storage"
	"github.com/goserg/sportscheduler/auth/users"
	"github.com/goserg/sportscheduler/internal/cache/mem"
	"github.com/goserg/sportscheduler/internal/domain"
	"github.com/goserg/sportscheduler/internal/normalize"
)

const TokenCookie = "token"

const (
	minPasswordLength = 6
	// bcrypt rejects longer input; the pepper counts towards it.
	maxHashedBytes = 72
)

var (
	ErrNotAuthorized      = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

type Service struct {
	storage storage.AuthStorage
	users   *mem.Cache
	cfg     Config
	log     *logrus.Entry
}

// New creates the service and makes sure the root admin from the config exists.
func New(ctx context.Context, l *logrus.Logger, cfg Config, storage storage.AuthStorage) (*Service, error) {
	if cfg.Token == "" {
		return nil, errors.New("auth token secret is empty")
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	s := Service{
		cfg:     cfg,
		storage: storage,
		users:   mem.New(),
		log:     l.WithField("from", "auth"),
	}
	if cfg.RootEmail == "" || cfg.RootPassword == "" {
		return &s, nil
	}
	existing, err := s.storage.GetUserByEmail(ctx, normalize.Email(cfg.RootEmail))
	if err == nil {
		if existing.Role != domain.RoleAdmin {
			return nil, fmt.Errorf("root email %s belongs to a %s account", cfg.RootEmail, existing.Role)
		}
		return &s, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	_, err = s.SignUp(ctx, SignUpRequest{
		FirstName: "Root",
		LastName:  "Admin",
		Email:     cfg.RootEmail,
		Password:  cfg.RootPassword,
		Role:      domain.RoleAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("create root admin: %w", err)
	}
	s.log.WithField("email", cfg.RootEmail).Info("root admin created")
	return &s, nil
}

type SignUpRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      domain.Role
}

// Validate reports every problem with the request; each joined error wraps domain.ErrValidation.
func (r SignUpRequest) Validate() error {
	var err error
	if r.FirstName == "" {
		err = errors.Join(err, fmt.Errorf("%w: first name is required", domain.ErrValidation))
	}
	if r.LastName == "" {
		err = errors.Join(err, fmt.Errorf("%w: last name is required", domain.ErrValidation))
	}
	if r.Email == "" {
		err = errors.Join(err, fmt.Errorf("%w: email is required", domain.ErrValidation))
	} else if _, perr := mail.ParseAddress(r.Email); perr != nil {
		err = errors.Join(err, fmt.Errorf("%w: email is malformed", domain.ErrValidation))
	}
	if len(r.Password) < minPasswordLength {
		err = errors.Join(err, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength))
	}
	if !r.Role.Valid() {
		err = errors.Join(err, fmt.Errorf("%w: role must be admin or player", domain.ErrValidation))
	}
	return err
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (users.User, error) {
	req.FirstName = normalize.Name(req.FirstName)
	req.LastName = normalize.Name(req.LastName)
	req.Email = normalize.Email(req.Email)
	err := req.Validate()
	if len(s.cfg.PasswordPepper)+len(req.Password) > maxHashedBytes {
		limit := max(maxHashedBytes-len(s.cfg.PasswordPepper), 0)
		err = errors.Join(err, fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, limit))
	}
	if err != nil {
		return users.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.PasswordPepper+req.Password), s.cfg.BcryptCost)
	if err != nil {
		return users.User{}, err
	}
	user := users.User{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Role:         req.Role,
		RegisteredAt: time.Now().UTC(),
	}
	err = s.storage.CreateUser(ctx, user, users.Secret{PasswordHash: hash})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return users.User{}, fmt.Errorf("%w: %w", domain.ErrConflict, ErrEmailTaken)
		}
		return users.User{}, err
	}
	return user, nil
}

// Login fails with ErrInvalidCredentials for an unknown email and for a wrong password alike.
func (s *Service) Login(ctx context.Context, email string, password string) (users.User, error) {
	user, err := s.storage.GetUserByEmail(ctx, normalize.Email(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return users.User{}, ErrInvalidCredentials
		}
		return users.User{}, err
	}
	secret, err := s.storage.GetUserSecret(ctx, user.ID)
	if err != nil {
		return users.User{}, err
	}
	err = bcrypt.CompareHashAndPassword(secret.PasswordHash, []byte(s.cfg.PasswordPepper+password))
	if err != nil {
		s.log.WithField("user_id", user.ID).Debug("wrong password")
		return users.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GenerateToken(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expirationTime := now.Add(s.cfg.Expiration)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  now.Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expirationTime, nil
}

func (s *Service) GenerateJWTCookie(userID uuid.UUID) (*fiber.Cookie, error) {
	tokenString, expirationTime, err := s.GenerateToken(userID)
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     TokenCookie,
		Value:    tokenString,
		Path:     "/",
		Expires:  expirationTime,
		Secure:   s.cfg.SecureCookie,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}, nil
}

// Authenticate resolves a session token into its user. Every failure is ErrNotAuthorized
// except storage errors, which are returned as is.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (users.User, error) {
	if tokenString == "" {
		return users.User{}, ErrNotAuthorized
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.cfg.Token), nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			s.log.Debug("token expired")
		}
		return users.User{}, ErrNotAuthorized
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return users.User{}, ErrNotAuthorized
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return users.User{}, ErrNotAuthorized
	}
	if user, ok := s.users.Get(id); ok {
		return user, nil
	}
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return users.User{}, ErrNotAuthorized
		}
		return users.User{}, err
	}
	s.users.Put(user)
	return user, nil
}
