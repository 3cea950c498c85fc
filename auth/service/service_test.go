package service

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/goserg/sportscheduler/auth/users"
	"github.com/goserg/sportscheduler/internal/domain"
)

type memStorage struct {
	mu      sync.Mutex
	users   map[uuid.UUID]users.User
	secrets map[uuid.UUID]users.Secret
}

func newMemStorage() *memStorage {
	return &memStorage{
		users:   make(map[uuid.UUID]users.User),
		secrets: make(map[uuid.UUID]users.Secret),
	}
}

func (m *memStorage) CreateUser(_ context.Context, user users.User, secret users.Secret) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.ErrConflict
		}
	}
	m.users[user.ID] = user
	m.secrets[user.ID] = secret
	return nil
}

func (m *memStorage) GetUser(_ context.Context, id uuid.UUID) (users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return users.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (m *memStorage) GetUserByEmail(_ context.Context, email string) (users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, domain.ErrNotFound
}

func (m *memStorage) GetUserSecret(_ context.Context, id uuid.UUID) (users.Secret, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.secrets[id]
	if !ok {
		return users.Secret{}, domain.ErrNotFound
	}
	return s, nil
}

func testConfig() Config {
	return Config{
		Token:          "secret",
		Expiration:     time.Hour,
		PasswordPepper: "pepper",
		BcryptCost:     bcrypt.MinCost,
	}
}

func newTestService(t *testing.T, cfg Config) (*Service, *memStorage) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	st := newMemStorage()
	s, err := New(context.Background(), l, cfg, st)
	require.NoError(t, err)
	return s, st
}

func signUpRequest() SignUpRequest {
	return SignUpRequest{
		FirstName: "test",
		LastName:  "user a",
		Email:     "UserA@Test.com",
		Password:  "helloworld",
		Role:      domain.RolePlayer,
	}
}

func TestNew_EmptyToken(t *testing.T) {
	cfg := testConfig()
	cfg.Token = ""
	_, err := New(context.Background(), logrus.New(), cfg, newMemStorage())
	assert.Error(t, err)
}

func TestNew_RootAdmin(t *testing.T) {
	cfg := testConfig()
	cfg.RootEmail = "root@test.com"
	cfg.RootPassword = "rootpassword"
	s, st := newTestService(t, cfg)

	root, err := st.GetUserByEmail(context.Background(), "root@test.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, root.Role)

	user, err := s.Login(context.Background(), "root@test.com", "rootpassword")
	require.NoError(t, err)
	assert.Equal(t, root.ID, user.ID)

	// A second start must not fail on the existing root.
	_, err = New(context.Background(), logrus.New(), cfg, st)
	assert.NoError(t, err)
}

func TestNew_RootEmailTakenByPlayer(t *testing.T) {
	s, st := newTestService(t, testConfig())
	req := signUpRequest()
	req.Email = "root@test.com"
	_, err := s.SignUp(context.Background(), req)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.RootEmail = "Root@Test.com"
	cfg.RootPassword = "rootpassword"
	_, err = New(context.Background(), logrus.New(), cfg, st)
	assert.ErrorContains(t, err, "player account")
}

func TestSignUp(t *testing.T) {
	s, st := newTestService(t, testConfig())
	user, err := s.SignUp(context.Background(), signUpRequest())
	require.NoError(t, err)
	assert.Equal(t, "Test", user.FirstName)
	assert.Equal(t, "User A", user.LastName)
	assert.Equal(t, "usera@test.com", user.Email)
	assert.Equal(t, domain.RolePlayer, user.Role)

	secret, err := st.GetUserSecret(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotContains(t, string(secret.PasswordHash), "helloworld")
}

func TestSignUp_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *SignUpRequest)
	}{
		{name: "no first name", modify: func(r *SignUpRequest) { r.FirstName = " " }},
		{name: "no last name", modify: func(r *SignUpRequest) { r.LastName = "" }},
		{name: "no email", modify: func(r *SignUpRequest) { r.Email = "" }},
		{name: "bad email", modify: func(r *SignUpRequest) { r.Email = "not-an-email" }},
		{name: "short password", modify: func(r *SignUpRequest) { r.Password = "abc" }},
		{name: "no role", modify: func(r *SignUpRequest) { r.Role = 0 }},
		{name: "password longer than bcrypt input", modify: func(r *SignUpRequest) { r.Password = strings.Repeat("p", 80) }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(t, testConfig())
			req := signUpRequest()
			tt.modify(&req)
			_, err := s.SignUp(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.NotErrorIs(t, err, bcrypt.ErrPasswordTooLong)
		})
	}
}

func TestSignUp_PepperCountsTowardsPasswordLimit(t *testing.T) {
	cfg := testConfig()
	cfg.PasswordPepper = strings.Repeat("x", 60)
	s, _ := newTestService(t, cfg)

	req := signUpRequest()
	req.Password = strings.Repeat("p", 13)
	_, err := s.SignUp(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "at most 12 bytes")

	req.Password = strings.Repeat("p", 12)
	_, err = s.SignUp(context.Background(), req)
	require.NoError(t, err)
	_, err = s.Login(context.Background(), req.Email, req.Password)
	assert.NoError(t, err)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	s, _ := newTestService(t, testConfig())
	_, err := s.SignUp(context.Background(), signUpRequest())
	require.NoError(t, err)

	req := signUpRequest()
	req.Email = "usera@test.com"
	_, err = s.SignUp(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogin(t *testing.T) {
	s, _ := newTestService(t, testConfig())
	created, err := s.SignUp(context.Background(), signUpRequest())
	require.NoError(t, err)

	user, err := s.Login(context.Background(), " usera@test.com", "helloworld")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = s.Login(context.Background(), "usera@test.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(context.Background(), "nobody@test.com", "helloworld")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	s, _ := newTestService(t, testConfig())
	created, err := s.SignUp(context.Background(), signUpRequest())
	require.NoError(t, err)

	cookie, err := s.GenerateJWTCookie(created.ID)
	require.NoError(t, err)
	assert.Equal(t, TokenCookie, cookie.Name)
	assert.True(t, cookie.HTTPOnly)

	user, err := s.Authenticate(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, domain.Identity{ID: created.ID, Role: domain.RolePlayer}, user.Identity())
}

func TestAuthenticate_Rejects(t *testing.T) {
	s, _ := newTestService(t, testConfig())
	created, err := s.SignUp(context.Background(), signUpRequest())
	require.NoError(t, err)

	other := testConfig()
	other.Token = "another-secret"
	foreign, _ := newTestService(t, other)
	foreignToken, _, err := foreign.GenerateToken(created.ID)
	require.NoError(t, err)

	unknownUserToken, _, err := s.GenerateToken(uuid.New())
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		Subject:   created.ID.String(),
	})
	expiredToken, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":        "",
		"garbage":      "not.a.token",
		"wrong secret": foreignToken,
		"unknown user": unknownUserToken,
		"expired":      expiredToken,
	} {
		_, err := s.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, ErrNotAuthorized, name)
	}
}

func TestAuthenticate_CachesUser(t *testing.T) {
	s, st := newTestService(t, testConfig())
	created, err := s.SignUp(context.Background(), signUpRequest())
	require.NoError(t, err)
	token, _, err := s.GenerateToken(created.ID)
	require.NoError(t, err)

	_, err = s.Authenticate(context.Background(), token)
	require.NoError(t, err)

	st.mu.Lock()
	delete(st.users, created.ID)
	st.mu.Unlock()

	user, err := s.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, created.Email, user.Email)
}
