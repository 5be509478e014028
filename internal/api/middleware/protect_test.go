package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/accounts-api/internal/core/domain"
	"github.com/moviehub/accounts-api/internal/core/ports"
	"github.com/moviehub/accounts-api/internal/core/service"
)

// stubUserFinder backs the guard's re-resolve step; the mutation methods
// are never reached from the middleware.
type stubUserFinder struct {
	user *domain.User
}

func (s *stubUserFinder) FindByID(_ context.Context, id string) (*domain.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubUserFinder) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, domain.ErrUserExists
}

func (s *stubUserFinder) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserFinder) AddToList(context.Context, string, ports.ListField, int) error {
	return nil
}

func (s *stubUserFinder) RemoveFromList(context.Context, string, ports.ListField, int) error {
	return nil
}

func (s *stubUserFinder) SetAvatar(context.Context, string, string) error {
	return nil
}

func (s *stubUserFinder) Search(context.Context, string, int) ([]domain.User, error) {
	return nil, nil
}

func guardStatus(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp["status"]
}

func runGuard(t *testing.T, token string, users ports.UserRepository, tokens ports.TokenService) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Protect(tokens, users)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestProtect_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService(service.JWTConfig{Secret: "secret", ExpiresIn: time.Hour})

	rec, called := runGuard(t, "", &stubUserFinder{}, tokens)

	if called {
		t.Fatalf("next called despite missing header")
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := guardStatus(t, rec); got != "You're not logged in! Please log in to gain access" {
		t.Fatalf("unexpected status message: %q", got)
	}
}

func TestProtect_MalformedHeader(t *testing.T) {
	tokens := service.NewTokenService(service.JWTConfig{Secret: "secret", ExpiresIn: time.Hour})

	rec, called := runGuard(t, "Token abc", &stubUserFinder{}, tokens)

	if called {
		t.Fatalf("next called despite malformed header")
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProtect_InvalidToken(t *testing.T) {
	tokens := service.NewTokenService(service.JWTConfig{Secret: "secret", ExpiresIn: time.Hour})

	rec, called := runGuard(t, "Bearer not-a-token", &stubUserFinder{}, tokens)

	if called {
		t.Fatalf("next called despite invalid token")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if got := guardStatus(t, rec); got != "Invalid token" {
		t.Fatalf("unexpected status message: %q", got)
	}
}

func TestProtect_UserGone(t *testing.T) {
	tokens := service.NewTokenService(service.JWTConfig{Secret: "secret", ExpiresIn: time.Hour})
	token, err := tokens.Issue("user_1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec, called := runGuard(t, "Bearer "+token, &stubUserFinder{}, tokens)

	if called {
		t.Fatalf("next called for deleted user")
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := guardStatus(t, rec); got != "User does not exist" {
		t.Fatalf("unexpected status message: %q", got)
	}
}

func TestProtect_StaleToken(t *testing.T) {
	tokens := service.NewTokenService(service.JWTConfig{Secret: "secret", ExpiresIn: time.Hour})
	token, err := tokens.Issue("user_1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Password changed after the token was issued: signature and expiry are
	// fine, but the guard must reject it.
	changed := time.Now().Add(time.Hour).UTC()
	users := &stubUserFinder{user: &domain.User{
		ID:                "user_1",
		Email:             "alice@example.com",
		PasswordChangedAt: &changed,
	}}

	rec, called := runGuard(t, "Bearer "+token, users, tokens)

	if called {
		t.Fatalf("next called for stale token")
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := guardStatus(t, rec); got != "Password has been recently changed" {
		t.Fatalf("unexpected status message: %q", got)
	}
}

func TestProtect_Admit(t *testing.T) {
	tokens := service.NewTokenService(service.JWTConfig{Secret: "secret", ExpiresIn: time.Hour})
	token, err := tokens.Issue("user_1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	user := &domain.User{ID: "user_1", Email: "alice@example.com"}
	users := &stubUserFinder{user: user}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Protect(tokens, users)(func(c echo.Context) error {
		called = true
		got, ok := c.Get(UserContextKey).(*domain.User)
		if !ok || got.ID != "user_1" {
			t.Fatalf("user not attached to context: %#v", c.Get(UserContextKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProtect_PasswordChangedBeforeIssue(t *testing.T) {
	tokens := service.NewTokenService(service.JWTConfig{Secret: "secret", ExpiresIn: time.Hour})

	changed := time.Now().Add(-time.Hour).UTC()
	users := &stubUserFinder{user: &domain.User{
		ID:                "user_1",
		PasswordChangedAt: &changed,
	}}

	token, err := tokens.Issue("user_1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec, called := runGuard(t, "Bearer "+token, users, tokens)

	if !called {
		t.Fatalf("fresh token rejected")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
