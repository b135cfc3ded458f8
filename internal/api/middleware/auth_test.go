package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "shared-secret-key"

func signToken(t *testing.T, secret string, role string, expiry time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "alice@x.com",
		"exp": expiry.Unix(),
	}
	if role != "" {
		claims["role"] = role
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, "Admin", time.Now().Add(time.Hour))
	rec, c, err := runAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c.Get(ContextKeyEmail) != "alice@x.com" {
		t.Fatalf("expected subject in context, got %v", c.Get(ContextKeyEmail))
	}
	if c.Get(ContextKeyRole) != "Admin" {
		t.Fatalf("expected role in context, got %v", c.Get(ContextKeyRole))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, err := runAuth(t, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != "missing authorization header" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Token abc", "abc"} {
		_, _, err := runAuth(t, header)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, "Admin", time.Now().Add(-time.Hour))
	_, _, err := runAuth(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != "token has expired" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", "Admin", time.Now().Add(time.Hour))
	_, _, err := runAuth(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_TokenWithoutRoleStillAuthenticates(t *testing.T) {
	// A missing role claim is an authorization concern, not an
	// authentication failure.
	token := signToken(t, testSecret, "", time.Now().Add(time.Hour))
	rec, c, err := runAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c.Get(ContextKeyRole) != "" {
		t.Fatalf("expected empty role, got %v", c.Get(ContextKeyRole))
	}
}
