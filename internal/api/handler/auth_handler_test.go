package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/travelhub/booking-system/internal/api/middleware"
	"github.com/travelhub/booking-system/internal/core/domain"
	"github.com/travelhub/booking-system/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.Identity, error)
	profileFn  func(ctx context.Context, email string) (*ports.Profile, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, *domain.Identity, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) Profile(ctx context.Context, email string) (*ports.Profile, error) {
	return s.profileFn(ctx, email)
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
			if input.Email != "a@x.com" || input.Role != "User" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Identity{Email: input.Email, Name: input.Name, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/register", `{"email":"a@x.com","password":"p","name":"A","role":"User"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "a@x.com" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must not appear in responses")
	}
}

func TestAuthHandler_Register_ServiceErrorPropagates(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/register", `{"email":"a@x.com"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/register", "not-json")
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Identity, error) {
			if email != "a@x.com" || password != "p" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.Identity{Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/login", `{"email":"a@x.com","password":"p"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Identity, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/login", `{"email":"a@x.com","password":"bad"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	stub := &stubUserService{
		profileFn: func(ctx context.Context, email string) (*ports.Profile, error) {
			if email != "a@x.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return &ports.Profile{Email: email, Role: "User"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/profile", "")
	c.Set(middleware.ContextKeyEmail, "a@x.com")
	c.Set(middleware.ContextKeyRole, "User")

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"email":"a@x.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Profile_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubUserService{})

	c, _ := newJSONContext(t, http.MethodGet, "/profile", "")
	err := h.Profile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Validate(t *testing.T) {
	h := NewAuthHandler(&stubUserService{})

	c, rec := newJSONContext(t, http.MethodGet, "/auth/validate", "")
	if err := h.Validate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Admin access granted") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
