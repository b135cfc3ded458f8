package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/travelhub/booking-system/internal/core/domain"
	"github.com/travelhub/booking-system/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.Identity
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.Identity)}
}

func cloneIdentity(i *domain.Identity) *domain.Identity {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, identity *domain.Identity) (*domain.Identity, error) {
	if _, exists := r.users[identity.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	r.users[identity.Email] = cloneIdentity(identity)
	return cloneIdentity(identity), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	if u, ok := r.users[email]; ok {
		return cloneIdentity(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func newUserService(repo ports.UserRepository) *UserService {
	return NewUserService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestUserService_Register_Success(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	identity, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "a@x.com", Password: "p", Name: "A", Role: "User",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if identity.PasswordHash == "p" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte("p")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if identity.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Role: "User"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 || ve.Fields[0] != "password" || ve.Fields[1] != "name" {
		t.Fatalf("unexpected missing fields: %v", ve.Fields)
	}
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "a@x.com", Password: "p", Name: "A", Role: "Manager",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	input := ports.RegisterInput{Email: "a@x.com", Password: "p", Name: "A", Role: "User"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "carol@x.com", Password: "s3cret", Name: "Carol", Role: "Admin",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, identity, err := svc.Login(context.Background(), "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if identity == nil || identity.Email != "carol@x.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "carol@x.com" {
		t.Fatalf("expected subject carol@x.com, got %v", claims["sub"])
	}
	if claims["role"] != string(domain.RoleAdmin) {
		t.Fatalf("expected role Admin, got %v", claims["role"])
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Email: "dave@x.com", Password: "goodpass", Name: "Dave", Role: "User",
	})
	if _, _, err := svc.Login(context.Background(), "dave@x.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	// unknown email must be indistinguishable from a wrong password
	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "p"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_MissingCredentials(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", "p"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", ""); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestUserService_Profile(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Email: "eve@x.com", Password: "p", Name: "Eve", Role: "User",
	})

	profile, err := svc.Profile(context.Background(), "eve@x.com")
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if profile.Email != "eve@x.com" || profile.Role != "User" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	if _, err := svc.Profile(context.Background(), "nobody@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := domain.NewValidationError("email", "password")
	if !strings.Contains(err.Error(), "email, password") {
		t.Fatalf("expected fields in message, got %q", err.Error())
	}
}
