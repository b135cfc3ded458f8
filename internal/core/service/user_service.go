package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/travelhub/booking-system/internal/api/metrics"
	"github.com/travelhub/booking-system/internal/core/domain"
	"github.com/travelhub/booking-system/internal/core/ports"
)

// UserService implements registration, login and profile lookup.
type UserService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register validates the candidate, hashes its password and persists a new
// identity. The duplicate check is delegated to the repository so the
// unique-key guarantee is atomic rather than load-then-append.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
	if missing := missingFields(input); len(missing) > 0 {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.NewValidationError(missing...)
	}

	role := domain.Role(input.Role)
	if !role.Valid() {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	identity := &domain.Identity{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         role,
	}

	created, err := s.repo.Create(ctx, identity)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login authenticates credentials and returns a signed access token on
// success. Unknown email and wrong password collapse into the same
// invalid-credentials failure so callers cannot probe for accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.Identity, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrMissingCredentials
	}

	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(identity)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", identity.Email).Msg("user logged in")
	return token, identity, nil
}

// Profile returns the public view of the identity behind email.
func (s *UserService) Profile(ctx context.Context, email string) (*ports.Profile, error) {
	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &ports.Profile{Email: identity.Email, Role: string(identity.Role)}, nil
}

func (s *UserService) generateToken(identity *domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  identity.Email,
		"role": string(identity.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func missingFields(input ports.RegisterInput) []string {
	var missing []string
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Role == "" {
		missing = append(missing, "role")
	}
	return missing
}
