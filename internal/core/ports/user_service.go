package ports

import (
	"context"

	"github.com/travelhub/booking-system/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// Profile is the public view of an identity.
type Profile struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Identity, error)
	Login(ctx context.Context, email, password string) (string, *domain.Identity, error)
	Profile(ctx context.Context, email string) (*Profile, error)
}
