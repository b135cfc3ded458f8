package ports

import (
	"context"

	"github.com/travelhub/booking-system/internal/core/domain"
)

// UserRepository defines the persistence contract for identities.
// Email is the unique key; Create must fail with domain.ErrDuplicateEmail
// when the key already exists (atomic check, not load-then-append).
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
}
