package ports

import (
	"context"

	"github.com/travelhub/booking-system/internal/core/domain"
)

// CreateDestinationInput carries the fields of a catalog create request
// together with the caller's verified claims.
type CreateDestinationInput struct {
	Name        string
	Description string
	Location    string
	Claims      domain.ClaimSet
}

type DestinationService interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Create(ctx context.Context, input CreateDestinationInput) (*domain.Destination, error)
	Delete(ctx context.Context, id string, claims domain.ClaimSet) error
}
