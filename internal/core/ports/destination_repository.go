package ports

import (
	"context"

	"github.com/travelhub/booking-system/internal/core/domain"
)

// DestinationRepository defines the persistence contract for the catalog.
type DestinationRepository interface {
	FindAll(ctx context.Context) ([]domain.Destination, error)
	FindByID(ctx context.Context, id string) (*domain.Destination, error)
	Create(ctx context.Context, destination *domain.Destination) error
	Delete(ctx context.Context, id string) error
}
