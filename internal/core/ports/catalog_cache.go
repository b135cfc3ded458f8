package ports

import (
	"context"

	"github.com/travelhub/booking-system/internal/core/domain"
)

// CatalogCache is a read-through cache for the destination list.
// Get reports (nil, false, nil) on a miss. Implementations own TTLs.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Destination, bool, error)
	Set(ctx context.Context, destinations []domain.Destination) error
	Invalidate(ctx context.Context) error
}
