package ports

import (
	"context"

	"github.com/travelhub/booking-system/internal/core/domain"
)

// BookingRepository defines the persistence contract for bookings.
type BookingRepository interface {
	FindAll(ctx context.Context) ([]domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
}
