package ports

import (
	"context"
	"time"

	"github.com/travelhub/booking-system/internal/core/domain"
)

// CreateBookingInput carries the fields of a booking request together
// with the caller's verified claims; the booking is made on behalf of
// the claim subject.
type CreateBookingInput struct {
	DestinationID string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Claims        domain.ClaimSet
}

type BookingService interface {
	ListAll(ctx context.Context, claims domain.ClaimSet) ([]domain.Booking, error)
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
}
