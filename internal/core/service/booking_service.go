package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/travelhub/booking-system/internal/api/metrics"
	"github.com/travelhub/booking-system/internal/core/domain"
	"github.com/travelhub/booking-system/internal/core/ports"
)

type BookingService struct {
	repo         ports.BookingRepository
	destinations ports.DestinationRepository
	logger       zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, destinations ports.DestinationRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, destinations: destinations, logger: logger}
}

// ListAll returns every booking in the system. Admin only.
func (s *BookingService) ListAll(ctx context.Context, claims domain.ClaimSet) ([]domain.Booking, error) {
	if d := domain.Authorize(claims, domain.RoleAdmin); !d.Allowed {
		metrics.AccessDeniedTotal.WithLabelValues("list_bookings").Inc()
		return nil, domain.ErrAccessDenied
	}
	return s.repo.FindAll(ctx)
}

// Create books a trip for the claim subject. The destination must exist.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if input.Claims.Subject == "" {
		return nil, domain.ErrUnauthenticated
	}
	if input.DestinationID == "" {
		return nil, domain.NewValidationError("destination_id")
	}

	destination, err := s.destinations.FindByID(ctx, input.DestinationID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:              generateBookingID(),
		UserEmail:       input.Claims.Subject,
		Destination:     destination.Name,
		BookingDateTime: time.Now().UTC(),
		DepartureTime:   input.DepartureTime,
		ArrivalTime:     input.ArrivalTime,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Str("user_email", booking.UserEmail).Msg("failed to create booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.logger.Info().Str("id", booking.ID).Str("user_email", booking.UserEmail).Str("destination", booking.Destination).Msg("booking created")
	return booking, nil
}

// generateBookingID returns a unique booking reference in the format BKG-XXXXXXXX.
func generateBookingID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("BKG-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("BKG-%08X", b)
}
