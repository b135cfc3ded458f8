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

type DestinationService struct {
	repo   ports.DestinationRepository
	cache  ports.CatalogCache
	logger zerolog.Logger
}

// NewDestinationService builds the catalog service. cache may be nil, in
// which case every List hits the repository.
func NewDestinationService(repo ports.DestinationRepository, cache ports.CatalogCache, logger zerolog.Logger) *DestinationService {
	return &DestinationService{repo: repo, cache: cache, logger: logger}
}

// List returns the whole catalog, serving from the cache when possible.
// Cache failures are logged and degrade to a repository read.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache read failed")
		} else if ok {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	destinations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, destinations); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return destinations, nil
}

// Create adds a destination to the catalog. Admin only.
func (s *DestinationService) Create(ctx context.Context, input ports.CreateDestinationInput) (*domain.Destination, error) {
	if d := domain.Authorize(input.Claims, domain.RoleAdmin); !d.Allowed {
		metrics.AccessDeniedTotal.WithLabelValues("create_destination").Inc()
		return nil, domain.ErrAccessDenied
	}
	if input.Name == "" {
		return nil, domain.NewValidationError("name")
	}

	destination := &domain.Destination{
		ID:          generateDestinationID(),
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
	}

	if err := s.repo.Create(ctx, destination); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create destination")
		return nil, err
	}

	s.invalidateCatalog(ctx)
	s.logger.Info().Str("id", destination.ID).Str("name", destination.Name).Msg("destination created")
	return destination, nil
}

// Delete removes a destination by ID. Admin only.
func (s *DestinationService) Delete(ctx context.Context, id string, claims domain.ClaimSet) error {
	if d := domain.Authorize(claims, domain.RoleAdmin); !d.Allowed {
		metrics.AccessDeniedTotal.WithLabelValues("delete_destination").Inc()
		return domain.ErrAccessDenied
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCatalog(ctx)
	s.logger.Info().Str("id", id).Msg("destination deleted")
	return nil
}

func (s *DestinationService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

// generateDestinationID returns a unique catalog ID in the format DST-XXXXXXXX.
func generateDestinationID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("DST-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("DST-%08X", b)
}
