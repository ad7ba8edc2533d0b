package place

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/karthikn/pondy-guide/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for catalog operations.
type Service interface {
	GetPlaces(ctx context.Context) ([]types.Place, error)
	GetPlacesByCategory(ctx context.Context, category types.PlaceCategory) ([]types.Place, error)
	GetPlaceByID(ctx context.Context, id uuid.UUID) (*types.Place, error)
	SeedCatalog(ctx context.Context) error
}

type ServiceImpl struct {
	logger          *slog.Logger
	placeRepository Repository
}

func NewServiceImpl(placeRepository Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:          logger,
		placeRepository: placeRepository,
	}
}

func (s *ServiceImpl) GetPlaces(ctx context.Context) ([]types.Place, error) {
	places, err := s.placeRepository.GetPlaces(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to get places", slog.Any("error", err))
		return nil, err
	}
	return places, nil
}

func (s *ServiceImpl) GetPlacesByCategory(ctx context.Context, category types.PlaceCategory) ([]types.Place, error) {
	places, err := s.placeRepository.GetPlacesByCategory(ctx, category)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to get places by category", slog.Any("error", err))
		return nil, err
	}
	return places, nil
}

func (s *ServiceImpl) GetPlaceByID(ctx context.Context, id uuid.UUID) (*types.Place, error) {
	place, err := s.placeRepository.GetPlaceByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to get place by ID", slog.Any("error", err))
		return nil, err
	}
	return place, nil
}

// SeedCatalog inserts the static catalog when the places table is empty.
// Safe to call on every startup.
func (s *ServiceImpl) SeedCatalog(ctx context.Context) error {
	ctx, span := otel.Tracer("PlaceService").Start(ctx, "SeedCatalog")
	defer span.End()

	count, err := s.placeRepository.CountPlaces(ctx)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to check catalog state: %w", err)
	}
	if count > 0 {
		span.AddEvent("Catalog already seeded, skipping.")
		s.logger.DebugContext(ctx, "place catalog already seeded", slog.Int("count", count))
		return nil
	}

	catalog := Catalog()
	if err := s.placeRepository.InsertPlaces(ctx, catalog); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to seed place catalog: %w", err)
	}

	span.SetAttributes(attribute.Int("places.seeded", len(catalog)))
	span.SetStatus(codes.Ok, "Catalog seeded")
	s.logger.InfoContext(ctx, "seeded place catalog", slog.Int("places", len(catalog)))
	return nil
}
