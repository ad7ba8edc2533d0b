package transit

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/karthikn/pondy-guide/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GetItems(ctx context.Context) ([]types.TransitItem, error)
	GetItemsByCategory(ctx context.Context, category types.TransitCategory) ([]types.TransitItem, error)
	Seed(ctx context.Context) error
}

type ServiceImpl struct {
	logger            *slog.Logger
	transitRepository Repository
}

func NewServiceImpl(transitRepository Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:            logger,
		transitRepository: transitRepository,
	}
}

func (s *ServiceImpl) GetItems(ctx context.Context) ([]types.TransitItem, error) {
	items, err := s.transitRepository.GetItems(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to get transit items", slog.Any("error", err))
		return nil, err
	}
	return items, nil
}

func (s *ServiceImpl) GetItemsByCategory(ctx context.Context, category types.TransitCategory) ([]types.TransitItem, error) {
	items, err := s.transitRepository.GetItemsByCategory(ctx, category)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to get transit items by category", slog.Any("error", err))
		return nil, err
	}
	return items, nil
}

// Seed loads the static reference data for every category that is still
// empty. Categories that already hold rows are left untouched, so repeat
// startups are no-ops.
func (s *ServiceImpl) Seed(ctx context.Context) error {
	ctx, span := otel.Tracer("TransitService").Start(ctx, "Seed")
	defer span.End()

	byCategory := make(map[types.TransitCategory][]types.TransitItem)
	for _, it := range SeedData() {
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}

	seeded := 0
	for _, category := range []types.TransitCategory{
		types.TransitRentals, types.TransitCabs, types.TransitBus, types.TransitTrain,
	} {
		count, err := s.transitRepository.CountByCategory(ctx, category)
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to check transit category %s: %w", category, err)
		}
		if count > 0 {
			continue
		}
		items := byCategory[category]
		if err := s.transitRepository.InsertItems(ctx, items); err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to seed transit category %s: %w", category, err)
		}
		seeded += len(items)
	}

	if seeded > 0 {
		s.logger.InfoContext(ctx, "seeded transit reference data", slog.Int("items", seeded))
	}
	span.SetAttributes(attribute.Int("transit.seeded", seeded))
	span.SetStatus(codes.Ok, "Transit seed complete")
	return nil
}
