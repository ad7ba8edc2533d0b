package itinerary

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/karthikn/pondy-guide/app/observability/metrics"
	"github.com/karthikn/pondy-guide/internal/ai"
	"github.com/karthikn/pondy-guide/internal/api/place"
	"github.com/karthikn/pondy-guide/internal/types"
)

const systemPrompt = "You are a Puducherry travel planner. Respond with JSON only, no markdown, no prose outside the JSON."

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for itinerary generation.
type Service interface {
	GenerateItinerary(ctx context.Context, userID uuid.UUID, draft types.TripDraft) ([]types.DailyItinerary, error)
	GetItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (*types.SavedItinerary, error)
	GetItineraries(ctx context.Context, userID uuid.UUID) ([]types.SavedItinerary, error)
	ProviderStatus(ctx context.Context) ProviderStatus
}

// ProviderStatus reports the selected AI backend and its reachability.
type ProviderStatus struct {
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	Reachable bool   `json:"reachable"`
}

type ServiceImpl struct {
	logger              *slog.Logger
	provider            ai.Provider
	placeRepository     place.Repository
	itineraryRepository Repository
	appMetrics          *metrics.AppMetrics
	cache               *cache.Cache
}

func NewServiceImpl(provider ai.Provider, placeRepository place.Repository, itineraryRepository Repository, appMetrics *metrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:              logger,
		provider:            provider,
		placeRepository:     placeRepository,
		itineraryRepository: itineraryRepository,
		appMetrics:          appMetrics,
		cache:               cache.New(1*time.Hour, 10*time.Minute),
	}
}

// GenerateItinerary builds the prompt, calls the selected provider in JSON
// mode, validates the result and persists it. A repeated draft within the
// cache window is served without a provider call.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, userID uuid.UUID, draft types.TripDraft) ([]types.DailyItinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("trip.type", string(draft.TripType)),
		attribute.String("ai.provider", s.provider.Name()),
	))
	defer span.End()

	start, err := time.Parse(dateLayout, draft.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", draft.StartDate, err)
	}
	end, err := time.Parse(dateLayout, draft.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", draft.EndDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", draft.EndDate, draft.StartDate)
	}
	days := TripDays(start, end)
	span.SetAttributes(attribute.Int("trip.days", days))

	cacheKey := draftCacheKey(draft)
	if cached, found := s.cache.Get(cacheKey); found {
		span.AddEvent("Itinerary served from cache.")
		s.logger.DebugContext(ctx, "itinerary cache hit", slog.String("key", cacheKey))
		return cached.([]types.DailyItinerary), nil
	}

	places, err := s.placeRepository.GetPlaces(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to load place catalog: %w", err)
	}

	prompt := buildPrompt(draft, days, places)
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	began := time.Now()
	raw, err := s.provider.GenerateJSON(ctx, prompt, systemPrompt)
	latency := time.Since(began)

	s.appMetrics.ItineraryRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", s.provider.Name()),
		attribute.Bool("error", err != nil),
	))
	s.appMetrics.ItineraryDurationSeconds.Record(ctx, latency.Seconds())

	if err != nil {
		s.appMetrics.ProviderErrorsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("provider", s.provider.Name()),
		))
		s.logger.ErrorContext(ctx, "provider call failed",
			slog.String("provider", s.provider.Name()), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider call failed")
		return nil, err
	}

	parsed, err := parseItinerary(raw)
	if err != nil {
		// The raw model output goes to logs only, never to the caller.
		s.logger.ErrorContext(ctx, "itinerary response failed validation",
			slog.Any("error", err), slog.String("raw_response", raw))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Response validation failed")
		return nil, err
	}

	saved := types.SavedItinerary{
		UserID:       userID,
		TripType:     draft.TripType,
		StartDate:    draft.StartDate,
		EndDate:      draft.EndDate,
		Days:         parsed,
		Provider:     s.provider.Name(),
		ModelUsed:    s.provider.Model(),
		LatencyMs:    int(latency.Milliseconds()),
		Prompt:       prompt,
		ResponseText: raw,
	}
	if _, err := s.itineraryRepository.SaveItinerary(ctx, saved); err != nil {
		// Persistence failure does not void a usable itinerary.
		s.logger.WarnContext(ctx, "failed to persist generated itinerary", slog.Any("error", err))
		span.RecordError(err)
	}

	s.cache.Set(cacheKey, parsed, cache.DefaultExpiration)

	span.SetAttributes(attribute.Int("itinerary.days", len(parsed)))
	span.SetStatus(codes.Ok, "Itinerary generated")
	return parsed, nil
}

func (s *ServiceImpl) GetItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (*types.SavedItinerary, error) {
	itinerary, err := s.itineraryRepository.GetItinerary(ctx, userID, itineraryID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to get itinerary", slog.Any("error", err))
		return nil, err
	}
	return itinerary, nil
}

func (s *ServiceImpl) GetItineraries(ctx context.Context, userID uuid.UUID) ([]types.SavedItinerary, error) {
	itineraries, err := s.itineraryRepository.GetItineraries(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to get itineraries", slog.Any("error", err))
		return nil, err
	}
	return itineraries, nil
}

func (s *ServiceImpl) ProviderStatus(ctx context.Context) ProviderStatus {
	return ProviderStatus{
		Provider:  s.provider.Name(),
		Model:     s.provider.Model(),
		Reachable: s.provider.CheckConnection(ctx),
	}
}

func draftCacheKey(draft types.TripDraft) string {
	b, _ := json.Marshal(draft)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
