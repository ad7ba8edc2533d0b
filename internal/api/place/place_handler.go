package place

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/karthikn/pondy-guide/internal/api"
	"github.com/karthikn/pondy-guide/internal/types"
)

type Handler struct {
	placeService Service
	logger       *slog.Logger
}

func NewHandler(placeService Service, logger *slog.Logger) *Handler {
	return &Handler{
		placeService: placeService,
		logger:       logger,
	}
}

// GetPlaces returns the full catalog.
func (h *Handler) GetPlaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetPlaces").Start(r.Context(), "GetPlaces", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetPlaces"))
	l.DebugContext(ctx, "Get places handler invoked")

	places, err := h.placeService.GetPlaces(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch places", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch places")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, places)
}

// GetPlacesByCategory returns the catalog entries for one category.
func (h *Handler) GetPlacesByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetPlacesByCategory").Start(r.Context(), "GetPlacesByCategory", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places/category/{category}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetPlacesByCategory"))

	category := types.PlaceCategory(chi.URLParam(r, "category"))
	if !isKnownCategory(category) {
		l.WarnContext(ctx, "Unknown place category requested", slog.String("category", string(category)))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Unknown place category")
		return
	}
	l = l.With(slog.String("category", string(category)))

	places, err := h.placeService.GetPlacesByCategory(ctx, category)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch places by category", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch places")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, places)
}

// GetPlace returns a single catalog entry by id.
func (h *Handler) GetPlace(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetPlace").Start(r.Context(), "GetPlace", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places/{id}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetPlace"))

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		l.ErrorContext(ctx, "Invalid place ID format", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid place ID format")
		return
	}

	place, err := h.placeService.GetPlaceByID(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch place", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch place")
		return
	}
	if place == nil {
		api.ErrorResponse(w, r, http.StatusNotFound, "Place not found")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, place)
}

func isKnownCategory(c types.PlaceCategory) bool {
	switch c {
	case types.CategoryAdventure, types.CategoryNature, types.CategoryNightlife,
		types.CategoryRestaurants, types.CategoryEmergency, types.CategoryHeritage,
		types.CategorySpiritual, types.CategoryShopping:
		return true
	}
	return false
}
