package itinerary

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	appMiddleware "github.com/karthikn/pondy-guide/app/middleware"
	"github.com/karthikn/pondy-guide/internal/ai"
	"github.com/karthikn/pondy-guide/internal/api"
	"github.com/karthikn/pondy-guide/internal/types"
)

type Handler struct {
	itineraryService Service
	logger           *slog.Logger
}

func NewHandler(itineraryService Service, logger *slog.Logger) *Handler {
	return &Handler{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// GenerateItinerary produces a day-by-day plan for the posted trip draft.
func (h *Handler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GenerateItinerary").Start(r.Context(), "GenerateItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itinerary/generate"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateItinerary"))
	l.DebugContext(ctx, "Generate itinerary handler invoked")

	userIDStr, ok := appMiddleware.GetUserIDFromContext(ctx)
	if !ok {
		l.ErrorContext(ctx, "User ID not found in context")
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		l.ErrorContext(ctx, "Invalid user ID format", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid user ID format")
		return
	}
	span.SetAttributes(semconv.EnduserIDKey.String(userID.String()))
	l = l.With(slog.String("userID", userID.String()))

	var draft types.TripDraft
	if err := api.DecodeJSONBody(w, r, &draft); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if draft.StartDate == "" || draft.EndDate == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "start_date and end_date are required")
		return
	}
	if draft.Travelers <= 0 {
		api.ErrorResponse(w, r, http.StatusBadRequest, "travelers must be at least 1")
		return
	}

	days, err := h.itineraryService.GenerateItinerary(ctx, userID, draft)
	if err != nil {
		// Raw vendor errors and raw model output never reach the client.
		var formatErr *FormatError
		var providerErr *ai.ProviderError
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			l.ErrorContext(ctx, "Itinerary generation timed out", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusGatewayTimeout, "The AI request timed out. Please try again.")
		case errors.As(err, &formatErr):
			l.ErrorContext(ctx, "Itinerary validation failed", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadGateway, "The AI returned an unusable itinerary. Please try again.")
		case errors.As(err, &providerErr):
			l.ErrorContext(ctx, "AI provider failed", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadGateway, "The AI service is unavailable. Please try again.")
		default:
			l.ErrorContext(ctx, "Failed to generate itinerary", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadRequest, "Could not generate an itinerary for this trip")
		}
		return
	}

	l.InfoContext(ctx, "Itinerary generated successfully", slog.Int("days", len(days)))
	api.WriteJSONResponse(w, r, http.StatusOK, days)
}

// GetItineraries lists the user's saved itineraries, newest first.
func (h *Handler) GetItineraries(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetItineraries").Start(r.Context(), "GetItineraries", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itinerary"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetItineraries"))

	userID, ok := requireUserID(ctx, w, r, l)
	if !ok {
		return
	}

	itineraries, err := h.itineraryService.GetItineraries(ctx, userID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch itineraries", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch itineraries")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, itineraries)
}

// GetItinerary fetches one saved itinerary owned by the caller.
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetItinerary").Start(r.Context(), "GetItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itinerary/{id}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetItinerary"))

	userID, ok := requireUserID(ctx, w, r, l)
	if !ok {
		return
	}

	itineraryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		l.ErrorContext(ctx, "Invalid itinerary ID format", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid itinerary ID format")
		return
	}

	itinerary, err := h.itineraryService.GetItinerary(ctx, userID, itineraryID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch itinerary", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch itinerary")
		return
	}
	if itinerary == nil {
		api.ErrorResponse(w, r, http.StatusNotFound, "Itinerary not found")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, itinerary)
}

// GetProviderStatus reports which AI backend is configured and whether it is
// reachable right now.
func (h *Handler) GetProviderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetProviderStatus").Start(r.Context(), "GetProviderStatus", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/ai/status"),
	))
	defer span.End()

	status := h.itineraryService.ProviderStatus(ctx)
	api.WriteJSONResponse(w, r, http.StatusOK, status)
}

func requireUserID(ctx context.Context, w http.ResponseWriter, r *http.Request, l *slog.Logger) (uuid.UUID, bool) {
	userIDStr, ok := appMiddleware.GetUserIDFromContext(ctx)
	if !ok {
		l.ErrorContext(ctx, "User ID not found in context")
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		l.ErrorContext(ctx, "Invalid user ID format", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userID, true
}
