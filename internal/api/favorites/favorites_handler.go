package favorites

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	appMiddleware "github.com/karthikn/pondy-guide/app/middleware"
	"github.com/karthikn/pondy-guide/internal/api"
	"github.com/karthikn/pondy-guide/internal/types"
)

// Handler serves favorites for both authenticated users and guests. An
// authenticated request uses the database store keyed by user id; a guest
// request uses the local store keyed by the X-Guest-ID header.
type Handler struct {
	userStore  Store
	guestStore Store
	logger     *slog.Logger
}

func NewHandler(userStore, guestStore Store, logger *slog.Logger) *Handler {
	return &Handler{
		userStore:  userStore,
		guestStore: guestStore,
		logger:     logger,
	}
}

// resolveStore picks the backend and owner scope for a request.
func (h *Handler) resolveStore(ctx context.Context) (Store, string, bool) {
	if userID, ok := appMiddleware.GetUserIDFromContext(ctx); ok {
		return h.userStore, userID, true
	}
	if guestID, ok := appMiddleware.GetGuestIDFromContext(ctx); ok {
		return h.guestStore, guestID, true
	}
	return nil, "", false
}

// ListFavorites returns the caller's saved places.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ListFavorites").Start(r.Context(), "ListFavorites", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/favorites"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ListFavorites"))

	store, ownerKey, ok := h.resolveStore(ctx)
	if !ok {
		l.ErrorContext(ctx, "No user or guest identity on request")
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Sign in or supply an X-Guest-ID header")
		return
	}

	places, err := store.List(ctx, ownerKey)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list favorites", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list favorites")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, places)
}

// ToggleFavorite adds the posted place when absent, removes it otherwise.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ToggleFavorite").Start(r.Context(), "ToggleFavorite", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/favorites/toggle"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ToggleFavorite"))

	store, ownerKey, ok := h.resolveStore(ctx)
	if !ok {
		l.ErrorContext(ctx, "No user or guest identity on request")
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Sign in or supply an X-Guest-ID header")
		return
	}

	var place types.SavedPlace
	if err := api.DecodeJSONBody(w, r, &place); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if place.PlaceID == uuid.Nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "place_id is required")
		return
	}

	nowFavorite, err := store.Toggle(ctx, ownerKey, place)
	if err != nil {
		l.ErrorContext(ctx, "Failed to toggle favorite", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to toggle favorite")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]bool{"favorite": nowFavorite})
}

// CheckFavorite reports whether one place is in the caller's favorites.
func (h *Handler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CheckFavorite").Start(r.Context(), "CheckFavorite", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/favorites/{placeID}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "CheckFavorite"))

	store, ownerKey, ok := h.resolveStore(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Sign in or supply an X-Guest-ID header")
		return
	}

	placeID, err := uuid.Parse(chi.URLParam(r, "placeID"))
	if err != nil {
		l.ErrorContext(ctx, "Invalid place ID format", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid place ID format")
		return
	}

	favorite, err := store.IsFavorite(ctx, ownerKey, placeID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to check favorite", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to check favorite")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]bool{"favorite": favorite})
}
