package transit

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/karthikn/pondy-guide/internal/api"
	"github.com/karthikn/pondy-guide/internal/types"
)

type Handler struct {
	transitService Service
	logger         *slog.Logger
}

func NewHandler(transitService Service, logger *slog.Logger) *Handler {
	return &Handler{
		transitService: transitService,
		logger:         logger,
	}
}

// GetTransit returns all transit reference entries.
func (h *Handler) GetTransit(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetTransit").Start(r.Context(), "GetTransit", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/transit"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetTransit"))

	items, err := h.transitService.GetItems(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch transit items", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch transit items")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, items)
}

// GetTransitByCategory returns one category's entries.
func (h *Handler) GetTransitByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetTransitByCategory").Start(r.Context(), "GetTransitByCategory", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/transit/{category}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetTransitByCategory"))

	category := types.TransitCategory(chi.URLParam(r, "category"))
	switch category {
	case types.TransitRentals, types.TransitCabs, types.TransitBus, types.TransitTrain:
	default:
		l.WarnContext(ctx, "Unknown transit category requested", slog.String("category", string(category)))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Unknown transit category")
		return
	}

	items, err := h.transitService.GetItemsByCategory(ctx, category)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch transit items", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch transit items")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, items)
}
