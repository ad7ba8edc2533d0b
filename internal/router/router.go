package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/karthikn/pondy-guide/internal/api/chat"
	"github.com/karthikn/pondy-guide/internal/api/favorites"
	"github.com/karthikn/pondy-guide/internal/api/itinerary"
	"github.com/karthikn/pondy-guide/internal/api/place"
	"github.com/karthikn/pondy-guide/internal/api/transit"
)

// Request deadlines are scoped per route group: catalog reads are quick,
// while anything that waits on a model generation gets the long deadline
// matched by the server's WriteTimeout in main.go.
const (
	readRequestTimeout     = 60 * time.Second
	generateRequestTimeout = 3 * time.Minute
)

// Config contains the handlers and middleware the router wires together.
type Config struct {
	PlaceHandler     *place.Handler
	ItineraryHandler *itinerary.Handler
	ChatHandler      *chat.Handler
	FavoritesHandler *favorites.Handler
	TransitHandler   *transit.Handler

	AuthenticateMiddleware         func(http.Handler) http.Handler
	OptionalAuthenticateMiddleware func(http.Handler) http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are applied before
// mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Guest-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Public catalog and reference data.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(readRequestTimeout))

			r.Get("/places", cfg.PlaceHandler.GetPlaces)
			r.Get("/places/category/{category}", cfg.PlaceHandler.GetPlacesByCategory)
			r.Get("/places/{id}", cfg.PlaceHandler.GetPlace)

			r.Get("/transit", cfg.TransitHandler.GetTransit)
			r.Get("/transit/{category}", cfg.TransitHandler.GetTransitByCategory)
		})

		// Chat and provider status may run a generation.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(generateRequestTimeout))

			r.Post("/chat/message", cfg.ChatHandler.SendMessage)
			r.Post("/chat/stream", cfg.ChatHandler.StreamMessage)
			r.Get("/ai/status", cfg.ItineraryHandler.GetProviderStatus)
		})

		// Favorites work for signed-in users and guests alike.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(readRequestTimeout))
			r.Use(cfg.OptionalAuthenticateMiddleware)

			r.Get("/favorites", cfg.FavoritesHandler.ListFavorites)
			r.Post("/favorites/toggle", cfg.FavoritesHandler.ToggleFavorite)
			r.Get("/favorites/{placeID}", cfg.FavoritesHandler.CheckFavorite)
		})

		// Itinerary generation and history require an account.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(generateRequestTimeout))
			r.Use(cfg.AuthenticateMiddleware)

			r.Post("/itinerary/generate", cfg.ItineraryHandler.GenerateItinerary)
			r.Get("/itinerary", cfg.ItineraryHandler.GetItineraries)
			r.Get("/itinerary/{id}", cfg.ItineraryHandler.GetItinerary)
		})
	})

	return r
}
