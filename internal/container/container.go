package container

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	database "github.com/karthikn/pondy-guide/app/db"
	"github.com/karthikn/pondy-guide/app/observability/metrics"
	"github.com/karthikn/pondy-guide/config"
	"github.com/karthikn/pondy-guide/internal/ai"
	"github.com/karthikn/pondy-guide/internal/api/chat"
	"github.com/karthikn/pondy-guide/internal/api/favorites"
	"github.com/karthikn/pondy-guide/internal/api/itinerary"
	"github.com/karthikn/pondy-guide/internal/api/place"
	"github.com/karthikn/pondy-guide/internal/api/transit"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *slog.Logger
	Pool     *pgxpool.Pool
	Provider ai.Provider

	PlaceHandler     *place.Handler
	ItineraryHandler *itinerary.Handler
	ChatHandler      *chat.Handler
	FavoritesHandler *favorites.Handler
	TransitHandler   *transit.Handler

	placeService   place.Service
	transitService transit.Service
}

// NewContainer initializes and returns a new dependency container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	metrics.InitAppMetrics()
	appMetrics := metrics.Get()

	provider, err := ai.New(ctx, cfg, logger)
	if err != nil {
		pool.Close()
		logger.Error("Failed to construct AI provider", slog.Any("error", err))
		return nil, err
	}
	logger.Info("AI provider selected",
		slog.String("provider", provider.Name()), slog.String("model", provider.Model()))

	placeRepo := place.NewPostgresRepository(pool, logger)
	placeService := place.NewServiceImpl(placeRepo, logger)
	placeHandler := place.NewHandler(placeService, logger)

	itineraryRepo := itinerary.NewPostgresRepository(pool, logger)
	itineraryService := itinerary.NewServiceImpl(provider, placeRepo, itineraryRepo, appMetrics, logger)
	itineraryHandler := itinerary.NewHandler(itineraryService, logger)

	chatService := chat.NewServiceImpl(provider, appMetrics, logger)
	chatHandler := chat.NewHandler(chatService, logger)

	userFavorites := favorites.NewPostgresStore(pool, logger)
	guestFavorites, err := favorites.NewLocalStore(cfg.GuestStorePath, logger)
	if err != nil {
		pool.Close()
		logger.Error("Failed to open guest favorites store", slog.Any("error", err))
		return nil, err
	}
	favoritesHandler := favorites.NewHandler(userFavorites, guestFavorites, logger)

	transitRepo := transit.NewPostgresRepository(pool, logger)
	transitService := transit.NewServiceImpl(transitRepo, logger)
	transitHandler := transit.NewHandler(transitService, logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		Pool:             pool,
		Provider:         provider,
		PlaceHandler:     placeHandler,
		ItineraryHandler: itineraryHandler,
		ChatHandler:      chatHandler,
		FavoritesHandler: favoritesHandler,
		TransitHandler:   transitHandler,
		placeService:     placeService,
		transitService:   transitService,
	}, nil
}

// Seed loads the static place catalog and transit reference data into
// empty tables. Both seeders are idempotent.
func (c *Container) Seed(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.placeService.SeedCatalog(ctx) })
	g.Go(func() error { return c.transitService.Seed(ctx) })
	return g.Wait()
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}

// RunMigrations runs database migrations
func (c *Container) RunMigrations(connectionURL string) error {
	return database.RunMigrations(connectionURL, c.Logger)
}
