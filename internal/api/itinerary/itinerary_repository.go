package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikn/pondy-guide/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

type Repository interface {
	SaveItinerary(ctx context.Context, itinerary types.SavedItinerary) (uuid.UUID, error)
	GetItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (*types.SavedItinerary, error)
	GetItineraries(ctx context.Context, userID uuid.UUID) ([]types.SavedItinerary, error)
}

type PostgresRepository struct {
	logger *slog.Logger
	pgpool *pgxpool.Pool
}

func NewPostgresRepository(pgxpool *pgxpool.Pool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		pgpool: pgxpool,
	}
}

func (r *PostgresRepository) SaveItinerary(ctx context.Context, itinerary types.SavedItinerary) (uuid.UUID, error) {
	daysJSON, err := json.Marshal(itinerary.Days)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal itinerary days: %w", err)
	}

	query := `
        INSERT INTO itineraries (
            user_id, trip_type, start_date, end_date, days,
            provider, model_used, latency_ms, prompt, response_text
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id
    `
	var id uuid.UUID
	if err := r.pgpool.QueryRow(ctx, query,
		itinerary.UserID, itinerary.TripType, itinerary.StartDate, itinerary.EndDate, daysJSON,
		itinerary.Provider, itinerary.ModelUsed, itinerary.LatencyMs, itinerary.Prompt, itinerary.ResponseText,
	).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert itinerary: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) GetItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (*types.SavedItinerary, error) {
	query := `
        SELECT id, user_id, trip_type, start_date, end_date, days,
               provider, model_used, latency_ms, created_at
        FROM itineraries
        WHERE id = $1 AND user_id = $2
    `
	var it types.SavedItinerary
	var daysJSON []byte
	if err := r.pgpool.QueryRow(ctx, query, itineraryID, userID).Scan(
		&it.ID, &it.UserID, &it.TripType, &it.StartDate, &it.EndDate, &daysJSON,
		&it.Provider, &it.ModelUsed, &it.LatencyMs, &it.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find itinerary: %w", err)
	}
	if err := json.Unmarshal(daysJSON, &it.Days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal itinerary days: %w", err)
	}
	return &it, nil
}

func (r *PostgresRepository) GetItineraries(ctx context.Context, userID uuid.UUID) ([]types.SavedItinerary, error) {
	query := `
        SELECT id, user_id, trip_type, start_date, end_date, days,
               provider, model_used, latency_ms, created_at
        FROM itineraries
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.pgpool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query itineraries: %w", err)
	}
	defer rows.Close()

	var itineraries []types.SavedItinerary
	for rows.Next() {
		var it types.SavedItinerary
		var daysJSON []byte
		if err := rows.Scan(
			&it.ID, &it.UserID, &it.TripType, &it.StartDate, &it.EndDate, &daysJSON,
			&it.Provider, &it.ModelUsed, &it.LatencyMs, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary row: %w", err)
		}
		if err := json.Unmarshal(daysJSON, &it.Days); err != nil {
			return nil, fmt.Errorf("failed to unmarshal itinerary days: %w", err)
		}
		itineraries = append(itineraries, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate itinerary rows: %w", err)
	}
	return itineraries, nil
}
