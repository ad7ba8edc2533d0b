package place

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikn/pondy-guide/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

type Repository interface {
	GetPlaces(ctx context.Context) ([]types.Place, error)
	GetPlacesByCategory(ctx context.Context, category types.PlaceCategory) ([]types.Place, error)
	GetPlaceByID(ctx context.Context, id uuid.UUID) (*types.Place, error)
	CountPlaces(ctx context.Context) (int, error)
	InsertPlaces(ctx context.Context, places []types.Place) error
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

const placeColumns = `
    id, name, category, description, location, rating, image,
    tags, time_slot, best_time, open_hours, entry_fee
`

func scanPlaces(rows pgx.Rows) ([]types.Place, error) {
	var places []types.Place
	for rows.Next() {
		var p types.Place
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.Description, &p.Location, &p.Rating, &p.Image,
			&p.Tags, &p.TimeSlot, &p.BestTime, &p.OpenHours, &p.EntryFee,
		); err != nil {
			return nil, fmt.Errorf("failed to scan place row: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate place rows: %w", err)
	}
	return places, nil
}

func (r *PostgresRepository) GetPlaces(ctx context.Context) ([]types.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places ORDER BY rating DESC, name`
	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()
	return scanPlaces(rows)
}

func (r *PostgresRepository) GetPlacesByCategory(ctx context.Context, category types.PlaceCategory) ([]types.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE category = $1 ORDER BY rating DESC, name`
	rows, err := r.pgpool.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query places by category: %w", err)
	}
	defer rows.Close()
	return scanPlaces(rows)
}

func (r *PostgresRepository) GetPlaceByID(ctx context.Context, id uuid.UUID) (*types.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`
	var p types.Place
	if err := r.pgpool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Description, &p.Location, &p.Rating, &p.Image,
		&p.Tags, &p.TimeSlot, &p.BestTime, &p.OpenHours, &p.EntryFee,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find place: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) CountPlaces(ctx context.Context) (int, error) {
	var count int
	if err := r.pgpool.QueryRow(ctx, `SELECT COUNT(*) FROM places`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count places: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) InsertPlaces(ctx context.Context, places []types.Place) error {
	tx, err := r.pgpool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO places (
            name, category, description, location, rating, image,
            tags, time_slot, best_time, open_hours, entry_fee
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (name) DO NOTHING
    `
	for _, p := range places {
		if _, err := tx.Exec(ctx, query,
			p.Name, p.Category, p.Description, p.Location, p.Rating, p.Image,
			p.Tags, p.TimeSlot, p.BestTime, p.OpenHours, p.EntryFee,
		); err != nil {
			return fmt.Errorf("failed to insert place %q: %w", p.Name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
