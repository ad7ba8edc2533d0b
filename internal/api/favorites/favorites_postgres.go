package favorites

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikn/pondy-guide/internal/types"
)

var _ Store = (*PostgresStore)(nil)

// PostgresStore keeps favorites per authenticated user. Toggle is
// delete-if-exists else create against the favorites table.
type PostgresStore struct {
	logger   *slog.Logger
	pgpool   *pgxpool.Pool
	notifier *notifier
}

func NewPostgresStore(pgxpool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{
		logger:   logger,
		pgpool:   pgxpool,
		notifier: newNotifier(),
	}
}

func (s *PostgresStore) IsFavorite(ctx context.Context, ownerKey string, placeID uuid.UUID) (bool, error) {
	userID, err := uuid.Parse(ownerKey)
	if err != nil {
		return false, fmt.Errorf("invalid owner key: %w", err)
	}
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND place_id = $2)`
	if err := s.pgpool.QueryRow(ctx, query, userID, placeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) Toggle(ctx context.Context, ownerKey string, place types.SavedPlace) (bool, error) {
	userID, err := uuid.Parse(ownerKey)
	if err != nil {
		return false, fmt.Errorf("invalid owner key: %w", err)
	}

	tx, err := s.pgpool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND place_id = $2`, userID, place.PlaceID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	nowFavorite := false
	if tag.RowsAffected() == 0 {
		if _, err := tx.Exec(ctx,
			`INSERT INTO favorites (user_id, place_id, name, image, location, category, rating)
             VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			userID, place.PlaceID, place.Name, place.Image, place.Location, place.Category, place.Rating,
		); err != nil {
			return false, fmt.Errorf("failed to add favorite: %w", err)
		}
		nowFavorite = true
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if snapshot, err := s.List(ctx, ownerKey); err == nil {
		s.notifier.publish(ownerKey, snapshot)
	} else {
		s.logger.WarnContext(ctx, "failed to load favorites snapshot after toggle", slog.Any("error", err))
	}
	return nowFavorite, nil
}

func (s *PostgresStore) List(ctx context.Context, ownerKey string) ([]types.SavedPlace, error) {
	userID, err := uuid.Parse(ownerKey)
	if err != nil {
		return nil, fmt.Errorf("invalid owner key: %w", err)
	}

	query := `
        SELECT place_id, name, image, location, category, rating
        FROM favorites
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := s.pgpool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var places []types.SavedPlace
	for rows.Next() {
		var p types.SavedPlace
		if err := rows.Scan(&p.PlaceID, &p.Name, &p.Image, &p.Location, &p.Category, &p.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorite rows: %w", err)
	}
	return places, nil
}

func (s *PostgresStore) Subscribe(ownerKey string) (<-chan []types.SavedPlace, func()) {
	return s.notifier.subscribe(ownerKey)
}
