package transit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/karthikn/pondy-guide/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

type Repository interface {
	GetItems(ctx context.Context) ([]types.TransitItem, error)
	GetItemsByCategory(ctx context.Context, category types.TransitCategory) ([]types.TransitItem, error)
	CountByCategory(ctx context.Context, category types.TransitCategory) (int, error)
	InsertItems(ctx context.Context, items []types.TransitItem) error
}

// DB is the subset of pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	logger *slog.Logger
	db     DB
}

func NewPostgresRepository(db DB, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		db:     db,
	}
}

const transitColumns = `
    id, category, name, from_stop, to_stop, fare, schedule, facilities, contact, notes
`

func scanItems(rows pgx.Rows) ([]types.TransitItem, error) {
	var items []types.TransitItem
	for rows.Next() {
		var it types.TransitItem
		if err := rows.Scan(
			&it.ID, &it.Category, &it.Name, &it.From, &it.To, &it.Fare,
			&it.Schedule, &it.Facilities, &it.Contact, &it.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transit row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transit rows: %w", err)
	}
	return items, nil
}

func (r *PostgresRepository) GetItems(ctx context.Context) ([]types.TransitItem, error) {
	query := `SELECT ` + transitColumns + ` FROM transit_items ORDER BY category, name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transit items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *PostgresRepository) GetItemsByCategory(ctx context.Context, category types.TransitCategory) ([]types.TransitItem, error) {
	query := `SELECT ` + transitColumns + ` FROM transit_items WHERE category = $1 ORDER BY name`
	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query transit items by category: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *PostgresRepository) CountByCategory(ctx context.Context, category types.TransitCategory) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM transit_items WHERE category = $1`, category,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transit items: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) InsertItems(ctx context.Context, items []types.TransitItem) error {
	query := `
        INSERT INTO transit_items (
            category, name, from_stop, to_stop, fare, schedule, facilities, contact, notes
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	for _, it := range items {
		facilities := it.Facilities
		if facilities == nil {
			facilities = []string{}
		}
		if _, err := r.db.Exec(ctx, query,
			it.Category, it.Name, it.From, it.To, it.Fare, it.Schedule, facilities, it.Contact, it.Notes,
		); err != nil {
			return fmt.Errorf("failed to insert transit item %q: %w", it.Name, err)
		}
	}
	return nil
}
