package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lookate/backend/internal/models"
)

// PostgresSearchRepository implements search-record persistence against a
// PostgreSQL database. Search rows are write-once.
type PostgresSearchRepository struct {
	// DB is the database handle for executing queries.
	DB *sqlx.DB
}

// NewPostgresSearchRepository creates a new PostgresSearchRepository using the provided *sqlx.DB.
func NewPostgresSearchRepository(db *sqlx.DB) *PostgresSearchRepository {
	return &PostgresSearchRepository{DB: db}
}

// CreateSearch inserts a search record.
func (r *PostgresSearchRepository) CreateSearch(ctx context.Context, search models.Search) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO searches (id, user_id, query, search_type, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, search.ID, search.UserID, search.Query, search.SearchType, search.Result, search.CreatedAt)
	if err != nil {
		return fmt.Errorf("CreateSearch: %w", err)
	}
	return nil
}

// CountSearches returns the number of searches recorded for the given user.
func (r *PostgresSearchRepository) CountSearches(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM searches WHERE user_id = $1
	`, userID)
	if err != nil {
		return 0, fmt.Errorf("CountSearches: %w", err)
	}
	return count, nil
}
