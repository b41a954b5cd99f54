// Package repository provides PostgreSQL persistence for users, tasks,
// searches and chat messages.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lookate/backend/internal/models"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// PostgresUserRepository implements user persistence against a PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sqlx.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given database connection.
// db must be a valid *sqlx.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// CreateUser inserts a new user and returns the persisted record with its
// generated ID and timestamp. A duplicate email yields models.ErrConflict.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, email, name, passwordHash string) (models.User, error) {
	user := models.User{Email: email, Name: name, PasswordHash: passwordHash}
	err := r.DB.QueryRowxContext(ctx, `
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, email, name, passwordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.User{}, fmt.Errorf("email %s: %w", email, models.ErrConflict)
		}
		return models.User{}, fmt.Errorf("CreateUser: %w", err)
	}
	return user, nil
}

// UserByEmail fetches a user by email. Returns models.ErrNotFound if no
// such user exists.
func (r *PostgresUserRepository) UserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.DB.GetContext(ctx, &user, `
		SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1
	`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("UserByEmail: %w", err)
	}
	return user, nil
}

// UserByID fetches a user by ID. Returns models.ErrNotFound if no such
// user exists.
func (r *PostgresUserRepository) UserByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := r.DB.GetContext(ctx, &user, `
		SELECT id, email, name, password_hash, created_at FROM users WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("UserByID: %w", err)
	}
	return user, nil
}
