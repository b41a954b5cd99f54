package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lookate/backend/internal/models"
)

// PostgresTaskRepository implements task persistence against a PostgreSQL database.
type PostgresTaskRepository struct {
	// DB is the database handle for executing queries.
	DB *sqlx.DB
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository using the provided *sqlx.DB.
// db must be a valid connection to a PostgreSQL instance.
func NewPostgresTaskRepository(db *sqlx.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{DB: db}
}

// CreateTask inserts the given task. The caller is responsible for
// populating ID, UserID and CreatedAt.
func (r *PostgresTaskRepository) CreateTask(ctx context.Context, task models.Task) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO tasks (id, user_id, title, description, completed, due_time, location, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, task.ID, task.UserID, task.Title, task.Description, task.Completed,
		task.DueTime, task.Location, task.Latitude, task.Longitude, task.CreatedAt)
	if err != nil {
		return fmt.Errorf("CreateTask: %w", err)
	}
	return nil
}

// TasksByUser fetches all tasks owned by the given user in insertion order.
func (r *PostgresTaskRepository) TasksByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.DB.SelectContext(ctx, &tasks, `
		SELECT id, user_id, title, description, completed, due_time, location, latitude, longitude, created_at
		  FROM tasks WHERE user_id = $1 ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("TasksByUser: %w", err)
	}
	return tasks, nil
}

// ToggleTask flips the completion flag of the task with the given ID, but
// only if it is owned by userID, and returns the new state. A task that
// does not exist and a task owned by someone else are both reported as
// models.ErrNotFound.
func (r *PostgresTaskRepository) ToggleTask(ctx context.Context, userID int64, taskID string) (bool, error) {
	var completed bool
	err := r.DB.QueryRowxContext(ctx, `
		UPDATE tasks SET completed = NOT completed
		 WHERE id = $1 AND user_id = $2
		RETURNING completed
	`, taskID, userID).Scan(&completed)
	if errors.Is(err, sql.ErrNoRows) {
		return false, models.ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("ToggleTask: %w", err)
	}
	return completed, nil
}

// TaskCounts returns the total number of tasks and the number of completed
// tasks owned by the given user.
func (r *PostgresTaskRepository) TaskCounts(ctx context.Context, userID int64) (total, completed int, err error) {
	err = r.DB.QueryRowxContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE completed) FROM tasks WHERE user_id = $1
	`, userID).Scan(&total, &completed)
	if err != nil {
		return 0, 0, fmt.Errorf("TaskCounts: %w", err)
	}
	return total, completed, nil
}
