package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lookate/backend/internal/models"
)

// PostgresChatRepository implements chat-message persistence against a
// PostgreSQL database.
type PostgresChatRepository struct {
	// DB is the database handle for executing queries.
	DB *sqlx.DB
}

// NewPostgresChatRepository creates a new PostgresChatRepository using the provided *sqlx.DB.
func NewPostgresChatRepository(db *sqlx.DB) *PostgresChatRepository {
	return &PostgresChatRepository{DB: db}
}

// CreateChatMessage inserts one message/response pair.
func (r *PostgresChatRepository) CreateChatMessage(ctx context.Context, msg models.ChatMessage) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO chat_messages (id, user_id, message, response, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, msg.ID, msg.UserID, msg.Message, msg.Response, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("CreateChatMessage: %w", err)
	}
	return nil
}

// RecentMessages returns up to limit most recent messages for the given
// user, newest first.
func (r *PostgresChatRepository) RecentMessages(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := r.DB.SelectContext(ctx, &msgs, `
		SELECT id, user_id, message, response, created_at
		  FROM chat_messages WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("RecentMessages: %w", err)
	}
	return msgs, nil
}
