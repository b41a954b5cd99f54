package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lookate/backend/internal/ai"
	"github.com/lookate/backend/internal/models"
)

// chatHistoryLimit is how many past exchanges are replayed as context.
const chatHistoryLimit = 5

const chatSystemPrompt = "You are Lookate's AI assistant. Help users with discovery, task management, " +
	"and location-based queries. Be helpful, concise, and engaging."

// ChatRepository defines the persistence operations needed by the ChatService.
type ChatRepository interface {
	// CreateChatMessage persists one message/response pair.
	CreateChatMessage(ctx context.Context, msg models.ChatMessage) error
	// RecentMessages returns up to limit most recent messages, newest first.
	RecentMessages(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error)
}

// ChatService forwards chat messages to the AI service with a window of
// recent conversation history and records each exchange.
type ChatService struct {
	repo ChatRepository
	ai   Completer
}

// NewChatService constructs a ChatService with the provided repository and
// completion client.
func NewChatService(repo ChatRepository, completer Completer) *ChatService {
	return &ChatService{repo: repo, ai: completer}
}

// Send answers the user's message, replaying the last few exchanges as
// context, and stores the new exchange. Returns the assistant response and
// the stored message ID.
func (s *ChatService) Send(ctx context.Context, userID int64, message string) (string, string, error) {
	if message == "" {
		return "", "", fmt.Errorf("message is required: %w", models.ErrValidation)
	}

	history, err := s.repo.RecentMessages(ctx, userID, chatHistoryLimit)
	if err != nil {
		return "", "", err
	}

	messages := []ai.Message{{Role: "system", Content: chatSystemPrompt}}
	// history is newest first; replay oldest first.
	for i := len(history) - 1; i >= 0; i-- {
		messages = append(messages,
			ai.Message{Role: "user", Content: history[i].Message},
			ai.Message{Role: "assistant", Content: history[i].Response},
		)
	}
	messages = append(messages, ai.Message{Role: "user", Content: message})

	response, err := s.ai.ChatCompletion(ctx, "gpt-3.5-turbo", messages, 400, 0.8)
	if err != nil {
		return "", "", err
	}

	msg := models.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateChatMessage(ctx, msg); err != nil {
		return "", "", err
	}

	return response, msg.ID, nil
}
