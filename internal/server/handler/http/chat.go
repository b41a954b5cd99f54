package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lookate/backend/internal/middleware"
	"github.com/lookate/backend/internal/models"
)

// ChatService defines the interface for the chat passthrough required by
// the HTTP handlers.
type ChatService interface {
	// Send answers the message and returns the response and stored ID.
	Send(ctx context.Context, userID int64, message string) (response, messageID string, err error)
}

// ChatHandler handles HTTP requests for the AI chat assistant.
type ChatHandler struct {
	ChatService ChatService
}

// ChatRequest represents the JSON payload for a chat message.
type ChatRequest struct {
	Message string `json:"message"`
}

// Send handles POST /chat requests.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	response, messageID, err := h.ChatService.Send(r.Context(), userID, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"response":   response,
		"message_id": messageID,
	})
}
