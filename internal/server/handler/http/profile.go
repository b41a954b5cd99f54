package http

import (
	"context"
	"net/http"

	"github.com/lookate/backend/internal/middleware"
	"github.com/lookate/backend/internal/models"
)

// ProfileService defines the interface for profile aggregation required by
// the HTTP handlers.
type ProfileService interface {
	// Summarize returns the user and their aggregate counters.
	Summarize(ctx context.Context, userID int64) (models.User, models.Stats, error)
}

// ProfileHandler handles HTTP requests for the user profile.
type ProfileHandler struct {
	ProfileService ProfileService
}

// Profile handles GET /user/profile requests.
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	user, stats, err := h.ProfileService.Summarize(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":  user,
		"stats": stats,
	})
}
