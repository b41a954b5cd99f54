package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/lookate/backend/internal/middleware"
	"github.com/lookate/backend/internal/models"
	"github.com/lookate/backend/internal/service"
)

// SearchService defines the interface for search passthrough operations
// required by the HTTP handlers.
type SearchService interface {
	// Text runs a plain text search.
	Text(ctx context.Context, userID int64, query string) (service.SearchResult, error)
	// Image runs an image search on a base64-encoded image.
	Image(ctx context.Context, userID int64, imageB64, query string) (service.SearchResult, error)
	// Voice transcribes and answers an uploaded audio query.
	Voice(ctx context.Context, userID int64, audio io.Reader, filename string) (service.SearchResult, error)
}

// SearchHandler handles HTTP requests for the three search modalities.
type SearchHandler struct {
	SearchService SearchService
}

// TextSearchRequest represents the JSON payload for text search.
type TextSearchRequest struct {
	Query string `json:"query"`
}

// ImageSearchRequest represents the JSON payload for image search.
type ImageSearchRequest struct {
	// Image is the base64-encoded image data.
	Image string `json:"image"`
	Query string `json:"query"`
}

// Text handles POST /search/text requests.
func (h *SearchHandler) Text(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	var req TextSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	res, err := h.SearchService.Text(r.Context(), userID, req.Query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"result":      res.Result,
		"search_id":   res.SearchID,
		"suggestions": res.Suggestions,
	})
}

// Image handles POST /search/image requests.
func (h *SearchHandler) Image(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	var req ImageSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	res, err := h.SearchService.Image(r.Context(), userID, req.Image, req.Query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"result":    res.Result,
		"search_id": res.SearchID,
	})
}

// Voice handles POST /search/voice requests. The audio arrives as a
// multipart form file named "audio".
func (h *SearchHandler) Voice(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "audio file is required"})
		return
	}
	defer file.Close()

	res, err := h.SearchService.Voice(r.Context(), userID, file, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"transcript": res.Query,
		"result":     res.Result,
		"search_id":  res.SearchID,
	})
}
