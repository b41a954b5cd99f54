package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lookate/backend/internal/models"
)

// PlacesService defines the interface for nearby-place lookups required by
// the HTTP handlers.
type PlacesService interface {
	// Nearby returns places around the given point within radius meters.
	Nearby(ctx context.Context, lat, lng float64, radius int, placeType string) ([]models.Place, error)
}

// LocationsHandler handles HTTP requests for location services.
type LocationsHandler struct {
	PlacesService PlacesService
}

// Nearby handles GET /locations/nearby requests. latitude and longitude
// are required query parameters; radius (meters, default 1000) and type
// are optional.
func (h *LocationsHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, latErr := strconv.ParseFloat(q.Get("latitude"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("longitude"), 64)
	if latErr != nil || lngErr != nil {
		writeError(w, fmt.Errorf("latitude and longitude are required: %w", models.ErrValidation))
		return
	}

	radius := 1000
	if rs := q.Get("radius"); rs != "" {
		parsed, err := strconv.Atoi(rs)
		if err != nil || parsed <= 0 {
			writeError(w, fmt.Errorf("radius must be a positive integer: %w", models.ErrValidation))
			return
		}
		radius = parsed
	}

	places, err := h.PlacesService.Nearby(r.Context(), lat, lng, radius, q.Get("type"))
	if err != nil {
		writeError(w, err)
		return
	}
	if places == nil {
		places = []models.Place{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"locations": places})
}
