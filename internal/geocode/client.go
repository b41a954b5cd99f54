// Package geocode talks to the Google Maps geocoding and places APIs.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/lookate/backend/internal/models"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// Client calls the Google Maps web services with a fixed API key.
type Client struct {
	// BaseURL is the API root, overridable in tests.
	BaseURL string

	key  string
	http *http.Client
	log  *zap.Logger
}

// New constructs a Client. timeout bounds every round trip; a geocoding
// call that exceeds it counts as a miss.
func New(key string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		key:     key,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// geocodeResponse mirrors the subset of the geocoding payload we read.
type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve converts a free-text place name to coordinates using the first
// geocoding result. Any failure (network, non-200, malformed body, zero
// results) returns nil: callers must tolerate absent coordinates, so
// errors are logged here and not propagated.
func (c *Client) Resolve(ctx context.Context, place string) *models.Coordinates {
	q := url.Values{}
	q.Set("address", place)
	q.Set("key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/geocode/json?"+q.Encode(), nil)
	if err != nil {
		c.log.Warn("geocode request build failed", zap.Error(err))
		return nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("geocode request failed", zap.String("place", place), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("geocode unexpected status", zap.String("place", place), zap.Int("status", resp.StatusCode))
		return nil
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Warn("geocode malformed response", zap.String("place", place), zap.Error(err))
		return nil
	}
	if len(body.Results) == 0 {
		c.log.Debug("geocode no results", zap.String("place", place))
		return nil
	}

	loc := body.Results[0].Geometry.Location
	return &models.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}
}

// placesResponse mirrors the subset of the nearby-search payload we read.
type placesResponse struct {
	Results []struct {
		PlaceID    string   `json:"place_id"`
		Name       string   `json:"name"`
		Rating     float64  `json:"rating"`
		PriceLevel int      `json:"price_level"`
		Types      []string `json:"types"`
		Geometry   struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Vicinity     string `json:"vicinity"`
		OpeningHours *struct {
			OpenNow bool `json:"open_now"`
		} `json:"opening_hours"`
	} `json:"results"`
}

// Nearby runs a places nearby-search around the given point. radius is in
// meters; placeType is optional. Unlike Resolve, failures propagate: the
// caller has nothing to return without them.
func (c *Client) Nearby(ctx context.Context, lat, lng float64, radius int, placeType string) ([]models.Place, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", strconv.Itoa(radius))
	q.Set("key", c.key)
	if placeType != "" {
		q.Set("type", placeType)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/place/nearbysearch/json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build nearby request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nearby search: %w: %w", models.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nearby search status %d: %w", resp.StatusCode, models.ErrUpstream)
	}

	var body placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("nearby search decode: %w: %w", models.ErrUpstream, err)
	}

	places := make([]models.Place, 0, len(body.Results))
	for _, res := range body.Results {
		place := models.Place{
			PlaceID:    res.PlaceID,
			Name:       res.Name,
			Rating:     res.Rating,
			PriceLevel: res.PriceLevel,
			Types:      res.Types,
			Location: &models.Coordinates{
				Latitude:  res.Geometry.Location.Lat,
				Longitude: res.Geometry.Location.Lng,
			},
			Vicinity: res.Vicinity,
		}
		if res.OpeningHours != nil {
			open := res.OpeningHours.OpenNow
			place.OpenNow = &open
		}
		places = append(places, place)
	}
	return places, nil
}
