package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lookate/backend/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the Lookate
// API. It applies request logging and bearer-token authentication, and
// mounts the auth, task, search, chat, profile and location endpoints.
//
// Routes:
//
//	GET  /health                → liveness probe
//	POST /auth/register         → authHandler.Register
//	POST /auth/login            → authHandler.Login
//	POST /tasks                 → taskHandler.Create   (protected)
//	GET  /tasks                 → taskHandler.List     (protected)
//	PUT  /tasks/{id}/toggle     → taskHandler.Toggle   (protected)
//	GET  /user/profile          → profileHandler.Profile (protected)
//	POST /search/text           → searchHandler.Text   (protected)
//	POST /search/image          → searchHandler.Image  (protected)
//	POST /search/voice          → searchHandler.Voice  (protected, multipart)
//	POST /chat                  → chatHandler.Send     (protected)
//	GET  /locations/nearby      → locationsHandler.Nearby (protected)
func NewRouter(
	authHandler *AuthHandler,
	taskHandler *TaskHandler,
	profileHandler *ProfileHandler,
	searchHandler *SearchHandler,
	chatHandler *ChatHandler,
	locationsHandler *LocationsHandler,
	jwtSecret []byte,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public endpoints
	r.Group(func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
	})

	// Protected group: requires a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))

		r.Post("/tasks", taskHandler.Create)
		r.Get("/tasks", taskHandler.List)
		r.Put("/tasks/{id}/toggle", taskHandler.Toggle)

		r.Get("/user/profile", profileHandler.Profile)

		r.Post("/search/text", searchHandler.Text)
		r.Post("/search/image", searchHandler.Image)
		// Voice uploads are multipart, so no JSON content-type gate here.
		r.Post("/search/voice", searchHandler.Voice)

		r.Post("/chat", chatHandler.Send)

		r.Get("/locations/nearby", locationsHandler.Nearby)
	})

	return r
}
