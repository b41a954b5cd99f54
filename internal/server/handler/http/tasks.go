package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lookate/backend/internal/middleware"
	"github.com/lookate/backend/internal/models"
)

// TaskService defines the interface for task operations required by the
// HTTP handlers.
type TaskService interface {
	// Create persists a new task, geocoding its location if present.
	Create(ctx context.Context, userID int64, title, description, dueTime, location string) (models.Task, error)
	// List returns all tasks owned by the user.
	List(ctx context.Context, userID int64) ([]models.Task, error)
	// Toggle flips a task's completion flag and returns the new state.
	Toggle(ctx context.Context, userID int64, taskID string) (bool, error)
}

// TaskHandler handles HTTP requests for task management.
type TaskHandler struct {
	TaskService TaskService
}

// CreateTaskRequest represents the JSON payload for task creation.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueTime     string `json:"due_time"`
	Location    string `json:"location"`
}

// Create handles POST /tasks requests.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	task, err := h.TaskService.Create(r.Context(), userID, req.Title, req.Description, req.DueTime, req.Location)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Task created successfully",
		"task":    task,
	})
}

// List handles GET /tasks requests.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	tasks, err := h.TaskService.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

// Toggle handles PUT /tasks/{id}/toggle requests. A task that does not
// exist or belongs to another user yields 404.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	completed, err := h.TaskService.Toggle(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Task updated successfully",
		"completed": completed,
	})
}
