package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/lookate/backend/internal/middleware"
	"github.com/lookate/backend/internal/models"
)

// fakeTaskService implements TaskService for testing.
type fakeTaskService struct {
	task      models.Task
	tasks     []models.Task
	completed bool
	err       error
}

func (f *fakeTaskService) Create(ctx context.Context, userID int64, title, description, dueTime, location string) (models.Task, error) {
	return f.task, f.err
}
func (f *fakeTaskService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return f.tasks, f.err
}
func (f *fakeTaskService) Toggle(ctx context.Context, userID int64, taskID string) (bool, error) {
	return f.completed, f.err
}

func authedRequest(method, target string, body *bytes.Buffer) *http.Request {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middleware.WithUserID(req.Context(), 7))
}

func TestTaskHandler_Create(t *testing.T) {
	lat, lng := 48.8584, 2.2945
	tests := []struct {
		name         string
		body         string
		authed       bool
		service      *fakeTaskService
		expectedCode int
	}{
		{
			name:         "no identity in context",
			body:         `{"title":"Buy milk"}`,
			authed:       false,
			service:      &fakeTaskService{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid JSON",
			body:         `{`,
			authed:       true,
			service:      &fakeTaskService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing title",
			body:         `{"description":"no title"}`,
			authed:       true,
			service:      &fakeTaskService{err: models.ErrValidation},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "success with coordinates",
			body:   `{"title":"Buy milk","location":"Eiffel Tower, Paris"}`,
			authed: true,
			service: &fakeTaskService{task: models.Task{
				ID: "task-1", UserID: 7, Title: "Buy milk",
				Location: "Eiffel Tower, Paris", Latitude: &lat, Longitude: &lng,
			}},
			expectedCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			var req *http.Request
			if tt.authed {
				req = authedRequest("POST", "/tasks", bytes.NewBufferString(tt.body))
			} else {
				req = httptest.NewRequest("POST", "/tasks", bytes.NewBufferString(tt.body))
			}

			h := &TaskHandler{TaskService: tt.service}
			h.Create(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}

			if tt.expectedCode == http.StatusCreated {
				var body struct {
					Task models.Task `json:"task"`
				}
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if body.Task.Latitude == nil || *body.Task.Latitude != lat {
					t.Errorf("expected latitude %v, got %v", lat, body.Task.Latitude)
				}
			}
		})
	}
}

func TestTaskHandler_List_EmptyIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	h := &TaskHandler{TaskService: &fakeTaskService{}}
	h.List(rec, authedRequest("GET", "/tasks", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"tasks":[]`)) {
		t.Errorf("expected empty tasks array, got %q", rec.Body.String())
	}
}

func TestTaskHandler_Toggle(t *testing.T) {
	tests := []struct {
		name         string
		service      *fakeTaskService
		expectedCode int
	}{
		{
			name:         "not found or not owned",
			service:      &fakeTaskService{err: models.ErrNotFound},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "success",
			service:      &fakeTaskService{completed: true},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Route through chi so the {id} URL param is populated.
			r := chi.NewRouter()
			h := &TaskHandler{TaskService: tt.service}
			r.Put("/tasks/{id}/toggle", h.Toggle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, authedRequest("PUT", "/tasks/task-1/toggle", nil))

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedCode == http.StatusOK &&
				!bytes.Contains(rec.Body.Bytes(), []byte(`"completed":true`)) {
				t.Errorf("expected completed true, got %q", rec.Body.String())
			}
		})
	}
}
