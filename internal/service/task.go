package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lookate/backend/internal/models"
)

// TaskRepository defines the persistence operations needed by the TaskService.
type TaskRepository interface {
	// CreateTask persists the given task.
	CreateTask(ctx context.Context, task models.Task) error
	// TasksByUser returns all tasks owned by the user in insertion order.
	TasksByUser(ctx context.Context, userID int64) ([]models.Task, error)
	// ToggleTask flips the completion flag of the user's task and returns
	// the new state; models.ErrNotFound if the task does not exist or is
	// owned by someone else.
	ToggleTask(ctx context.Context, userID int64, taskID string) (bool, error)
	// TaskCounts returns the total and completed task counts for the user.
	TaskCounts(ctx context.Context, userID int64) (total, completed int, err error)
}

// Geocoder resolves a free-text place name to coordinates, or nil when it
// cannot. Implementations must never fail loudly; a miss is a nil result.
type Geocoder interface {
	Resolve(ctx context.Context, place string) *models.Coordinates
}

// TaskService implements task creation, listing and toggling. Creation
// links a task to a place by geocoding its location string once.
type TaskService struct {
	// repo is the underlying persistence repository.
	repo TaskRepository
	// geo resolves location strings to coordinates.
	geo Geocoder
	log *zap.Logger
}

// NewTaskService constructs a TaskService with the provided repository and
// geocoder.
func NewTaskService(repo TaskRepository, geo Geocoder, log *zap.Logger) *TaskService {
	return &TaskService{repo: repo, geo: geo, log: log}
}

// Create persists a new task for the user. If location is non-empty it is
// geocoded synchronously; on a miss the task is stored without coordinates.
// Geocoding failure never fails creation. Latitude and longitude are set
// together or not at all.
func (s *TaskService) Create(ctx context.Context, userID int64, title, description, dueTime, location string) (models.Task, error) {
	if title == "" {
		return models.Task{}, fmt.Errorf("title is required: %w", models.ErrValidation)
	}

	task := models.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		DueTime:     dueTime,
		Location:    location,
		CreatedAt:   time.Now().UTC(),
	}

	if location != "" {
		if coords := s.geo.Resolve(ctx, location); coords != nil {
			task.Latitude = &coords.Latitude
			task.Longitude = &coords.Longitude
		} else {
			s.log.Info("task location not resolved", zap.String("location", location))
		}
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// List returns all tasks owned by the user.
func (s *TaskService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.repo.TasksByUser(ctx, userID)
}

// Toggle flips the completion flag of the user's task and returns the new
// state. A task owned by another user is indistinguishable from a missing
// one: both yield models.ErrNotFound.
func (s *TaskService) Toggle(ctx context.Context, userID int64, taskID string) (bool, error) {
	return s.repo.ToggleTask(ctx, userID, taskID)
}
