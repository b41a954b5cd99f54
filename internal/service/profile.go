package service

import (
	"context"

	"github.com/lookate/backend/internal/models"
)

// SearchRepository defines the persistence operations needed by the search
// and profile services.
type SearchRepository interface {
	// CreateSearch persists a write-once search record.
	CreateSearch(ctx context.Context, search models.Search) error
	// CountSearches returns the number of searches recorded for the user.
	CountSearches(ctx context.Context, userID int64) (int, error)
}

// ProfileService computes read-only account statistics. Every call
// recomputes from the stores; nothing is cached.
type ProfileService struct {
	users    UserRepository
	tasks    TaskRepository
	searches SearchRepository
}

// NewProfileService constructs a ProfileService reading from the given
// repositories.
func NewProfileService(users UserRepository, tasks TaskRepository, searches SearchRepository) *ProfileService {
	return &ProfileService{users: users, tasks: tasks, searches: searches}
}

// Summarize returns the user together with their aggregate counters.
// Returns models.ErrNotFound if no such account exists. Discoveries
// mirrors Searches.
func (s *ProfileService) Summarize(ctx context.Context, userID int64) (models.User, models.Stats, error) {
	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return models.User{}, models.Stats{}, err
	}

	searchCount, err := s.searches.CountSearches(ctx, userID)
	if err != nil {
		return models.User{}, models.Stats{}, err
	}

	total, completed, err := s.tasks.TaskCounts(ctx, userID)
	if err != nil {
		return models.User{}, models.Stats{}, err
	}

	stats := models.Stats{
		Searches:       searchCount,
		TasksCompleted: completed,
		TotalTasks:     total,
		Discoveries:    searchCount,
	}
	return user, stats, nil
}
