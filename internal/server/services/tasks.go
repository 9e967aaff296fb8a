package services

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
)

// TaskService exposes the ownership-scoped task operations. Every method is
// parameterized by the authenticated owner identity; the repository enforces
// the ownership predicate inside each statement, so this layer adds no
// further checks and stays race-free.
type TaskService struct {
	repo   tasks.Repository
	logger logging.Logger
}

func NewTaskService(repo tasks.Repository, logger logging.Logger) *TaskService {
	return &TaskService{
		repo:   repo,
		logger: logger.With("module", "task_service"),
	}
}

// List returns the owner's tasks, most recent first.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	return s.repo.List(ctx, ownerID)
}

// Create stores a new task for the owner and returns the stored row.
// An empty title is accepted; only the transport layer decides whether a
// title must be present at all.
func (s *TaskService) Create(ctx context.Context, ownerID, title string, description *string) (*models.Task, error) {
	task, err := s.repo.Create(ctx, ownerID, title, description)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "task created", "user_id", ownerID, "task_id", task.ID)
	return task, nil
}

// Update applies a partial patch. Fields absent from the patch keep their
// stored values. Missing and foreign-owned tasks fail identically with
// common.ErrorNotFound.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, patch models.TaskPatch) (*models.Task, error) {
	return s.repo.Update(ctx, ownerID, taskID, patch)
}

// Delete removes the owner's task. Missing and foreign-owned tasks fail
// identically with common.ErrorNotFound.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	err := s.repo.Delete(ctx, ownerID, taskID)
	if err == nil {
		s.logger.Info(ctx, "task deleted", "user_id", ownerID, "task_id", taskID)
	}
	return err
}
