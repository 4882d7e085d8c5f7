package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tasklight/core/internal/domain/entities"
	"github.com/tasklight/core/internal/infrastructure/logger"
	"github.com/tasklight/core/internal/ports"
)

// TaskService handles task operations for a verified owner
type TaskService struct {
	taskRepo ports.TaskRepository
	listRepo ports.ListRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, listRepo ports.ListRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		listRepo: listRepo,
		logger:   logger,
	}
}

// ListTasks returns every task owned by the caller, completed or not.
func (s *TaskService) ListTasks(ctx context.Context, ownerID int64) ([]entities.Task, error) {
	return s.taskRepo.ListByOwner(ctx, ownerID)
}

// CreateTask creates a task for the caller. A supplied list reference
// must resolve to one of the caller's own lists; a reference to another
// user's list reads as not found, same as the ownership guard elsewhere.
func (s *TaskService) CreateTask(ctx context.Context, ownerID int64, req ports.CreateTaskRequest) (*entities.Task, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", entities.ErrInvalidInput)
	}

	priority, err := entities.NormalizePriority(req.Priority)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidInput, req.Priority)
	}

	if req.ListID != nil {
		if _, err := s.listRepo.GetByID(ctx, ownerID, *req.ListID); err != nil {
			return nil, err
		}
	}

	task := &entities.Task{
		UserID:      ownerID,
		Text:        text,
		Description: req.Description,
		Priority:    priority,
		ListID:      req.ListID,
		DueDate:     req.DueDate,
		PlannedDate: req.PlannedDate,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("Task created", "user_id", ownerID, "task_id", task.ID)
	return task, nil
}

// UpdateTask applies a partial update to the caller's task and reports
// which fields changed.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, id int64, req ports.UpdateTaskRequest) (*entities.Task, []string, error) {
	var priority *entities.Priority
	if req.Priority != nil {
		p, err := entities.NormalizePriority(*req.Priority)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidInput, *req.Priority)
		}
		priority = &p
	}

	if req.Text != nil && strings.TrimSpace(*req.Text) == "" {
		return nil, nil, fmt.Errorf("%w: text cannot be empty", entities.ErrInvalidInput)
	}

	if req.ListID.Set && req.ListID.Value != nil {
		if _, err := s.listRepo.GetByID(ctx, ownerID, *req.ListID.Value); err != nil {
			return nil, nil, err
		}
	}

	patch := req.Patch(priority)
	task, err := s.taskRepo.Update(ctx, ownerID, id, patch)
	if err != nil {
		return nil, nil, err
	}

	changes := patchChanges(patch)
	s.logger.Info("Task updated", "user_id", ownerID, "task_id", id, "changes", changes)
	return task, changes, nil
}

// DeleteTask deletes the caller's task.
func (s *TaskService) DeleteTask(ctx context.Context, ownerID, id int64) error {
	if err := s.taskRepo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.logger.Info("Task deleted", "user_id", ownerID, "task_id", id)
	return nil
}

func patchChanges(p ports.TaskPatch) []string {
	changes := make([]string, 0, 7)
	if p.Text != nil {
		changes = append(changes, "text")
	}
	if p.Description != nil {
		changes = append(changes, "description")
	}
	if p.Priority != nil {
		changes = append(changes, "priority")
	}
	if p.ListIDSet {
		changes = append(changes, "list_id")
	}
	if p.DueDateSet {
		changes = append(changes, "due_date")
	}
	if p.PlannedDateSet {
		changes = append(changes, "planned_date")
	}
	if p.Completed != nil {
		changes = append(changes, "completed")
	}
	return changes
}
