package services

import (
	"context"
	"time"

	"github.com/tasklight/core/internal/domain/stats"
	"github.com/tasklight/core/internal/infrastructure/logger"
	"github.com/tasklight/core/internal/ports"
)

// StatsService fetches the caller's full snapshot and hands it to the
// pure aggregation functions. Nothing is cached; every call recomputes
// from scratch.
type StatsService struct {
	taskRepo ports.TaskRepository
	listRepo ports.ListRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(taskRepo ports.TaskRepository, listRepo ports.ListRepository, logger *logger.Logger) *StatsService {
	return &StatsService{
		taskRepo: taskRepo,
		listRepo: listRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// Statistics computes the aggregation over the caller's lists and tasks.
func (s *StatsService) Statistics(ctx context.Context, ownerID int64) (*stats.Statistics, error) {
	lists, err := s.listRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := stats.Compute(lists, tasks, s.now())
	return &result, nil
}
