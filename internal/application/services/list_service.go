package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tasklight/core/internal/domain/entities"
	"github.com/tasklight/core/internal/infrastructure/logger"
	"github.com/tasklight/core/internal/ports"
)

// ListService handles list ("group") operations for a verified owner
type ListService struct {
	listRepo ports.ListRepository
	logger   *logger.Logger
}

// NewListService creates a new list service
func NewListService(listRepo ports.ListRepository, logger *logger.Logger) *ListService {
	return &ListService{
		listRepo: listRepo,
		logger:   logger,
	}
}

// ListLists returns every list owned by the caller.
func (s *ListService) ListLists(ctx context.Context, ownerID int64) ([]entities.List, error) {
	return s.listRepo.ListByOwner(ctx, ownerID)
}

// CreateList creates a list for the caller. The name must be non-empty
// and unique among the caller's own lists; other users may reuse it.
func (s *ListService) CreateList(ctx context.Context, ownerID int64, req ports.CreateListRequest) (*entities.List, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidInput)
	}

	color := req.Color
	if color == "" {
		color = entities.DefaultListColor
	}

	list := &entities.List{
		UserID: ownerID,
		Name:   name,
		Color:  color,
	}

	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}

	s.logger.Info("List created", "user_id", ownerID, "list_id", list.ID, "name", list.Name)
	return list, nil
}

// UpdateList applies a partial update to the caller's list.
func (s *ListService) UpdateList(ctx context.Context, ownerID, id int64, req ports.UpdateListRequest) (*entities.List, error) {
	patch := ports.ListPatch{Name: req.Name, Color: req.Color}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", entities.ErrInvalidInput)
	}

	list, err := s.listRepo.Update(ctx, ownerID, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("List updated", "user_id", ownerID, "list_id", id)
	return list, nil
}

// DeleteList deletes the caller's list. Member tasks survive with their
// list reference cleared.
func (s *ListService) DeleteList(ctx context.Context, ownerID, id int64) error {
	if err := s.listRepo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.logger.Info("List deleted", "user_id", ownerID, "list_id", id)
	return nil
}
