package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklight/core/internal/domain/entities"
	"github.com/tasklight/core/internal/infrastructure/logger"
	"github.com/tasklight/core/internal/ports"
)

func strPtr(s string) *string { return &s }

func TestCreateList(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the default color when none is given", func(t *testing.T) {
		svc := NewListService(newMemListRepo(), logger.NewNop())

		list, err := svc.CreateList(ctx, 1, ports.CreateListRequest{Name: "Work"})
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultListColor, list.Color)
		assert.Equal(t, int64(1), list.UserID)
	})

	t.Run("keeps an explicit color", func(t *testing.T) {
		svc := NewListService(newMemListRepo(), logger.NewNop())

		list, err := svc.CreateList(ctx, 1, ports.CreateListRequest{Name: "Work", Color: "#123456"})
		require.NoError(t, err)
		assert.Equal(t, "#123456", list.Color)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		svc := NewListService(newMemListRepo(), logger.NewNop())

		_, err := svc.CreateList(ctx, 1, ports.CreateListRequest{Name: "  "})
		assert.ErrorIs(t, err, entities.ErrInvalidInput)
	})

	t.Run("name is unique per owner, not globally", func(t *testing.T) {
		svc := NewListService(newMemListRepo(), logger.NewNop())

		_, err := svc.CreateList(ctx, 1, ports.CreateListRequest{Name: "Work"})
		require.NoError(t, err)

		_, err = svc.CreateList(ctx, 1, ports.CreateListRequest{Name: "Work"})
		assert.ErrorIs(t, err, entities.ErrConflict)

		_, err = svc.CreateList(ctx, 2, ports.CreateListRequest{Name: "Work"})
		assert.NoError(t, err)
	})
}

func TestUpdateList(t *testing.T) {
	ctx := context.Background()
	svc := NewListService(newMemListRepo(), logger.NewNop())

	list, err := svc.CreateList(ctx, 1, ports.CreateListRequest{Name: "Work"})
	require.NoError(t, err)

	t.Run("renames and recolors", func(t *testing.T) {
		updated, err := svc.UpdateList(ctx, 1, list.ID, ports.UpdateListRequest{
			Name:  strPtr("Office"),
			Color: strPtr("#ff0000"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Office", updated.Name)
		assert.Equal(t, "#ff0000", updated.Color)
	})

	t.Run("empty patch reads as nothing to update", func(t *testing.T) {
		_, err := svc.UpdateList(ctx, 1, list.ID, ports.UpdateListRequest{})
		assert.ErrorIs(t, err, entities.ErrNothingToUpdate)
	})

	t.Run("blank name is invalid", func(t *testing.T) {
		_, err := svc.UpdateList(ctx, 1, list.ID, ports.UpdateListRequest{Name: strPtr(" ")})
		assert.ErrorIs(t, err, entities.ErrInvalidInput)
	})

	t.Run("another owner's list reads as not found", func(t *testing.T) {
		_, err := svc.UpdateList(ctx, 2, list.ID, ports.UpdateListRequest{Name: strPtr("Stolen")})
		assert.ErrorIs(t, err, entities.ErrListNotFound)
	})
}

func TestDeleteList(t *testing.T) {
	ctx := context.Background()
	listRepo := newMemListRepo()
	taskRepo := newMemTaskRepo()
	listRepo.tasks = taskRepo

	listSvc := NewListService(listRepo, logger.NewNop())
	taskSvc := NewTaskService(taskRepo, listRepo, logger.NewNop())

	list, err := listSvc.CreateList(ctx, 1, ports.CreateListRequest{Name: "Work"})
	require.NoError(t, err)

	task, err := taskSvc.CreateTask(ctx, 1, ports.CreateTaskRequest{Text: "report", ListID: &list.ID})
	require.NoError(t, err)
	require.NotNil(t, task.ListID)

	require.NoError(t, listSvc.DeleteList(ctx, 1, list.ID))

	// The task survives with its list reference cleared.
	survivor, err := taskRepo.GetByID(ctx, 1, task.ID)
	require.NoError(t, err)
	assert.Nil(t, survivor.ListID)

	assert.ErrorIs(t, listSvc.DeleteList(ctx, 1, list.ID), entities.ErrListNotFound)
}
