package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasklight/core/internal/application/services"
	"github.com/tasklight/core/internal/infrastructure/events"
	"github.com/tasklight/core/internal/infrastructure/logger"
	"github.com/tasklight/core/internal/ports"
)

// TaskHandler handles task requests
type TaskHandler struct {
	taskService *services.TaskService
	hub         *events.Hub
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *services.TaskService, hub *events.Hub, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		hub:         hub,
		logger:      logger,
	}
}

// ListTasks returns every task owned by the caller
func (h *TaskHandler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context(), ownerID(c))
	if err != nil {
		h.logger.Error("List tasks failed", "error", err)
		return mapError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a task for the caller
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), ownerID(c), req)
	if err != nil {
		h.logger.Warn("Create task failed", "error", err)
		return mapError(err)
	}

	h.hub.Publish(events.Event{Type: events.TaskCreated, Task: task})

	return c.JSON(http.StatusCreated, task)
}

// UpdateTask partially updates the caller's task
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, herr := pathID(c)
	if herr != nil {
		return herr
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	_, changes, err := h.taskService.UpdateTask(c.Request().Context(), ownerID(c), id, req)
	if err != nil {
		h.logger.Warn("Update task failed", "error", err, "task_id", id)
		return mapError(err)
	}

	return c.JSON(http.StatusOK, ports.UpdateResponse{
		Message: "Task updated",
		ID:      id,
		Changes: changes,
	})
}

// DeleteTask deletes the caller's task
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, herr := pathID(c)
	if herr != nil {
		return herr
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), ownerID(c), id); err != nil {
		h.logger.Warn("Delete task failed", "error", err, "task_id", id)
		return mapError(err)
	}

	h.hub.Publish(events.Event{Type: events.TaskDeleted, ID: id})

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Task deleted"})
}
