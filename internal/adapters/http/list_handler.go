package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tasklight/core/internal/application/services"
	"github.com/tasklight/core/internal/infrastructure/logger"
	"github.com/tasklight/core/internal/ports"
)

// ListHandler handles list ("group") requests
type ListHandler struct {
	listService *services.ListService
	logger      *logger.Logger
}

// NewListHandler creates a new list handler
func NewListHandler(listService *services.ListService, logger *logger.Logger) *ListHandler {
	return &ListHandler{
		listService: listService,
		logger:      logger,
	}
}

// ListLists returns the caller's lists
func (h *ListHandler) ListLists(c echo.Context) error {
	lists, err := h.listService.ListLists(c.Request().Context(), ownerID(c))
	if err != nil {
		h.logger.Error("List lists failed", "error", err)
		return mapError(err)
	}

	return c.JSON(http.StatusOK, lists)
}

// CreateList creates a list for the caller
func (h *ListHandler) CreateList(c echo.Context) error {
	var req ports.CreateListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	list, err := h.listService.CreateList(c.Request().Context(), ownerID(c), req)
	if err != nil {
		h.logger.Warn("Create list failed", "error", err, "name", req.Name)
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, list)
}

// UpdateList partially updates the caller's list
func (h *ListHandler) UpdateList(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req ports.UpdateListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	if _, err := h.listService.UpdateList(c.Request().Context(), ownerID(c), id, req); err != nil {
		h.logger.Warn("Update list failed", "error", err, "list_id", id)
		return mapError(err)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "List updated", ID: id})
}

// DeleteList deletes the caller's list; member tasks lose their list
// reference but survive.
func (h *ListHandler) DeleteList(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.listService.DeleteList(c.Request().Context(), ownerID(c), id); err != nil {
		h.logger.Warn("Delete list failed", "error", err, "list_id", id)
		return mapError(err)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "List deleted"})
}

func pathID(c echo.Context) (int64, *echo.HTTPError) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
