package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasklight/core/internal/infrastructure/events"
	"github.com/tasklight/core/internal/infrastructure/logger"
)

// EventsHandler streams task events to clients over server-sent events.
// The stream is intentionally unscoped: every connected client sees every
// event and filters on its side.
type EventsHandler struct {
	hub    *events.Hub
	logger *logger.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *events.Hub, logger *logger.Logger) *EventsHandler {
	return &EventsHandler{
		hub:    hub,
		logger: logger,
	}
}

// Stream subscribes the client and forwards events until it disconnects.
func (h *EventsHandler) Stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ch, cancel := h.hub.Subscribe()
	defer cancel()

	h.logger.Debug("Event stream opened", "subscribers", h.hub.Subscribers())

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				h.logger.Error("Event marshal failed", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", ev.Type, payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
