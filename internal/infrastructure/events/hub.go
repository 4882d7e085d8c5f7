// Package events carries best-effort task notifications to connected
// clients. Every subscriber receives every event regardless of who owns
// the task; receivers filter on their side. There is no delivery
// guarantee and no replay after a reconnect.
package events

import (
	"sync"

	"github.com/tasklight/core/internal/domain/entities"
)

// Event types published by the task handlers.
const (
	TaskCreated = "taskCreated"
	TaskDeleted = "taskDeleted"
)

// Event is one broadcast message.
type Event struct {
	Type string         `json:"type"`
	Task *entities.Task `json:"task,omitempty"`
	ID   int64          `json:"id,omitempty"`
}

// Hub fans events out to all current subscribers. Subscribers that fall
// behind their buffer are dropped rather than blocking the publisher.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber and returns its channel plus a
// cancel function. Cancel is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish sends the event to every subscriber whose buffer has room.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			// Slow consumer; skip rather than block.
		}
	}
}

// Subscribers reports the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
