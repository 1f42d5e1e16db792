package stream

import (
	"sync"

	"github.com/google/uuid"
	"github.com/tasarim-galerisi/backend/internal/models"
)

// subscriberBuffer bounds how many snapshots may queue per subscriber before
// newer pushes start replacing older ones.
const subscriberBuffer = 4

// Hub fans out design collection snapshots to SSE subscribers. Every payload
// is a full authoritative snapshot, never a delta, so dropping an older queued
// snapshot for a slow subscriber loses nothing once the next one arrives.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uuid.UUID]chan []models.Design
	latest      []models.Design
	hasSnapshot bool
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{subscribers: make(map[uuid.UUID]chan []models.Design)}
}

// Subscribe registers a new subscriber. If a snapshot has already been seen it
// is queued immediately so the subscriber does not wait for the next change.
func (h *Hub) Subscribe() (uuid.UUID, <-chan []models.Design) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.New()
	ch := make(chan []models.Design, subscriberBuffer)
	if h.hasSnapshot {
		ch <- h.latest
	}
	h.subscribers[id] = ch
	return id, ch
}

// Unsubscribe releases a subscriber. Must be called when the consuming context
// ends so a disposed consumer stops receiving updates.
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

// Broadcast delivers a snapshot to every subscriber without blocking: a full
// subscriber queue gives up its oldest snapshot for the new one.
func (h *Hub) Broadcast(designs []models.Design) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = designs
	h.hasSnapshot = true
	for _, ch := range h.subscribers {
		select {
		case ch <- designs:
		default:
			// Queue full: replace the oldest queued snapshot with this one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- designs:
			default:
			}
		}
	}
}

// Latest returns the last broadcast snapshot, or false when none arrived yet
func (h *Hub) Latest() ([]models.Design, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest, h.hasSnapshot
}

// SubscriberCount reports how many subscribers are currently attached
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
