package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/omxqn/api-application/domain"
)

// Hub fans live bus positions out to WebSocket subscribers. Each client
// watches a single bus; a slow client is dropped rather than allowed to
// stall the rest.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}
	log     *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[uint]map[*Client]struct{}),
		log:     log,
	}
}

// AddClient registers a subscriber for the client's bus.
func (h *Hub) AddClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.BusID] == nil {
		h.clients[c.BusID] = make(map[*Client]struct{})
	}
	h.clients[c.BusID][c] = struct{}{}
}

// RemoveClient drops a subscriber and closes its send channel.
func (h *Hub) RemoveClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.BusID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.Send)
	if len(set) == 0 {
		delete(h.clients, c.BusID)
	}
}

// Publish implements domain.LocationPublisher.
func (h *Hub) Publish(loc *domain.BusLocation) {
	data, err := json.Marshal(loc)
	if err != nil {
		h.log.Warn("failed to marshal location", zap.Error(err))
		return
	}

	h.mu.RLock()
	var stale []*Client
	for c := range h.clients[loc.BusID] {
		select {
		case c.Send <- data:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.RemoveClient(c)
	}
}

// SubscriberCount reports how many clients watch the given bus.
func (h *Hub) SubscriberCount(busID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[busID])
}
