package ws

import (
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/omxqn/api-application/domain"
)

func newSubscriber(busID uint) *Client {
	// Tests drive the send channel directly; no network connection needed.
	return &Client{BusID: busID, Send: make(chan []byte, 16)}
}

func TestHub_PublishReachesSubscribers(t *testing.T) {
	hub := NewHub(zap.NewNop())

	watcher := newSubscriber(5)
	other := newSubscriber(6)
	hub.AddClient(watcher)
	hub.AddClient(other)

	hub.Publish(&domain.BusLocation{BusID: 5, Latitude: 23.588, Longitude: 58.408, ReportedAt: time.Now()})

	select {
	case msg := <-watcher.Send:
		var loc domain.BusLocation
		if err := json.Unmarshal(msg, &loc); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if loc.BusID != 5 || loc.Latitude != 23.588 {
			t.Errorf("unexpected location %+v", loc)
		}
	default:
		t.Fatal("expected the bus 5 watcher to receive the update")
	}

	select {
	case <-other.Send:
		t.Fatal("bus 6 watcher must not receive bus 5 updates")
	default:
	}
}

func TestHub_RemoveClient(t *testing.T) {
	hub := NewHub(zap.NewNop())

	c := newSubscriber(5)
	hub.AddClient(c)
	if got := hub.SubscriberCount(5); got != 1 {
		t.Fatalf("expected 1 subscriber, got %d", got)
	}

	hub.RemoveClient(c)
	if got := hub.SubscriberCount(5); got != 0 {
		t.Fatalf("expected 0 subscribers, got %d", got)
	}
	if _, open := <-c.Send; open {
		t.Error("expected the send channel to be closed")
	}

	// Removing twice must not panic or double-close.
	hub.RemoveClient(c)
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := NewHub(zap.NewNop())

	slow := &Client{BusID: 5, Send: make(chan []byte)} // no buffer, never drained
	healthy := newSubscriber(5)
	hub.AddClient(slow)
	hub.AddClient(healthy)

	hub.Publish(&domain.BusLocation{BusID: 5, Latitude: 1, Longitude: 1})

	if got := hub.SubscriberCount(5); got != 1 {
		t.Fatalf("expected the slow client to be dropped, have %d subscribers", got)
	}
	select {
	case <-healthy.Send:
	default:
		t.Error("healthy client must still receive the update")
	}
}
