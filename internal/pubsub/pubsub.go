package pubsub

import (
	"sync"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/logger"
)

// Event types published by the session manager
const (
	SessionCreate  = "session:create"
	SessionDelete  = "session:delete"
	RosterUpdate   = "roster:update"
	TeamsCount     = "teams:count"
	TeamsDetails   = "teams:details"
	TeamsBalance   = "teams:balance"
	TeamsRandomize = "teams:randomize"
	TeamsUndo      = "teams:undo"
	TeamsReset     = "teams:reset"
)

// Event represents a pubsub event
type Event struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// SessionID returns the session the event belongs to, or "" if none
func (e Event) SessionID() string {
	id, _ := e.Payload["sessionId"].(string)
	return id
}

// Publisher is the write side of every implementation in this package
type Publisher interface {
	Publish(Event)
}

// Upstream is an interface for upstream publishers (e.g., NATS)
type Upstream interface {
	Publish(Event)
	Subscribe() chan Event
	Unsubscribe(chan Event)
}

// fanout delivers events to buffered subscriber channels. A full channel
// drops the event instead of blocking the publisher.
type fanout struct {
	mu          sync.RWMutex
	subscribers []chan Event
	buffer      int
}

// Subscribe adds a new subscriber and returns a channel for receiving events
func (f *fanout) Subscribe() chan Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan Event, f.buffer)
	f.subscribers = append(f.subscribers, ch)
	logger.Debug("PubSub: New subscriber added", "total_subscribers", len(f.subscribers))
	return ch
}

// Unsubscribe removes a subscriber and closes its channel
func (f *fanout) Unsubscribe(ch chan Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, sub := range f.subscribers {
		if sub == ch {
			close(ch)
			f.subscribers = append(f.subscribers[:i], f.subscribers[i+1:]...)
			logger.Debug("PubSub: Subscriber removed", "remaining_subscribers", len(f.subscribers))
			break
		}
	}
}

// SubscriberCount returns the number of active local subscribers
func (f *fanout) SubscriberCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscribers)
}

func (f *fanout) broadcast(event Event) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, ch := range f.subscribers {
		select {
		case ch <- event:
		default:
			logger.Warn("PubSub: Skipping slow subscriber", "event_type", event.Type, "session_id", event.SessionID())
		}
	}
}

func (f *fanout) closeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subscribers {
		close(ch)
	}
	f.subscribers = nil
}

// PubSub implements a simple publish-subscribe system
type PubSub struct {
	fanout
	upstream Upstream // Optional upstream publisher (e.g., NATS)
}

// New creates a new PubSub instance
func New() *PubSub {
	return &PubSub{
		fanout: fanout{subscribers: []chan Event{}, buffer: 10},
	}
}

// NewWithUpstream creates a PubSub that bridges to an upstream publisher (e.g., NATS)
// When Publish is called, events are sent to the upstream, which broadcasts to all instances.
// Events from the upstream are forwarded to local subscribers.
func NewWithUpstream(upstream Upstream) *PubSub {
	ps := New()
	ps.upstream = upstream

	ch := upstream.Subscribe()
	go func() {
		for event := range ch {
			ps.broadcast(event)
		}
		logger.Debug("PubSub: Upstream channel closed")
	}()

	return ps
}

// Publish sends an event to all subscribers
// If an upstream is configured, the event is published to the upstream,
// which will broadcast it back to all instances (including this one)
func (ps *PubSub) Publish(event Event) {
	if ps.upstream != nil {
		ps.upstream.Publish(event)
		return
	}
	ps.broadcast(event)
}
