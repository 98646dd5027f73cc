package mocks

import (
	"sync"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/logger"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/pubsub"
)

// MockNATSPubSub provides an in-memory stand-in for NATS JetStream. It keeps
// every published event so tests can assert on them.
type MockNATSPubSub struct {
	*pubsub.PubSub

	mu     sync.Mutex
	events []pubsub.Event
}

// NewMockNATSPubSub creates a mock NATS pub/sub using the in-memory implementation
func NewMockNATSPubSub() *MockNATSPubSub {
	logger.Info("Using MOCK NATS/JetStream (in-memory pub/sub) for local development")

	return &MockNATSPubSub{
		PubSub: pubsub.New(),
	}
}

// Publish records the event and delivers it to local subscribers
func (m *MockNATSPubSub) Publish(event pubsub.Event) {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()

	m.PubSub.Publish(event)
}

// Events returns the published events in order
func (m *MockNATSPubSub) Events() []pubsub.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]pubsub.Event(nil), m.events...)
}

// Types returns the types of the published events in order
func (m *MockNATSPubSub) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	types := make([]string, len(m.events))
	for i, e := range m.events {
		types[i] = e.Type
	}
	return types
}

// Close is a no-op for mock
func (m *MockNATSPubSub) Close() {
	// No cleanup needed for in-memory
}
