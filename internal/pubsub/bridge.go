package pubsub

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/logger"
	"github.com/nats-io/nats.go"
)

// DefaultStreamName is the JetStream stream holding session events
const DefaultStreamName = "TEAM_EVENTS"

// jetStreamBridge publishes events to a JetStream subject and fans every
// message on that subject out to local subscribers, including the ones this
// process published.
type jetStreamBridge struct {
	fanout
	nc      *nats.Conn
	js      nats.JetStreamContext
	sub     *nats.Subscription
	subject string
}

func newJetStreamBridge(nc *nats.Conn, cfg nats.StreamConfig) (*jetStreamBridge, error) {
	if len(cfg.Subjects) != 1 {
		return nil, fmt.Errorf("stream %s must bind exactly one subject", cfg.Name)
	}

	js, err := nc.JetStream()
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	if _, err := js.StreamInfo(cfg.Name); err != nil {
		if !errors.Is(err, nats.ErrStreamNotFound) {
			return nil, fmt.Errorf("failed to look up stream %s: %w", cfg.Name, err)
		}
		if _, err := js.AddStream(&cfg); err != nil {
			return nil, fmt.Errorf("failed to create stream %s: %w", cfg.Name, err)
		}
		logger.Info("JetStream stream created", "stream", cfg.Name, "subject", cfg.Subjects[0])
	}

	b := &jetStreamBridge{
		fanout:  fanout{subscribers: []chan Event{}, buffer: 100},
		nc:      nc,
		js:      js,
		subject: cfg.Subjects[0],
	}

	// Ephemeral consumer: every instance sees every new event
	b.sub, err = js.Subscribe(b.subject, b.handle, nats.ManualAck(), nats.DeliverNew())
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", b.subject, err)
	}
	logger.Debug("Subscribed to JetStream", "subject", b.subject)

	return b, nil
}

func (b *jetStreamBridge) handle(msg *nats.Msg) {
	var event Event
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal event from JetStream", "error", err)
		// Redelivery will not fix a malformed payload
		msg.Term()
		return
	}

	b.broadcast(event)
	msg.Ack()
}

// Publish publishes an event to the JetStream subject
func (b *jetStreamBridge) Publish(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event", "error", err, "event_type", event.Type)
		return
	}

	if _, err := b.js.Publish(b.subject, data); err != nil {
		logger.Error("Failed to publish to NATS", "error", err, "subject", b.subject, "event_type", event.Type)
		return
	}

	logger.Debug("Published event to NATS", "event_type", event.Type, "session_id", event.SessionID())
}

// Connected reports whether the client connection is up
func (b *jetStreamBridge) Connected() bool {
	return b.nc != nil && b.nc.IsConnected()
}

func (b *jetStreamBridge) close() {
	if b.sub != nil {
		if err := b.sub.Unsubscribe(); err != nil {
			logger.Debug("Failed to unsubscribe from JetStream", "error", err)
		}
	}
	b.closeAll()
	if b.nc != nil {
		b.nc.Close()
	}
}
