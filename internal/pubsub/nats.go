package pubsub

import (
	"fmt"
	"time"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/logger"
	"github.com/nats-io/nats.go"
)

// NATSPubSub implements pub/sub using an external NATS JetStream server
type NATSPubSub struct {
	*jetStreamBridge
}

// NewNATSPubSub connects to natsURL and binds subject to the TEAM_EVENTS stream
func NewNATSPubSub(natsURL, subject string) (*NATSPubSub, error) {
	nc, err := nats.Connect(natsURL,
		nats.Name("futsal-team-maker"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("Disconnected from NATS", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	bridge, err := newJetStreamBridge(nc, nats.StreamConfig{
		Name:     DefaultStreamName,
		Subjects: []string{subject},
		Storage:  nats.FileStorage,
		MaxAge:   24 * time.Hour, // Events only matter while sessions are alive
	})
	if err != nil {
		nc.Close()
		return nil, err
	}

	return &NATSPubSub{jetStreamBridge: bridge}, nil
}

// Close closes the NATS connection and all local subscriptions
func (p *NATSPubSub) Close() {
	p.close()
}
