// Package publish pushes screener evaluations to downstream consumers over NATS
package publish

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/yourusername/curve-screener/pkg/curve"
)

// Publisher publishes signal snapshots on a NATS subject. Consumers receive
// the snapshot as JSON, one message per evaluation.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// NewPublisher connects to NATS and returns a publisher for the given subject.
func NewPublisher(natsAddr, subject string) (*Publisher, error) {
	conn, err := nats.Connect(natsAddr,
		nats.MaxReconnects(10),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", natsAddr, err)
	}

	return &Publisher{conn: conn, subject: subject}, nil
}

// PublishSnapshot sends one evaluation to the configured subject.
func (p *Publisher) PublishSnapshot(snap *curve.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}
	return nil
}

// Close flushes pending messages and drops the connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Flush()
		p.conn.Close()
	}
}
