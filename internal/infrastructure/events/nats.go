package events

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/nexuslabs/summary-engine/pkg/config"
)

// Publisher emits summary lifecycle events onto a NATS subject.
type Publisher struct {
	conn   *nats.Conn
	topic  string
	logger *zap.Logger
}

func NewPublisher(cfg *config.Config, logger *zap.Logger) (*Publisher, error) {
	var conn *nats.Conn

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = 15 * time.Second

	connect := func() error {
		var err error
		conn, err = nats.Connect(cfg.Events.NATSURL,
			nats.Name("summary-engine"),
			nats.Timeout(5*time.Second),
			nats.MaxReconnects(-1),
		)
		return err
	}

	if err := backoff.Retry(connect, bo); err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	logger.Info("✅ Connected to NATS", zap.String("url", cfg.Events.NATSURL))
	return &Publisher{conn: conn, topic: cfg.Events.SummaryTopic, logger: logger}, nil
}

// Publish sends payload on the configured subject. Publishing is fire and
// forget; delivery failures surface as errors for the caller to log.
func (p *Publisher) Publish(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.conn.Publish(p.topic, payload); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Drain() //nolint:errcheck
	}
}

// NoopPublisher satisfies the publisher contract when no broker is
// configured; events are dropped after a debug log.
type NoopPublisher struct {
	Logger *zap.Logger
}

func (n *NoopPublisher) Publish(_ context.Context, payload []byte) error {
	if n.Logger != nil {
		n.Logger.Debug("event broker disabled, dropping event", zap.Int("bytes", len(payload)))
	}
	return nil
}
