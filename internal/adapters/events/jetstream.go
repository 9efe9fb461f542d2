package events

import (
	"context"
	"fmt"
	"time"

	"github.com/huhyoujung/footballlog-sub002/config"
	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamMaxAge     = 7 * 24 * time.Hour
	duplicatesWindow = 2 * time.Hour
)

type JetStreamPublisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	config config.Nats
	logger Logger
}

func NewJetStreamPublisher(ctx context.Context, cfg config.Nats, logger Logger) (*JetStreamPublisher, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Error().Err(err).Msg("nats disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info().Str("url", nc.ConnectedUrl()).Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	p := &JetStreamPublisher{nc: nc, js: js, config: cfg, logger: logger}

	if err := p.ensureStream(ctx); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream: %w", err)
	}

	return p, nil
}

func (p *JetStreamPublisher) ensureStream(ctx context.Context) error {
	_, err := p.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        p.config.Stream,
		Description: "match coordination and live scoring events",
		Subjects:    []string{p.config.SubjectPrefix + ".>"},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      streamMaxAge,
		Storage:     jetstream.FileStorage,
		Duplicates:  duplicatesWindow,
	})
	if err != nil {
		return fmt.Errorf("failed to create or update stream %s: %w", p.config.Stream, err)
	}

	return nil
}

// Publish sends the event to the stream. Failures are logged; the state change the event reports is already
// committed.
func (p *JetStreamPublisher) Publish(ctx context.Context, event models.DomainEvent) {
	msg, eventID, err := NewMessage(p.config.SubjectPrefix, event)
	if err != nil {
		p.logger.Error().Err(err).Str("type", event.Type).Uint("fixture_id", event.FixtureID).Msg("failed to build event message")
		return
	}

	ack, err := p.js.PublishMsg(ctx, msg, jetstream.WithMsgID(eventID), jetstream.WithExpectStream(p.config.Stream))
	if err != nil {
		p.logger.Error().Err(err).Str("subject", msg.Subject).Uint("fixture_id", event.FixtureID).Msg("failed to publish event")
		return
	}

	p.logger.Debug().
		Str("subject", msg.Subject).
		Str("event_id", eventID).
		Uint64("sequence", ack.Sequence).
		Msg("event published")
}

func (p *JetStreamPublisher) Close() {
	p.nc.Close()
}
