package events

import (
	"context"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

// LogPublisher writes events to the log. It stands in for JetStream when nats is disabled.
type LogPublisher struct {
	logger Logger
}

func NewLogPublisher(logger Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event models.DomainEvent) {
	p.logger.Info().
		Str("type", event.Type).
		Uint("fixture_id", event.FixtureID).
		Interface("payload", event.Payload).
		Msg("domain event")
}
