package events

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/nats-io/nats.go"
)

type envelope struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	FixtureID uint      `json:"fixture_id"`
	CreatedAt time.Time `json:"created_at"`
	Payload   any       `json:"payload"`
}

// NewMessage builds the JetStream message of a domain event. The subject is the prefix followed by the event type,
// e.g. matches.goal.recorded.
func NewMessage(subjectPrefix string, event models.DomainEvent) (*nats.Msg, string, error) {
	eventID := uuid.NewString()

	data, err := json.Marshal(envelope{
		EventID:   eventID,
		Type:      event.Type,
		FixtureID: event.FixtureID,
		CreatedAt: event.CreatedAt.UTC(),
		Payload:   event.Payload,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}

	return &nats.Msg{
		Subject: fmt.Sprintf("%s.%s", subjectPrefix, event.Type),
		Data:    data,
		Header: nats.Header{
			"Event-Type": []string{event.Type},
			"Event-ID":   []string{eventID},
			"Fixture-ID": []string{strconv.FormatUint(uint64(event.FixtureID), 10)},
		},
	}, eventID, nil
}
