package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

// DeliveryService pushes a notification that was dispatched earlier, typically from a Cloud Tasks trigger.
type DeliveryService struct {
	pushClient PushClient
	logger     Logger
}

func NewDeliveryService(pushClient PushClient, logger Logger) *DeliveryService {
	return &DeliveryService{pushClient: pushClient, logger: logger}
}

func (s *DeliveryService) Deliver(ctx context.Context, notification models.Notification) error {
	if len(notification.UserIDs) == 0 {
		return models.NewInvalidInputError(errors.New("notification has no recipients"))
	}

	if notification.Title == "" {
		return models.NewInvalidInputError(errors.New("notification title is required"))
	}

	if err := s.pushClient.Push(ctx, notification); err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}

	s.logger.Info().Int("recipients", len(notification.UserIDs)).Str("title", notification.Title).Msg("notification delivered")

	return nil
}

// Dispatch delivers in-process. It is the dispatcher used when no task queue is configured.
func (s *DeliveryService) Dispatch(ctx context.Context, notification models.Notification) error {
	return s.Deliver(ctx, notification)
}
