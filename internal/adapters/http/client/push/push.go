package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/huhyoujung/footballlog-sub002/config"
	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

const (
	pushPath       = "/api/push/send"
	apiKeyHeader   = "X-Api-Key"
	contentTypeKey = "Content-Type"
)

type PushClient struct {
	httpClient HTTPManager
	config     config.Push
	logger     Logger
}

func NewPushClient(httpClient HTTPManager, config config.Push, logger Logger) *PushClient {
	return &PushClient{httpClient: httpClient, config: config, logger: logger}
}

func (c *PushClient) Push(ctx context.Context, notification models.Notification) error {
	payload, err := json.Marshal(NotificationBody{
		UserIDs: notification.UserIDs,
		Title:   notification.Title,
		Body:    notification.Body,
		URL:     notification.URL,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+pushPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}

	req.Header.Set(contentTypeKey, "application/json")
	if c.config.APIKey != "" {
		req.Header.Set(apiKeyHeader, c.config.APIKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push request: %w", err)
	}

	defer func() {
		err := res.Body.Close()
		if err != nil {
			c.logger.Error().Err(err).Msg("couldn't close response body")
		}
	}()

	if res.StatusCode >= http.StatusOK && res.StatusCode <= http.StatusNoContent {
		return nil
	}

	return fmt.Errorf("failed to push notification, status code %d", res.StatusCode)
}
