package push_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/huhyoujung/footballlog-sub002/config"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/http/client/push"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/http/client/push/mocks"
	loggerinternal "github.com/huhyoujung/footballlog-sub002/internal/infra/logger"
	"github.com/huhyoujung/footballlog-sub002/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPushClient_Push(t *testing.T) {
	ctx := context.Background()

	cfg := config.Push{
		BaseURL: gofakeit.URL(),
		APIKey:  gofakeit.Password(true, true, true, false, false, 16),
	}
	notification := testutils.FakeNotification()

	requestBody, err := json.Marshal(push.NotificationBody{
		UserIDs: notification.UserIDs,
		Title:   notification.Title,
		Body:    notification.Body,
		URL:     notification.URL,
	})
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/api/push/send", bytes.NewReader(requestBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", cfg.APIKey)

	matchesRequest := func(t *testing.T) any {
		return mock.MatchedBy(func(actual *http.Request) bool {
			return testutils.CompareRequest(t, req, actual)
		})
	}

	tests := []struct {
		name        string
		httpManager func(t *testing.T) push.HTTPManager
		expectedErr error
	}{
		{
			name: "success - it returns no error if response code is 2xx",
			httpManager: func(t *testing.T) push.HTTPManager {
				t.Helper()
				httpManager := mocks.NewHTTPManager(t)
				httpManager.
					On("Do", matchesRequest(t)).
					Return(&http.Response{StatusCode: http.StatusAccepted, Body: http.NoBody}, nil).
					Once()
				return httpManager
			},
		},
		{
			name: "it returns an error when fails to make a request",
			httpManager: func(t *testing.T) push.HTTPManager {
				t.Helper()
				httpManager := mocks.NewHTTPManager(t)
				httpManager.
					On("Do", matchesRequest(t)).
					Return(nil, errors.New("some error")).
					Once()
				return httpManager
			},
			expectedErr: fmt.Errorf("failed to send push request: %w", errors.New("some error")),
		},
		{
			name: "it returns an error when response code is not 2xx",
			httpManager: func(t *testing.T) push.HTTPManager {
				t.Helper()
				httpManager := mocks.NewHTTPManager(t)
				httpManager.
					On("Do", matchesRequest(t)).
					Return(&http.Response{StatusCode: http.StatusBadGateway, Body: http.NoBody}, nil).
					Once()
				return httpManager
			},
			expectedErr: fmt.Errorf("failed to push notification, status code %d", http.StatusBadGateway),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := push.NewPushClient(tt.httpManager(t), cfg, loggerinternal.SetupLogger())

			err := client.Push(ctx, notification)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
