package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/huhyoujung/footballlog-sub002/config"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/http/server/handler"
	"github.com/huhyoujung/footballlog-sub002/internal/infra/http/server"
	"github.com/huhyoujung/footballlog-sub002/internal/infra/http/server/middleware/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Server{App: config.App{
		SecretKey:       "secret",
		Timeout:         time.Second,
		TriggersTimeout: time.Second,
		AllowedOrigins:  []string{"https://footballlog.app"},
	}}

	h, err := server.NewServer(cfg, server.Handlers{
		FixtureHandler:    handler.NewFixtureHandler(nil),
		MatchEventHandler: handler.NewMatchEventHandler(nil),
		TimerHandler:      handler.NewTimerHandler(nil),
		RefereeHandler:    handler.NewRefereeHandler(nil),
		TriggerHandler:    handler.NewTriggerHandler(nil),
	}, mocks.NewRosterChecker(t))
	require.NoError(t, err)

	tests := []struct {
		name         string
		method       string
		path         string
		headers      map[string]string
		expectedCode int
	}{
		{
			name:         "it reports health without authentication",
			method:       http.MethodGet,
			path:         "/health",
			expectedCode: http.StatusOK,
		},
		{
			name:         "it requires an api key on v1 routes",
			method:       http.MethodGet,
			path:         "/v1/fixtures/1",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "it requires a google token on triggers",
			method:       http.MethodPost,
			path:         "/v1/triggers/notification",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "it answers cors preflight for allowed origins",
			method: http.MethodOptions,
			path:   "/v1/fixtures/1/goals",
			headers: map[string]string{
				"Origin":                        "https://footballlog.app",
				"Access-Control-Request-Method": http.MethodPost,
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
