package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/http/server/handler"
	"github.com/huhyoujung/footballlog-sub002/internal/adapters/http/server/handler/mocks"
	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/timer"
	"github.com/huhyoujung/footballlog-sub002/internal/infra/http/server/middleware"
	"github.com/huhyoujung/footballlog-sub002/testutils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRouter(caller models.Caller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CallerKey, caller)
		c.Next()
	})

	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestMatchEventHandler_RecordGoal(t *testing.T) {
	caller := models.Caller{UserID: uint(gofakeit.Uint8()) + 1, TeamID: 1}
	validBody := `{"quarter": 1, "minute": 12, "scoring_team": "TEAM_A"}`

	recorded := &models.RecordedGoal{
		Goal:  models.GoalEvent{ID: 7, FixtureID: 3, Quarter: 1, ScoringTeam: models.TeamA, RecordedBy: caller.UserID},
		Score: models.Score{TeamAScore: 1},
	}

	tests := []struct {
		name         string
		path         string
		body         string
		service      func(t *testing.T) *mocks.MatchEventService
		expectedCode int
		expectedBody string
	}{
		{
			name:         "it returns bad request when body is invalid",
			path:         "/v1/fixtures/3/goals",
			body:         `{"quarter": 0, "scoring_team": "TEAM_C"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: models.CodeInvalidRequest,
		},
		{
			name: "it records a goal through the fixture path",
			path: "/v1/fixtures/3/goals",
			body: validBody,
			service: func(t *testing.T) *mocks.MatchEventService {
				t.Helper()
				m := mocks.NewMatchEventService(t)
				m.On("RecordGoal", mock.Anything, caller, models.MatchAccess{FixtureID: 3}, mock.MatchedBy(func(r models.RecordGoalRequest) bool {
					return r.Quarter == 1 && *r.Minute == 12 && r.ScoringTeam == models.TeamA
				})).Return(recorded, nil).Once()
				return m
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"team_a_score":1`,
		},
		{
			name: "it records a goal through the token path",
			path: "/v1/live/secret-token/goals",
			body: validBody,
			service: func(t *testing.T) *mocks.MatchEventService {
				t.Helper()
				m := mocks.NewMatchEventService(t)
				m.On("RecordGoal", mock.Anything, caller, models.MatchAccess{Token: "secret-token"}, mock.Anything).Return(recorded, nil).Once()
				return m
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":7`,
		},
		{
			name: "it maps forbidden error",
			path: "/v1/live/secret-token/goals",
			body: validBody,
			service: func(t *testing.T) *mocks.MatchEventService {
				t.Helper()
				m := mocks.NewMatchEventService(t)
				m.On("RecordGoal", mock.Anything, caller, mock.Anything, mock.Anything).
					Return(nil, models.NewForbiddenError(errors.New("caller's team does not play in this match"))).Once()
				return m
			},
			expectedCode: http.StatusForbidden,
			expectedBody: models.CodeForbidden,
		},
		{
			name: "it maps expired error",
			path: "/v1/live/secret-token/goals",
			body: validBody,
			service: func(t *testing.T) *mocks.MatchEventService {
				t.Helper()
				m := mocks.NewMatchEventService(t)
				m.On("RecordGoal", mock.Anything, caller, mock.Anything, mock.Anything).
					Return(nil, models.NewExpiredError(errors.New("scoring token is expired"))).Once()
				return m
			},
			expectedCode: http.StatusGone,
			expectedBody: models.CodeExpired,
		},
		{
			name: "it maps conflict error",
			path: "/v1/fixtures/3/goals",
			body: validBody,
			service: func(t *testing.T) *mocks.MatchEventService {
				t.Helper()
				m := mocks.NewMatchEventService(t)
				m.On("RecordGoal", mock.Anything, caller, mock.Anything, mock.Anything).
					Return(nil, models.NewConflictError(errors.New("match is not in progress"))).Once()
				return m
			},
			expectedCode: http.StatusConflict,
			expectedBody: models.CodeConflict,
		},
		{
			name: "it maps unexpected error to internal server error",
			path: "/v1/fixtures/3/goals",
			body: validBody,
			service: func(t *testing.T) *mocks.MatchEventService {
				t.Helper()
				m := mocks.NewMatchEventService(t)
				m.On("RecordGoal", mock.Anything, caller, mock.Anything, mock.Anything).
					Return(nil, errors.New("connection reset")).Once()
				return m
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: models.CodeInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var service *mocks.MatchEventService
			if tt.service != nil {
				service = tt.service(t)
			}

			h := handler.NewMatchEventHandler(service)
			r := newRouter(caller)
			r.POST("/v1/fixtures/:id/goals", h.RecordGoal)
			r.POST("/v1/live/:token/goals", h.RecordGoal)

			w := serve(r, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestFixtureHandler_AcceptChallenge(t *testing.T) {
	caller := models.Caller{UserID: 2, TeamID: 20, IsAdmin: true}
	guestID := uint(11)
	scoring := gofakeit.UUID()
	expiresAt := testutils.FakeTime().Add(24 * time.Hour)

	tests := []struct {
		name         string
		service      func(t *testing.T) *mocks.ChallengeService
		expectedCode int
		expectedBody string
	}{
		{
			name: "it maps not found error",
			service: func(t *testing.T) *mocks.ChallengeService {
				t.Helper()
				m := mocks.NewChallengeService(t)
				m.On("Accept", mock.Anything, caller, "abc").
					Return(nil, models.NewResourceNotFoundError(errors.New("challenge not found"))).Once()
				return m
			},
			expectedCode: http.StatusNotFound,
			expectedBody: models.CodeResourceNotFound,
		},
		{
			name: "it maps already exists error",
			service: func(t *testing.T) *mocks.ChallengeService {
				t.Helper()
				m := mocks.NewChallengeService(t)
				m.On("Accept", mock.Anything, caller, "abc").
					Return(nil, models.NewResourceAlreadyExistsError(errors.New("linked fixture already exists"))).Once()
				return m
			},
			expectedCode: http.StatusConflict,
			expectedBody: models.CodeAlreadyExists,
		},
		{
			name: "it returns both ends of the pair",
			service: func(t *testing.T) *mocks.ChallengeService {
				t.Helper()
				m := mocks.NewChallengeService(t)
				m.On("Accept", mock.Anything, caller, "abc").Return(&models.FixturePair{
					Host: models.Fixture{
						ID:                    10,
						TeamID:                1,
						MatchStatus:           models.Confirmed,
						PairRole:              models.HostRole,
						LinkedFixtureID:       &guestID,
						ScoringToken:          &scoring,
						ScoringTokenExpiresAt: &expiresAt,
					},
					Guest: &models.Fixture{ID: guestID, TeamID: 20, MatchStatus: models.Confirmed, PairRole: models.GuestRole},
				}, nil).Once()
				return m
			},
			expectedCode: http.StatusOK,
			expectedBody: `"pair_role":"GUEST"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewFixtureHandler(tt.service(t))
			r := newRouter(caller)
			r.POST("/v1/challenges/:token/accept", h.AcceptChallenge)

			w := serve(r, http.MethodPost, "/v1/challenges/abc/accept", "")

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestFixtureHandler_RejectChallenge(t *testing.T) {
	caller := models.Caller{UserID: 2, TeamID: 20, IsAdmin: true}
	reason := "pitch unavailable"

	tests := []struct {
		name         string
		body         string
		expected     models.RejectChallengeRequest
		expectedCode int
	}{
		{
			name:         "it rejects without a body",
			expected:     models.RejectChallengeRequest{Token: "abc"},
			expectedCode: http.StatusOK,
		},
		{
			name:         "it passes the reason through",
			body:         `{"reason": "pitch unavailable"}`,
			expected:     models.RejectChallengeRequest{Token: "abc", Reason: &reason},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewChallengeService(t)
			service.On("Reject", mock.Anything, caller, tt.expected).
				Return(&models.Fixture{ID: 10, MatchStatus: models.Draft}, nil).Once()

			h := handler.NewFixtureHandler(service)
			r := newRouter(caller)
			r.POST("/v1/challenges/:token/reject", h.RejectChallenge)

			w := serve(r, http.MethodPost, "/v1/challenges/abc/reject", tt.body)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), `"match_status":"DRAFT"`)
		})
	}
}

func TestTimerHandler_Configure(t *testing.T) {
	caller := models.Caller{UserID: 2, TeamID: 1, IsAdmin: true}

	tests := []struct {
		name         string
		body         string
		service      func(t *testing.T) *mocks.TimerService
		expectedCode int
		expectedBody string
	}{
		{
			name: "it configures a custom format",
			body: `{"format": {"quarter_count": 2, "quarter_minutes": 20, "halftime_minutes": 10}}`,
			service: func(t *testing.T) *mocks.TimerService {
				t.Helper()
				m := mocks.NewTimerService(t)
				format := models.MatchFormat{QuarterCount: 2, QuarterMinutes: 20, HalftimeMinutes: 10}
				m.On("Configure", mock.Anything, caller, models.ConfigureTimerRequest{FixtureID: 5, Format: &format}).
					Return(&timer.MatchClock{FixtureID: 5, Format: format}, nil).Once()
				return m
			},
			expectedCode: http.StatusOK,
			expectedBody: `"quarter_minutes":20`,
		},
		{
			name: "it maps invalid input error",
			body: `{"format_name": "rugby"}`,
			service: func(t *testing.T) *mocks.TimerService {
				t.Helper()
				m := mocks.NewTimerService(t)
				m.On("Configure", mock.Anything, caller, models.ConfigureTimerRequest{FixtureID: 5, FormatName: "rugby"}).
					Return(nil, models.NewInvalidInputError(errors.New(`match format "rugby" is unknown`))).Once()
				return m
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: models.CodeUnprocessableContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewTimerHandler(tt.service(t))
			r := newRouter(caller)
			r.PUT("/v1/fixtures/:id/timer", h.Configure)

			w := serve(r, http.MethodPut, "/v1/fixtures/5/timer", tt.body)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestTriggerHandler_DeliverNotification(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      func(t *testing.T) *mocks.NotificationDeliveryService
		expectedCode int
	}{
		{
			name:         "it returns bad request for malformed body",
			body:         `{"user_ids": "nope"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "it delivers the notification",
			body: `{"user_ids": [1, 2], "title": "Challenge received", "body": "Eagles challenged you", "url": "/fixtures/3"}`,
			service: func(t *testing.T) *mocks.NotificationDeliveryService {
				t.Helper()
				m := mocks.NewNotificationDeliveryService(t)
				m.On("Deliver", mock.Anything, models.Notification{
					UserIDs: []uint{1, 2},
					Title:   "Challenge received",
					Body:    "Eagles challenged you",
					URL:     "/fixtures/3",
				}).Return(nil).Once()
				return m
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var service *mocks.NotificationDeliveryService
			if tt.service != nil {
				service = tt.service(t)
			}

			h := handler.NewTriggerHandler(service)
			r := newRouter(models.Caller{})
			r.POST("/v1/triggers/notification", h.DeliverNotification)

			w := serve(r, http.MethodPost, "/v1/triggers/notification", tt.body)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
