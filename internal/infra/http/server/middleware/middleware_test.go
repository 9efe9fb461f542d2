package middleware_test

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/infra/http/server/middleware"
	"github.com/huhyoujung/footballlog-sub002/internal/infra/http/server/middleware/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestIdentify(t *testing.T) {
	tests := []struct {
		name           string
		headers        map[string]string
		roster         func(t *testing.T) *mocks.RosterChecker
		expectedCode   int
		expectedCaller models.Caller
	}{
		{
			name:           "it passes anonymous requests through",
			expectedCode:   http.StatusOK,
			expectedCaller: models.Caller{},
		},
		{
			name:         "it rejects a malformed user header",
			headers:      map[string]string{"X-User-ID": "abc"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "it rejects a malformed team header",
			headers:      map[string]string{"X-User-ID": "4", "X-Team-ID": "-1"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:           "it does not resolve admin rights without a team",
			headers:        map[string]string{"X-User-ID": "4"},
			expectedCode:   http.StatusOK,
			expectedCaller: models.Caller{UserID: 4},
		},
		{
			name:    "it resolves admin rights from the roster",
			headers: map[string]string{"X-User-ID": "4", "X-Team-ID": "9"},
			roster: func(t *testing.T) *mocks.RosterChecker {
				t.Helper()
				m := mocks.NewRosterChecker(t)
				m.On("IsTeamMember", mock.Anything, uint(4), uint(9)).Return(true, nil).Once()
				m.On("IsTeamAdmin", mock.Anything, uint(4), uint(9)).Return(true, nil).Once()
				return m
			},
			expectedCode:   http.StatusOK,
			expectedCaller: models.Caller{UserID: 4, TeamID: 9, IsAdmin: true},
		},
		{
			name:    "it resolves a plain member of the team",
			headers: map[string]string{"X-User-ID": "5", "X-Team-ID": "9"},
			roster: func(t *testing.T) *mocks.RosterChecker {
				t.Helper()
				m := mocks.NewRosterChecker(t)
				m.On("IsTeamMember", mock.Anything, uint(5), uint(9)).Return(true, nil).Once()
				m.On("IsTeamAdmin", mock.Anything, uint(5), uint(9)).Return(false, nil).Once()
				return m
			},
			expectedCode:   http.StatusOK,
			expectedCaller: models.Caller{UserID: 5, TeamID: 9},
		},
		{
			name:    "it rejects a team header from a user outside the team",
			headers: map[string]string{"X-User-ID": "4", "X-Team-ID": "9"},
			roster: func(t *testing.T) *mocks.RosterChecker {
				t.Helper()
				m := mocks.NewRosterChecker(t)
				m.On("IsTeamMember", mock.Anything, uint(4), uint(9)).Return(false, nil).Once()
				return m
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "it fails when the membership lookup fails",
			headers: map[string]string{"X-User-ID": "4", "X-Team-ID": "9"},
			roster: func(t *testing.T) *mocks.RosterChecker {
				t.Helper()
				m := mocks.NewRosterChecker(t)
				m.On("IsTeamMember", mock.Anything, uint(4), uint(9)).Return(false, errors.New("db is down")).Once()
				return m
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:    "it fails when the admin lookup fails",
			headers: map[string]string{"X-User-ID": "4", "X-Team-ID": "9"},
			roster: func(t *testing.T) *mocks.RosterChecker {
				t.Helper()
				m := mocks.NewRosterChecker(t)
				m.On("IsTeamMember", mock.Anything, uint(4), uint(9)).Return(true, nil).Once()
				m.On("IsTeamAdmin", mock.Anything, uint(4), uint(9)).Return(false, errors.New("db is down")).Once()
				return m
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var roster *mocks.RosterChecker
			if tt.roster != nil {
				roster = tt.roster(t)
			}

			gin.SetMode(gin.TestMode)
			r := gin.New()

			var actual models.Caller
			r.GET("/", middleware.Identify(roster), func(c *gin.Context) {
				actual = middleware.CallerFrom(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedCaller, actual)
		})
	}
}

func TestAPIKeyAuth(t *testing.T) {
	secret := "secret"
	h := hmac.New(sha512.New, []byte(secret))
	h.Write([]byte("valid-key"))
	hashed := hex.EncodeToString(h.Sum(nil))

	tests := []struct {
		name         string
		apiKey       string
		expectedCode int
	}{
		{
			name:         "it accepts a known key",
			apiKey:       "valid-key",
			expectedCode: http.StatusOK,
		},
		{
			name:         "it rejects an unknown key",
			apiKey:       "other-key",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "it rejects a missing key",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.GET("/", middleware.APIKeyAuth([]string{hashed}, secret), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.apiKey != "" {
				req.Header.Set("Authorization", tt.apiKey)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestValidateGoogleAuth(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		expectedBody  string
	}{
		{
			name:         "it rejects a missing header",
			expectedBody: "missing authorization header",
		},
		{
			name:          "it rejects a non bearer header",
			authorization: "Basic dXNlcjpwYXNz",
			expectedBody:  "invalid token format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.POST("/", middleware.ValidateGoogleAuth("https://engine.example.com", ""), func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.Contains(t, w.Body.String(), models.CodeUnauthenticated)
		})
	}
}
