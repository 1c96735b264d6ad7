package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/cinema-booking-system/internal/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name           string
		result         *redis.Cmd
		wantStatus     int
		wantRetryAfter string
		wantRemaining  string
	}{
		{
			name:          "token available",
			result:        redis.NewCmdResult([]interface{}{int64(1), int64(9), int64(0)}, nil),
			wantStatus:    http.StatusOK,
			wantRemaining: "9",
		},
		{
			name:           "bucket empty",
			result:         redis.NewCmdResult([]interface{}{int64(0), int64(0), int64(1500)}, nil),
			wantStatus:     http.StatusTooManyRequests,
			wantRetryAfter: "2",
			wantRemaining:  "0",
		},
		{
			name:       "redis unavailable",
			result:     redis.NewCmdResult(nil, mocks.MockRedisError{Msg: "connection refused"}),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisClient := new(mocks.MockRedisClient)
			redisClient.On("EvalSha",
				mock.Anything, mock.Anything, []string{"rate_limit:192.0.2.1"},
				mock.Anything, 10, int64(1000), int64(60),
			).Return(tt.result)

			app := newTestApplication(func(a *Application) {
				a.redis = redisClient
				a.config.RateLimit = RateLimitConfig{
					Enabled:        true,
					Capacity:       10,
					RefillInterval: time.Second,
				}
			})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
			r.RemoteAddr = "192.0.2.1:5555"

			app.rateLimit(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantRetryAfter, w.Header().Get("Retry-After"))
			assert.Equal(t, tt.wantRemaining, w.Header().Get("X-RateLimit-Remaining"))
			redisClient.AssertExpectations(t)
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	redisClient := new(mocks.MockRedisClient)

	app := newTestApplication(func(a *Application) {
		a.redis = redisClient
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/movies", nil)

	app.rateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	redisClient.AssertNotCalled(t, "EvalSha")
}

func TestRateLimitKeysOnForwardedAddressOnlyBehindTrustedProxy(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		forwarded  []string
		wantKey    string
	}{
		{
			name:       "direct clients cannot rotate X-Forwarded-For",
			trustProxy: false,
			forwarded:  []string{"198.51.100.1", "198.51.100.2", "203.0.113.7"},
			wantKey:    "rate_limit:192.0.2.1",
		},
		{
			name:       "trusted proxy supplies the client address",
			trustProxy: true,
			forwarded:  []string{"203.0.113.7", "203.0.113.7"},
			wantKey:    "rate_limit:203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			empty := redis.NewCmdResult([]interface{}{int64(0), int64(0), int64(1000)}, nil)

			redisClient := new(mocks.MockRedisClient)
			redisClient.On("EvalSha",
				mock.Anything, mock.Anything, []string{tt.wantKey},
				mock.Anything, 10, int64(1000), int64(60),
			).Return(empty)

			app := newTestApplication(func(a *Application) {
				a.redis = redisClient
				a.config.TrustProxy = tt.trustProxy
				a.config.RateLimit = RateLimitConfig{
					Enabled:        true,
					Capacity:       10,
					RefillInterval: time.Second,
				}
			})

			routes := app.Routes()

			for _, forwarded := range tt.forwarded {
				w := httptest.NewRecorder()
				r := httptest.NewRequest(http.MethodGet, "/api/health", nil)
				r.RemoteAddr = "192.0.2.1:5555"
				r.Header.Set("X-Forwarded-For", forwarded)

				routes.ServeHTTP(w, r)

				assert.Equal(t, http.StatusTooManyRequests, w.Code)
			}

			redisClient.AssertNumberOfCalls(t, "EvalSha", len(tt.forwarded))
		})
	}
}
