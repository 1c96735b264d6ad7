package app

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "rate_limit"

// tokenBucketScript refills the bucket stored at KEYS[1] and takes one token
// from it. It returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local interval_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

local elapsed = math.max(0, now_ms - last_refill)
local intervals = math.floor(elapsed / interval_ms)
if intervals > 0 then
	tokens = math.min(capacity, tokens + intervals)
	last_refill = last_refill + intervals * interval_ms
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return {allowed, tokens, retry_after_ms}
`)

// rateLimit applies a per client token bucket kept in Redis. Requests pass
// through when the limiter is disabled or Redis cannot be reached.
func (app *Application) rateLimit(next http.Handler) http.Handler {
	cfg := app.config.RateLimit
	if !cfg.Enabled || app.redis == nil {
		return next
	}

	interval := cfg.RefillInterval
	if interval <= 0 {
		interval = time.Second
	}

	ttl := max(time.Duration(cfg.Capacity)*interval, time.Minute)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := fmt.Sprintf("%s:%s", rateLimitKeyPrefix, clientIP(r))

		res, err := tokenBucketScript.Run(
			r.Context(),
			app.redis,
			[]string{key},
			time.Now().UnixMilli(),
			cfg.Capacity,
			interval.Milliseconds(),
			int64(ttl/time.Second),
		).Int64Slice()
		if err != nil || len(res) != 3 {
			app.contextGetLogger(r).Warn("rate limiter unavailable", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res[1], 10))

		if res[0] != 1 {
			retryAfter := int(math.Ceil(float64(res[2]) / 1000))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			app.metrics.rateLimitRejected(r.Context())
			app.rateLimitExceededResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
