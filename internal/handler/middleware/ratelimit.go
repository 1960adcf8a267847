package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rincon-reservas/internal/handler/httperr"
	"rincon-reservas/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	MsgTooManyRequests = "Demasiadas solicitudes. Inténtalo de nuevo en unos segundos."

	HeaderRateLimit     = "X-RateLimit-Limit"
	HeaderRateRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter    = "Retry-After"
)

// KEYS[1] bucket; ARGV now_ms, capacity, interval_ms, ttl_seconds.
// Returns {allowed, remaining, retry_after_ms}.
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

if interval_ms > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + intervals)
		last_refill = last_refill + (intervals * interval_ms)
	end
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

return { allowed, tokens, retry_after_ms }
`)

// NewRateLimiter limits each client IP per route with a Redis token bucket.
// It passes everything through when disabled or when Redis is not configured,
// and fails open on Redis errors.
func NewRateLimiter(cfg config.RateLimitConfig, prefix string, rdb *redis.Client) gin.HandlerFunc {
	if !cfg.Enabled || rdb == nil || cfg.Capacity <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	ttl := int64(math.Ceil((time.Duration(cfg.Capacity) * cfg.RefillInterval).Seconds()))
	if ttl < 1 {
		ttl = 1
	}

	return func(c *gin.Context) {
		key := rateKey(prefix, c)
		args := []any{
			time.Now().UnixMilli(),
			cfg.Capacity,
			cfg.RefillInterval.Milliseconds(),
			ttl,
		}

		vals, err := tokenBucketScript.Run(c.Request.Context(), rdb, []string{key}, args...).Int64Slice()
		if err != nil || len(vals) != 3 {
			slog.Warn("rate limiter unavailable, allowing request", "key", key, "error", fmt.Sprint(err))
			c.Next()
			return
		}
		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]

		c.Header(HeaderRateLimit, strconv.Itoa(cfg.Capacity))
		c.Header(HeaderRateRemaining, strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			c.Header(HeaderRetryAfter, strconv.Itoa(max(secs, 0)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				httperr.NewResponse(http.StatusTooManyRequests, MsgTooManyRequests))
			return
		}
		c.Next()
	}
}

func rateKey(prefix string, c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return strings.Join([]string{prefix, "ratelimit", "ip", ip, "route", c.Request.Method + " " + c.FullPath()}, ":")
}
