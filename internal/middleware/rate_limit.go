package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter provides rate limiting functionality using Redis
type RateLimiter struct {
	redis *redis.Client
}

// NewRateLimiter connects to Redis and verifies the connection.
func NewRateLimiter(ctx context.Context, redisURL string) (*RateLimiter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRateLimiterWithClient(client), nil
}

func NewRateLimiterWithClient(client *redis.Client) *RateLimiter {
	return &RateLimiter{redis: client}
}

// KeyFunc names the bucket a request is counted against.
type KeyFunc func(c *gin.Context) string

// ByClientIP counts each client address separately.
func ByClientIP(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// ByActingUser counts requests against the user the store currently acts
// for, so switching users switches buckets.
func ByActingUser(currentUserID func() string) KeyFunc {
	return func(c *gin.Context) string {
		return "user:" + currentUserID() + ":" + c.ClientIP()
	}
}

// RateLimit allows maxRequests per route and key within a window of the
// given number of seconds. Redis errors let the request through.
func (rl *RateLimiter) RateLimit(maxRequests, window int, keyFor KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", c.FullPath(), keyFor(c))

		count, ttl, err := rl.hit(c.Request.Context(), key, time.Duration(window)*time.Second)
		if err != nil {
			_ = c.Error(fmt.Errorf("rate limiter error: %w", err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		if count > int64(maxRequests) {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(ttl)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "RATE_LIMIT_EXCEEDED",
					"message": "Too many requests. Please try again later.",
				},
			})
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(maxRequests-int(count)))
		c.Next()
	}
}

// hit counts one request against key and reports the window's remaining TTL.
// The window starts with the first request.
func (rl *RateLimiter) hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := rl.redis.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if count == 1 {
		if err := rl.redis.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		return count, window, nil
	}

	ttl, err := rl.redis.TTL(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if ttl < 0 {
		// The key lost its expiry; restart the window.
		if err := rl.redis.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		ttl = window
	}
	return count, ttl, nil
}

func retryAfterSeconds(ttl time.Duration) int {
	secs := int(math.Ceil(ttl.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// Close closes the Redis connection
func (rl *RateLimiter) Close() error {
	return rl.redis.Close()
}
