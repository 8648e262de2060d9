package middleware

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/metatx/transactions-api/internal/logger"
	"github.com/metatx/transactions-api/internal/types/api"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	rateLimitedCode = "rate_limited"
	idleLimiterTTL  = 10 * time.Minute
)

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess atomic.Int64
}

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	limiters        *xsync.MapOf[string, *limiterEntry]
	rate            rate.Limit
	burst           int
	cleanupInterval time.Duration
	done            chan struct{}
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with the given burst per
// client and starts the idle limiter cleanup. Call Stop to end it.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters:        xsync.NewMapOf[string, *limiterEntry](),
		rate:            rate.Limit(requestsPerSecond),
		burst:           burst,
		cleanupInterval: 5 * time.Minute,
		done:            make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Stop() {
	close(rl.done)
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.limiters.Range(func(key string, entry *limiterEntry) bool {
				if now.Sub(time.Unix(0, entry.lastAccess.Load())) > idleLimiterTTL {
					rl.limiters.Delete(key)
				}
				return true
			})
		}
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	entry, _ := rl.limiters.LoadOrCompute(key, func() *limiterEntry {
		return &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
	})
	entry.lastAccess.Store(time.Now().UnixNano())
	return entry.limiter
}

func clientIdentifier(c *gin.Context) string {
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		return "ip:" + forwardedFor
	}
	if clientIP := c.ClientIP(); clientIP != "" {
		return "ip:" + clientIP
	}
	return "ip:unknown"
}

// Middleware rejects requests over the client's budget with 429. Health and metrics
// checks are never limited.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		clientID := clientIdentifier(c)
		limiter := rl.getLimiter(clientID)
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%g", float64(rl.rate)))

		if !limiter.Allow() {
			logger.OrGlobal(nil).Warn("Rate limit exceeded",
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("correlation_id", GetCorrelationID(c)))

			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{
				OK:      false,
				Message: "Too many requests. Please try again later.",
				Code:    rateLimitedCode,
			})
			return
		}

		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", int(limiter.Tokens())))
		c.Next()
	}
}
