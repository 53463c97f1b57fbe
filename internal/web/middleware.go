package web

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type requestIDKey struct{}

// RequestIDMiddleware ensures every request has a stable request ID.
// - Reads X-Request-Id header if present
// - Otherwise generates a new one
// - Stores it in both Gin context and standard context as "request_id"
// - Echoes it back in response header X-Request-Id
// - Logs request details (method, path, status, latency)
func RequestIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-Id")
		if strings.TrimSpace(rid) == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		ctx := context.WithValue(c.Request.Context(), requestIDKey{}, rid)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-Id", rid)

		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("id", rid),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// GetRequestID extracts the request ID from a standard context
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// maxLimiters bounds the per-client limiter map; idle limiters are pruned
// once it is reached.
const maxLimiters = 10_000

type limiterSet struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLimiterSet(limit rate.Limit, burst int) *limiterSet {
	return &limiterSet{limiters: make(map[string]*rate.Limiter), limit: limit, burst: burst}
}

func (s *limiterSet) allow(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lim, ok := s.limiters[key]
	if !ok {
		if len(s.limiters) >= maxLimiters {
			s.pruneLocked(now)
		}
		lim = rate.NewLimiter(s.limit, s.burst)
		s.limiters[key] = lim
	}
	return lim.AllowN(now, 1)
}

// pruneLocked drops limiters that have refilled completely; forgetting them
// changes nothing for their clients.
func (s *limiterSet) pruneLocked(now time.Time) {
	for k, lim := range s.limiters {
		if lim.TokensAt(now) >= float64(s.burst) {
			delete(s.limiters, k)
		}
	}
}

// RateLimitMiddleware throttles a route per client. Clients are keyed by a
// salted hash of their IP so raw addresses are never held.
func RateLimitMiddleware(limit rate.Limit, burst int, hashIP func(string) string, logger *zap.Logger) gin.HandlerFunc {
	set := newLimiterSet(limit, burst)
	return func(c *gin.Context) {
		key := hashIP(c.ClientIP())
		if !set.allow(key, time.Now()) {
			logger.Warn("rate limited", zap.String("client", key), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please try again in a minute"})
			return
		}
		c.Next()
	}
}
