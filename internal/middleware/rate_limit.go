package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/tgmsites/site-engine/internal/botdetect"
	"github.com/tgmsites/site-engine/internal/metrics"
	"github.com/tgmsites/site-engine/internal/utils"
	"github.com/tgmsites/site-engine/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	logger *logger.Logger
}

// NewRateLimitMiddleware builds redis-backed fixed-window limiters. A nil
// client disables limiting entirely, which keeps local setups without redis
// working.
func NewRateLimitMiddleware(redis *redis.Client, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		logger: logger,
	}
}

// GlobalRateLimit implements per-IP rate limiting over a one-minute window.
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.redis == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())

		current, err := m.redis.Get(c.Request.Context(), key).Int()
		if err != nil && err != redis.Nil {
			m.logger.Error("Redis error in global rate limiting", err)
			// Allow request to continue on Redis error (fail open)
			c.Next()
			return
		}

		if current >= limit {
			m.writeLimitHeaders(c, limit, 0)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
				"limit": limit,
				"reset": time.Now().Add(time.Minute).Unix(),
			})
			c.Abort()
			return
		}

		m.increment(c, key)
		m.writeLimitHeaders(c, limit, limit-(current+1))
		c.Next()
	}
}

// BotRateLimit enforces per-class crawl quotas for detected crawlers. It
// must run after the bot-detection middleware; human traffic passes
// through untouched.
func (m *RateLimitMiddleware) BotRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		info, ok := utils.GetBotInfoFromContext(c.Request.Context())
		if !ok || !info.IsBot || m.redis == nil {
			c.Next()
			return
		}

		limit := botdetect.QuotaFor(info.Type)
		key := fmt.Sprintf("rate_limit:bot:%s:%s", info.Type, c.ClientIP())

		current, err := m.redis.Get(c.Request.Context(), key).Int()
		if err != nil && err != redis.Nil {
			m.logger.Error("Redis error in bot rate limiting", err)
			c.Next()
			return
		}

		if current >= limit {
			metrics.BotRequestsTotal.WithLabelValues(string(info.Type), "throttled").Inc()
			m.writeLimitHeaders(c, limit, 0)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Crawl rate limit exceeded",
				"limit": limit,
				"reset": time.Now().Add(time.Minute).Unix(),
			})
			c.Abort()
			return
		}

		metrics.BotRequestsTotal.WithLabelValues(string(info.Type), "allowed").Inc()
		m.increment(c, key)
		m.writeLimitHeaders(c, limit, limit-(current+1))
		c.Next()
	}
}

func (m *RateLimitMiddleware) increment(c *gin.Context, key string) {
	pipe := m.redis.Pipeline()
	pipe.Incr(c.Request.Context(), key)
	pipe.Expire(c.Request.Context(), key, time.Minute)
	if _, err := pipe.Exec(c.Request.Context()); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}
}

func (m *RateLimitMiddleware) writeLimitHeaders(c *gin.Context, limit, remaining int) {
	if remaining < 0 {
		remaining = 0
	}
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))
}
