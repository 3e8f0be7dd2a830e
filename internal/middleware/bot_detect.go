package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/tgmsites/site-engine/internal/botdetect"
	"github.com/tgmsites/site-engine/internal/utils"
	"github.com/tgmsites/site-engine/pkg/logger"
)

// BotDetect classifies the request's user agent and attaches the result to
// the request context for the bot rate limiter and handlers. Detected
// crawlers are echoed in a response header so edge caches can vary on it.
func BotDetect(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		info := botdetect.Detect(c.Request.UserAgent())
		if info.IsBot {
			c.Header("X-Bot-Detected", info.Name)
			log.Infof("crawler request: %s (%s) from %s", info.Name, info.Type, c.ClientIP())
		}

		ctx := context.WithValue(c.Request.Context(), utils.BotInfoKey, info)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
