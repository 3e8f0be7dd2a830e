package utils

import (
	"context"

	"github.com/tgmsites/site-engine/internal/botdetect"
)

type ContextKey string

const (
	BotInfoKey   ContextKey = "bot_info"
	RequestIDKey ContextKey = "request_id"
)

// GetBotInfoFromContext returns the crawler classification attached by the
// bot-detection middleware, if any.
func GetBotInfoFromContext(ctx context.Context) (botdetect.BotInfo, bool) {
	info, ok := ctx.Value(BotInfoKey).(botdetect.BotInfo)
	return info, ok
}

// GetRequestIDFromContext returns the request identifier attached by the
// request-ID middleware, or "" when none is set.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
