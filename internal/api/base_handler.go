package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/tgmsites/site-engine/internal/utils"
)

type BaseHandler struct{}

// RequestCtx copies gin's per-request keys onto the request context so
// services see them without depending on gin.
func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// RequestHost returns the hostname the client addressed, preferring the
// X-Forwarded-Host set by the fronting proxy over the raw Host header.
func (h *BaseHandler) RequestHost(ginCtx *gin.Context) string {
	if host := ginCtx.GetHeader("X-Forwarded-Host"); host != "" {
		return host
	}
	return ginCtx.Request.Host
}
