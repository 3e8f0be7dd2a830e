package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tgmsites/site-engine/internal/api/dto"
	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/internal/service"
	"github.com/tgmsites/site-engine/pkg/logger"
)

//go:generate mockery --name TenantResolver --output ../mocks
type TenantResolver interface {
	Resolve(ctx context.Context, host string) (*domain.Resolution, error)
}

type SiteHandler struct {
	*BaseHandler
	resolver TenantResolver
	logger   *logger.Logger
}

func NewSiteHandler(resolver TenantResolver, logger *logger.Logger) *SiteHandler {
	return &SiteHandler{resolver: resolver, logger: logger}
}

// GetSite resolves the request hostname to its owning tenant and domain
// configuration. An unresolvable hostname is a 404; the front end renders
// its generic tenant-less page in that case.
func (h *SiteHandler) GetSite(c *gin.Context) {
	res, err := h.resolver.Resolve(h.RequestCtx(c), h.RequestHost(c))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromResolution(res))
}

// GetSEO returns page metadata for the request hostname. This endpoint
// never fails: total resolution failure degrades to the process-wide
// generic metadata instead of an error.
func (h *SiteHandler) GetSEO(c *gin.Context) {
	host := h.RequestHost(c)

	res, err := h.resolver.Resolve(h.RequestCtx(c), host)
	if err != nil {
		h.logger.Warnf("serving generic SEO metadata for %s: %v", host, err)
		c.JSON(http.StatusOK, dto.FromSEOMetadata(service.AssembleSEOMetadata(nil, nil)))
		return
	}

	meta := service.AssembleSEOMetadata(res.Tenant, res.Binding)
	c.JSON(http.StatusOK, dto.FromSEOMetadata(meta))
}
