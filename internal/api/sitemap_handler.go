package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/pkg/logger"
)

//go:generate mockery --name SitemapService --output ../mocks
type SitemapService interface {
	Generate(ctx context.Context, baseURL string, res *domain.Resolution) (string, error)
}

type SitemapHandler struct {
	*BaseHandler
	resolver TenantResolver
	sitemap  SitemapService
	logger   *logger.Logger
}

func NewSitemapHandler(resolver TenantResolver, sitemap SitemapService, logger *logger.Logger) *SitemapHandler {
	return &SitemapHandler{resolver: resolver, sitemap: sitemap, logger: logger}
}

// GetSitemap renders the per-domain sitemap. Crawlers hitting an unknown
// hostname get a plain 404 rather than a generic sitemap, so parked or
// mistyped domains never advertise content URLs.
func (h *SitemapHandler) GetSitemap(c *gin.Context) {
	host := h.RequestHost(c)

	res, err := h.resolver.Resolve(h.RequestCtx(c), host)
	if err != nil {
		h.logger.Warnf("sitemap requested for unresolvable host %s: %v", host, err)
		c.String(http.StatusNotFound, "Website not found")
		return
	}

	xml, err := h.sitemap.Generate(h.RequestCtx(c), baseURLFor(host), res)
	if err != nil {
		h.logger.Errorf("generating sitemap for %s: %v", host, err)
		c.String(http.StatusNotFound, "Website not found")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}

// GetRobots serves robots.txt with the resolved host's sitemap location.
func (h *SitemapHandler) GetRobots(c *gin.Context) {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", baseURLFor(h.RequestHost(c)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

func baseURLFor(host string) string {
	proto := "https"
	if strings.Contains(strings.ToLower(host), "localhost") {
		proto = "http"
	}
	return fmt.Sprintf("%s://%s", proto, host)
}
