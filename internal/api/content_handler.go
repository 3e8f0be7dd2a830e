package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tgmsites/site-engine/internal/api/dto"
	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/internal/service"
	"github.com/tgmsites/site-engine/pkg/logger"
)

const (
	defaultListLimit    = 10
	maxListLimit        = 50
	defaultRelatedLimit = 4
)

//go:generate mockery --name ContentService --output ../mocks
type ContentService interface {
	SelectForDomain(ctx context.Context, tenant *domain.Tenant, binding *domain.DomainBinding, opts service.SelectOptions) ([]domain.ContentItem, error)
	GetBySlug(ctx context.Context, tenant *domain.Tenant, slug string) (*domain.ContentItem, error)
}

type ContentHandler struct {
	*BaseHandler
	resolver TenantResolver
	content  ContentService
	logger   *logger.Logger
}

func NewContentHandler(resolver TenantResolver, content ContentService, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{resolver: resolver, content: content, logger: logger}
}

// ListPosts returns the ranked post list for the request hostname.
// Resolution and content failures both degrade to an empty list; content
// absence is never user-fatal on listing pages.
func (h *ContentHandler) ListPosts(c *gin.Context) {
	host := h.RequestHost(c)

	res, err := h.resolver.Resolve(h.RequestCtx(c), host)
	if err != nil {
		h.logger.Warnf("listing posts without a tenant for %s: %v", host, err)
		c.JSON(http.StatusOK, dto.FromContentItems(nil))
		return
	}

	opts := service.SelectOptions{
		Limit:     parseLimit(c.Query("limit"), defaultListLimit),
		ExcludeID: c.Query("exclude"),
	}

	items, err := h.content.SelectForDomain(h.RequestCtx(c), res.Tenant, res.Binding, opts)
	if err != nil {
		h.logger.Errorf("selecting posts for %s: %v", host, err)
		c.JSON(http.StatusOK, dto.FromContentItems(nil))
		return
	}
	c.JSON(http.StatusOK, dto.FromContentItems(items))
}

// GetPost returns one published post by slug, scoped to the resolved
// tenant. Slugs of other tenants are invisible here.
func (h *ContentHandler) GetPost(c *gin.Context) {
	res, err := h.resolver.Resolve(h.RequestCtx(c), h.RequestHost(c))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "post not found"})
		return
	}

	item, err := h.content.GetBySlug(h.RequestCtx(c), res.Tenant, c.Param("slug"))
	if err != nil || item == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "post not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromContentItem(item))
}

// GetRelatedPosts returns posts related to the given slug for the request
// hostname, excluding the post itself. Failures degrade to an empty list.
func (h *ContentHandler) GetRelatedPosts(c *gin.Context) {
	host := h.RequestHost(c)

	res, err := h.resolver.Resolve(h.RequestCtx(c), host)
	if err != nil {
		c.JSON(http.StatusOK, dto.FromContentItems(nil))
		return
	}

	item, err := h.content.GetBySlug(h.RequestCtx(c), res.Tenant, c.Param("slug"))
	if err != nil || item == nil {
		c.JSON(http.StatusOK, dto.FromContentItems(nil))
		return
	}

	opts := service.SelectOptions{
		Limit:     parseLimit(c.Query("limit"), defaultRelatedLimit),
		ExcludeID: item.ID,
	}

	items, err := h.content.SelectForDomain(h.RequestCtx(c), res.Tenant, res.Binding, opts)
	if err != nil {
		h.logger.Errorf("selecting related posts for %s: %v", host, err)
		c.JSON(http.StatusOK, dto.FromContentItems(nil))
		return
	}
	c.JSON(http.StatusOK, dto.FromContentItems(items))
}

func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
