package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tgmsites/site-engine/internal/middleware"
	"github.com/tgmsites/site-engine/pkg/logger"
)

type Server struct {
	site      *SiteHandler
	content   *ContentHandler
	sitemap   *SitemapHandler
	rateLimit *middleware.RateLimitMiddleware
	logger    *logger.Logger
	cfgLimit  int
}

func NewServer(
	resolver TenantResolver,
	contentService ContentService,
	sitemapService SitemapService,
	rateLimit *middleware.RateLimitMiddleware,
	globalRateLimit int,
	logger *logger.Logger,
) *Server {
	return &Server{
		site:      NewSiteHandler(resolver, logger),
		content:   NewContentHandler(resolver, contentService, logger),
		sitemap:   NewSitemapHandler(resolver, sitemapService, logger),
		rateLimit: rateLimit,
		logger:    logger,
		cfgLimit:  globalRateLimit,
	}
}

func (s *Server) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.BotDetect(s.logger))
	router.Use(s.rateLimit.GlobalRateLimit(s.cfgLimit))
	router.Use(s.rateLimit.BotRateLimit())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/robots.txt", s.sitemap.GetRobots)
	router.GET("/sitemap.xml", s.sitemap.GetSitemap)

	api := router.Group("/api/v1")
	{
		api.GET("/site", s.site.GetSite)
		api.GET("/seo", s.site.GetSEO)

		posts := api.Group("/posts")
		{
			posts.GET("", s.content.ListPosts)
			posts.GET("/:slug", s.content.GetPost)
			posts.GET("/:slug/related", s.content.GetRelatedPosts)
		}
	}
}
