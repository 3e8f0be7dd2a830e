package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/internal/metrics"
	"github.com/tgmsites/site-engine/internal/repository"
	"github.com/tgmsites/site-engine/pkg/logger"
)

const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapService renders the per-domain sitemap. The four top-level pages
// are always present at fixed priorities; article URLs are restricted to the
// binding's primary tags so every domain advertises its own content slice.
type SitemapService struct {
	content repository.ContentRepository
	logger  *logger.Logger
}

func NewSitemapService(content repository.ContentRepository, log *logger.Logger) *SitemapService {
	return &SitemapService{content: content, logger: log}
}

// Generate builds the sitemap XML for a resolved tenant. Content store
// failures degrade to the fixed entries only; a sitemap request never
// errors once a tenant resolved.
func (s *SitemapService) Generate(ctx context.Context, baseURL string, res *domain.Resolution) (string, error) {
	urls := []sitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "daily", Priority: "1.0"},
		{Loc: baseURL + "/blog", ChangeFreq: "daily", Priority: "0.9"},
		{Loc: baseURL + "/faq", ChangeFreq: "weekly", Priority: "0.9"},
		{Loc: baseURL + "/download", ChangeFreq: "weekly", Priority: "0.9"},
	}

	for _, item := range s.publishedItems(ctx, res) {
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/blog/%s", baseURL, item.Slug),
			LastMod:    item.UpdatedAt.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	payload, err := xml.MarshalIndent(urlSet{XMLNS: sitemapXMLNS, URLs: urls}, "", "  ")
	if err != nil {
		return "", err
	}

	metrics.SitemapsGenerated.Inc()
	return xml.Header + string(payload), nil
}

func (s *SitemapService) publishedItems(ctx context.Context, res *domain.Resolution) []domain.ContentItem {
	if res == nil || res.Tenant == nil || s.content == nil {
		return nil
	}

	items, err := s.content.FindPublishedByTenant(ctx, res.Tenant.ID, "")
	if err != nil {
		s.logger.Errorf("querying content for sitemap, tenant %s: %v", res.Tenant.ID, err)
		return nil
	}

	if res.Binding != nil && len(res.Binding.PrimaryTags) > 0 {
		filtered := items[:0]
		for _, item := range items {
			if MatchesPrimaryTags(item.Keywords, res.Binding.PrimaryTags) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
	return items
}
