package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/internal/mocks"
	"github.com/tgmsites/site-engine/pkg/logger"
)

func sitemapFixture() *domain.Resolution {
	tenant := &domain.Tenant{ID: "tenant-1", Name: "Telegram中文网"}
	return &domain.Resolution{
		Tenant: tenant,
		Binding: &domain.DomainBinding{
			Hostname:    "telegram1688.com",
			TenantID:    tenant.ID,
			PrimaryTags: []string{"telegram"},
			Status:      domain.BindingStatusActive,
		},
		Source: domain.ResolutionExact,
	}
}

func TestSitemapGenerate_FixedEntries(t *testing.T) {
	mockContent := new(mocks.ContentRepository)
	mockContent.On("FindPublishedByTenant", mock.Anything, "tenant-1", "").Return([]domain.ContentItem{}, nil)
	svc := NewSitemapService(mockContent, logger.NewLogger("test"))

	out, err := svc.Generate(context.Background(), "https://telegram1688.com", sitemapFixture())

	require.NoError(t, err)
	assert.Contains(t, out, `<?xml`)
	assert.Contains(t, out, "http://www.sitemaps.org/schemas/sitemap/0.9")
	assert.Contains(t, out, "<loc>https://telegram1688.com/</loc>")
	assert.Contains(t, out, "<loc>https://telegram1688.com/blog</loc>")
	assert.Contains(t, out, "<loc>https://telegram1688.com/faq</loc>")
	assert.Contains(t, out, "<loc>https://telegram1688.com/download</loc>")
	assert.Contains(t, out, "<priority>1.0</priority>")
	assert.Equal(t, 4, strings.Count(out, "<url>"))
}

func TestSitemapGenerate_PostsFilteredByPrimaryTags(t *testing.T) {
	updated := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	matching := domain.ContentItem{Slug: "telegram-guide", Keywords: []string{"telegram", "教程"}, Status: domain.ContentStatusPublished, UpdatedAt: updated}
	offTopic := domain.ContentItem{Slug: "other-news", Keywords: []string{"news"}, Status: domain.ContentStatusPublished, UpdatedAt: updated}

	mockContent := new(mocks.ContentRepository)
	mockContent.On("FindPublishedByTenant", mock.Anything, "tenant-1", "").Return([]domain.ContentItem{matching, offTopic}, nil)
	svc := NewSitemapService(mockContent, logger.NewLogger("test"))

	out, err := svc.Generate(context.Background(), "https://telegram1688.com", sitemapFixture())

	require.NoError(t, err)
	assert.Contains(t, out, "<loc>https://telegram1688.com/blog/telegram-guide</loc>")
	assert.NotContains(t, out, "other-news")
	assert.Contains(t, out, "<lastmod>2025-08-01T12:00:00Z</lastmod>")
	assert.Contains(t, out, "<priority>0.8</priority>")
}

func TestSitemapGenerate_PostsOrderedByUpdatedAt(t *testing.T) {
	older := domain.ContentItem{Slug: "older", Keywords: []string{"telegram"}, Status: domain.ContentStatusPublished, UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := domain.ContentItem{Slug: "newer", Keywords: []string{"telegram"}, Status: domain.ContentStatusPublished, UpdatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	mockContent := new(mocks.ContentRepository)
	mockContent.On("FindPublishedByTenant", mock.Anything, "tenant-1", "").Return([]domain.ContentItem{older, newer}, nil)
	svc := NewSitemapService(mockContent, logger.NewLogger("test"))

	out, err := svc.Generate(context.Background(), "https://telegram1688.com", sitemapFixture())

	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "blog/newer"), strings.Index(out, "blog/older"))
}

func TestSitemapGenerate_NoPrimaryTagsIncludesAllPosts(t *testing.T) {
	res := sitemapFixture()
	res.Binding.PrimaryTags = nil

	posts := []domain.ContentItem{
		{Slug: "anything", Keywords: []string{"misc"}, Status: domain.ContentStatusPublished},
	}
	mockContent := new(mocks.ContentRepository)
	mockContent.On("FindPublishedByTenant", mock.Anything, "tenant-1", "").Return(posts, nil)
	svc := NewSitemapService(mockContent, logger.NewLogger("test"))

	out, err := svc.Generate(context.Background(), "https://telegram1688.com", res)

	require.NoError(t, err)
	assert.Contains(t, out, "blog/anything")
}

func TestSitemapGenerate_ContentErrorDegradesToFixedEntries(t *testing.T) {
	mockContent := new(mocks.ContentRepository)
	mockContent.On("FindPublishedByTenant", mock.Anything, "tenant-1", "").Return(nil, errors.New("connection refused"))
	svc := NewSitemapService(mockContent, logger.NewLogger("test"))

	out, err := svc.Generate(context.Background(), "https://telegram1688.com", sitemapFixture())

	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "<url>"))
}

func TestSitemapGenerate_NoStoreStillServesFixedEntries(t *testing.T) {
	svc := NewSitemapService(nil, logger.NewLogger("test"))

	out, err := svc.Generate(context.Background(), "http://localhost:3002", sitemapFixture())

	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "<url>"))
}
