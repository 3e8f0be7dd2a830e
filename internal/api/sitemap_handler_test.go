package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/internal/service"
	"github.com/tgmsites/site-engine/pkg/logger"
)

type SitemapHandlerTestSuite struct {
	suite.Suite
	mockResolver *MockTenantResolver
	mockSitemap  *MockSitemapService
	handler      *SitemapHandler
}

type MockSitemapService struct {
	mock.Mock
}

func (m *MockSitemapService) Generate(ctx context.Context, baseURL string, res *domain.Resolution) (string, error) {
	args := m.Called(ctx, baseURL, res)
	return args.String(0), args.Error(1)
}

func (s *SitemapHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockResolver = new(MockTenantResolver)
	s.mockSitemap = new(MockSitemapService)
	s.handler = NewSitemapHandler(s.mockResolver, s.mockSitemap, logger.NewLogger("test"))
}

func TestSitemapHandler(t *testing.T) {
	suite.Run(t, new(SitemapHandlerTestSuite))
}

func (s *SitemapHandlerTestSuite) TestGetSitemap_Success() {
	res := testResolution()
	s.mockResolver.On("Resolve", mock.Anything, "telegram1688.com").Return(res, nil)
	s.mockSitemap.On("Generate", mock.Anything, "https://telegram1688.com", res).Return("<urlset/>", nil)

	w, c := getRequest("telegram1688.com", "/sitemap.xml")

	s.handler.GetSitemap(c)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "application/xml")
	s.Equal("public, max-age=3600", w.Header().Get("Cache-Control"))
	s.Equal("<urlset/>", w.Body.String())
	s.mockSitemap.AssertExpectations(s.T())
}

func (s *SitemapHandlerTestSuite) TestGetSitemap_LocalhostUsesHTTP() {
	res := testResolution()
	s.mockResolver.On("Resolve", mock.Anything, "localhost:3002").Return(res, nil)
	s.mockSitemap.On("Generate", mock.Anything, "http://localhost:3002", res).Return("<urlset/>", nil)

	w, c := getRequest("localhost:3002", "/sitemap.xml")

	s.handler.GetSitemap(c)

	s.Equal(http.StatusOK, w.Code)
	s.mockSitemap.AssertExpectations(s.T())
}

func (s *SitemapHandlerTestSuite) TestGetSitemap_UnresolvableHostIs404() {
	s.mockResolver.On("Resolve", mock.Anything, "parked.example.com").Return(nil, service.ErrNoTenantFound)

	w, c := getRequest("parked.example.com", "/sitemap.xml")

	s.handler.GetSitemap(c)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Website not found", w.Body.String())
}

func (s *SitemapHandlerTestSuite) TestGetSitemap_GenerateErrorIs404() {
	res := testResolution()
	s.mockResolver.On("Resolve", mock.Anything, "telegram1688.com").Return(res, nil)
	s.mockSitemap.On("Generate", mock.Anything, "https://telegram1688.com", res).Return("", errors.New("marshal failure"))

	w, c := getRequest("telegram1688.com", "/sitemap.xml")

	s.handler.GetSitemap(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *SitemapHandlerTestSuite) TestGetRobots() {
	w, c := getRequest("telegram1688.com", "/robots.txt")

	s.handler.GetRobots(c)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/plain")
	s.Contains(w.Body.String(), "User-agent: *")
	s.Contains(w.Body.String(), "Sitemap: https://telegram1688.com/sitemap.xml")
}

func TestBaseURLFor(t *testing.T) {
	cases := map[string]string{
		"telegram1688.com": "https://telegram1688.com",
		"localhost:3002":   "http://localhost:3002",
		"LOCALHOST":        "http://LOCALHOST",
	}
	for host, want := range cases {
		if got := baseURLFor(host); got != want {
			t.Errorf("baseURLFor(%q) = %q, want %q", host, got, want)
		}
	}
}
