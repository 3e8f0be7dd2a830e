package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tgmsites/site-engine/internal/api/dto"
	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/internal/service"
	"github.com/tgmsites/site-engine/pkg/logger"
)

type ContentHandlerTestSuite struct {
	suite.Suite
	mockResolver *MockTenantResolver
	mockContent  *MockContentService
	handler      *ContentHandler
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) SelectForDomain(ctx context.Context, tenant *domain.Tenant, binding *domain.DomainBinding, opts service.SelectOptions) ([]domain.ContentItem, error) {
	args := m.Called(ctx, tenant, binding, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContentItem), args.Error(1)
}

func (m *MockContentService) GetBySlug(ctx context.Context, tenant *domain.Tenant, slug string) (*domain.ContentItem, error) {
	args := m.Called(ctx, tenant, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (s *ContentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockResolver = new(MockTenantResolver)
	s.mockContent = new(MockContentService)
	s.handler = NewContentHandler(s.mockResolver, s.mockContent, logger.NewLogger("test"))
}

func TestContentHandler(t *testing.T) {
	suite.Run(t, new(ContentHandlerTestSuite))
}

func (s *ContentHandlerTestSuite) TestListPosts_Success() {
	// Arrange
	res := testResolution()
	posts := []domain.ContentItem{
		{ID: "a", Title: "Telegram指南", Slug: "telegram-guide", Body: "full body", Keywords: []string{"telegram"}, Status: domain.ContentStatusPublished},
		{ID: "b", Title: "下载教程", Slug: "download-howto", Keywords: []string{"下载"}, Status: domain.ContentStatusPublished},
	}
	s.mockResolver.On("Resolve", mock.Anything, "telegram1688.com").Return(res, nil)
	s.mockContent.On("SelectForDomain", mock.Anything, res.Tenant, res.Binding, service.SelectOptions{Limit: defaultListLimit}).Return(posts, nil)

	w, c := getRequest("telegram1688.com", "/api/v1/posts")

	// Act
	s.handler.ListPosts(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.ListContentResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(2, response.Total)
	s.Equal("telegram-guide", response.Items[0].Slug)
	// Listings omit bodies.
	s.Empty(response.Items[0].Body)
	s.mockContent.AssertExpectations(s.T())
}

func (s *ContentHandlerTestSuite) TestListPosts_LimitQueryClamped() {
	res := testResolution()
	s.mockResolver.On("Resolve", mock.Anything, "telegram1688.com").Return(res, nil)
	s.mockContent.On("SelectForDomain", mock.Anything, res.Tenant, res.Binding, service.SelectOptions{Limit: maxListLimit}).Return([]domain.ContentItem{}, nil)

	w, c := getRequest("telegram1688.com", "/api/v1/posts?limit=500")

	s.handler.ListPosts(c)

	s.Equal(http.StatusOK, w.Code)
	s.mockContent.AssertExpectations(s.T())
}

func (s *ContentHandlerTestSuite) TestListPosts_UnresolvableHostDegradesToEmpty() {
	s.mockResolver.On("Resolve", mock.Anything, "unknown.example.com").Return(nil, service.ErrNoTenantFound)

	w, c := getRequest("unknown.example.com", "/api/v1/posts")

	s.handler.ListPosts(c)

	s.Equal(http.StatusOK, w.Code)
	var response dto.ListContentResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(0, response.Total)
	s.NotNil(response.Items)
}

func (s *ContentHandlerTestSuite) TestListPosts_ContentErrorDegradesToEmpty() {
	res := testResolution()
	s.mockResolver.On("Resolve", mock.Anything, "telegram1688.com").Return(res, nil)
	s.mockContent.On("SelectForDomain", mock.Anything, res.Tenant, res.Binding, mock.Anything).Return(nil, service.ErrContentQueryFailed)

	w, c := getRequest("telegram1688.com", "/api/v1/posts")

	s.handler.ListPosts(c)

	s.Equal(http.StatusOK, w.Code)
	var response dto.ListContentResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(0, response.Total)
}

func (s *ContentHandlerTestSuite) TestGetPost_Success() {
	res := testResolution()
	post := &domain.ContentItem{ID: "a", Title: "Telegram指南", Slug: "telegram-guide", Body: "full body", Status: domain.ContentStatusPublished}
	s.mockResolver.On("Resolve", mock.Anything, "telegram1688.com").Return(res, nil)
	s.mockContent.On("GetBySlug", mock.Anything, res.Tenant, "telegram-guide").Return(post, nil)

	w, c := getRequest("telegram1688.com", "/api/v1/posts/telegram-guide")
	c.Params = gin.Params{{Key: "slug", Value: "telegram-guide"}}

	s.handler.GetPost(c)

	s.Equal(http.StatusOK, w.Code)
	var response dto.ContentItemResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("telegram-guide", response.Slug)
	s.Equal("full body", response.Body)
}

func (s *ContentHandlerTestSuite) TestGetPost_NotFound() {
	res := testResolution()
	s.mockResolver.On("Resolve", mock.Anything, "telegram1688.com").Return(res, nil)
	s.mockContent.On("GetBySlug", mock.Anything, res.Tenant, "missing").Return(nil, nil)

	w, c := getRequest("telegram1688.com", "/api/v1/posts/missing")
	c.Params = gin.Params{{Key: "slug", Value: "missing"}}

	s.handler.GetPost(c)

	s.Equal(http.StatusNotFound, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("post not found", response.Error)
}

func (s *ContentHandlerTestSuite) TestGetPost_UnresolvableHostIs404() {
	s.mockResolver.On("Resolve", mock.Anything, "unknown.example.com").Return(nil, service.ErrNoTenantFound)

	w, c := getRequest("unknown.example.com", "/api/v1/posts/telegram-guide")
	c.Params = gin.Params{{Key: "slug", Value: "telegram-guide"}}

	s.handler.GetPost(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ContentHandlerTestSuite) TestGetRelatedPosts_ExcludesViewedPost() {
	res := testResolution()
	viewed := &domain.ContentItem{ID: "a", Slug: "telegram-guide", Status: domain.ContentStatusPublished}
	related := []domain.ContentItem{
		{ID: "b", Title: "下载教程", Slug: "download-howto", Status: domain.ContentStatusPublished},
	}
	s.mockResolver.On("Resolve", mock.Anything, "telegram1688.com").Return(res, nil)
	s.mockContent.On("GetBySlug", mock.Anything, res.Tenant, "telegram-guide").Return(viewed, nil)
	s.mockContent.On("SelectForDomain", mock.Anything, res.Tenant, res.Binding, service.SelectOptions{Limit: defaultRelatedLimit, ExcludeID: "a"}).Return(related, nil)

	w, c := getRequest("telegram1688.com", "/api/v1/posts/telegram-guide/related")
	c.Params = gin.Params{{Key: "slug", Value: "telegram-guide"}}

	s.handler.GetRelatedPosts(c)

	s.Equal(http.StatusOK, w.Code)
	var response dto.ListContentResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(1, response.Total)
	s.Equal("download-howto", response.Items[0].Slug)
	s.mockContent.AssertExpectations(s.T())
}

func (s *ContentHandlerTestSuite) TestGetRelatedPosts_MissingPostDegradesToEmpty() {
	res := testResolution()
	s.mockResolver.On("Resolve", mock.Anything, "telegram1688.com").Return(res, nil)
	s.mockContent.On("GetBySlug", mock.Anything, res.Tenant, "missing").Return(nil, nil)

	w, c := getRequest("telegram1688.com", "/api/v1/posts/missing/related")
	c.Params = gin.Params{{Key: "slug", Value: "missing"}}

	s.handler.GetRelatedPosts(c)

	s.Equal(http.StatusOK, w.Code)
	var response dto.ListContentResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(0, response.Total)
}

func TestParseLimit(t *testing.T) {
	s := []struct {
		raw      string
		fallback int
		want     int
	}{
		{"", 10, 10},
		{"5", 10, 5},
		{"0", 10, 10},
		{"-3", 10, 10},
		{"abc", 10, 10},
		{"500", 10, maxListLimit},
	}
	for _, tc := range s {
		if got := parseLimit(tc.raw, tc.fallback); got != tc.want {
			t.Errorf("parseLimit(%q, %d) = %d, want %d", tc.raw, tc.fallback, got, tc.want)
		}
	}
}
