package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/internal/mocks"
	"github.com/tgmsites/site-engine/pkg/logger"
)

type ContentSelectorTestSuite struct {
	suite.Suite
	mockContent *mocks.ContentRepository
	selector    *ContentSelector

	tenant  *domain.Tenant
	binding *domain.DomainBinding
}

func (s *ContentSelectorTestSuite) SetupTest() {
	s.mockContent = new(mocks.ContentRepository)
	s.selector = NewContentSelector(s.mockContent, logger.NewLogger("test"))

	s.tenant = &domain.Tenant{
		ID:     "tenant-1",
		Name:   "Telegram中文网",
		Status: domain.TenantStatusActive,
	}
	s.binding = &domain.DomainBinding{
		ID:            "binding-1",
		Hostname:      "telegram1688.com",
		TenantID:      s.tenant.ID,
		PrimaryTags:   []string{"telegram"},
		SecondaryTags: []string{"下载"},
		Status:        domain.BindingStatusActive,
	}
}

func TestContentSelector(t *testing.T) {
	suite.Run(t, new(ContentSelectorTestSuite))
}

func (s *ContentSelectorTestSuite) TestSelectForDomain_RanksByScore() {
	// Post A matches a primary tag, post B only a secondary tag. The
	// repository returns newest first with B ahead, ranking must flip them.
	postB := domain.ContentItem{ID: "b", Slug: "b", Keywords: []string{"下载", "教程"}, Status: domain.ContentStatusPublished}
	postA := domain.ContentItem{ID: "a", Slug: "a", Keywords: []string{"telegram", "教程"}, Status: domain.ContentStatusPublished}
	s.mockContent.On("FindPublishedByTenant", mock.Anything, s.tenant.ID, "").Return([]domain.ContentItem{postB, postA}, nil)

	items, err := s.selector.SelectForDomain(context.Background(), s.tenant, s.binding, SelectOptions{})

	s.NoError(err)
	s.Require().Len(items, 2)
	s.Equal("a", items[0].ID)
	s.Equal("b", items[1].ID)
}

func (s *ContentSelectorTestSuite) TestSelectForDomain_RecencyBreaksTies() {
	// Equal scores keep the repository's newest-first order.
	newer := domain.ContentItem{ID: "newer", Keywords: []string{"telegram"}, Status: domain.ContentStatusPublished}
	older := domain.ContentItem{ID: "older", Keywords: []string{"telegram"}, Status: domain.ContentStatusPublished}
	s.mockContent.On("FindPublishedByTenant", mock.Anything, s.tenant.ID, "").Return([]domain.ContentItem{newer, older}, nil)

	items, err := s.selector.SelectForDomain(context.Background(), s.tenant, s.binding, SelectOptions{})

	s.NoError(err)
	s.Require().Len(items, 2)
	s.Equal("newer", items[0].ID)
	s.Equal("older", items[1].ID)
}

func (s *ContentSelectorTestSuite) TestSelectForDomain_NoBindingKeepsRecency() {
	first := domain.ContentItem{ID: "first", Keywords: []string{"下载"}, Status: domain.ContentStatusPublished}
	second := domain.ContentItem{ID: "second", Keywords: []string{"telegram"}, Status: domain.ContentStatusPublished}
	s.mockContent.On("FindPublishedByTenant", mock.Anything, s.tenant.ID, "").Return([]domain.ContentItem{first, second}, nil)

	items, err := s.selector.SelectForDomain(context.Background(), s.tenant, nil, SelectOptions{})

	s.NoError(err)
	s.Require().Len(items, 2)
	s.Equal("first", items[0].ID)
}

func (s *ContentSelectorTestSuite) TestSelectForDomain_LimitTruncatesAfterRanking() {
	postB := domain.ContentItem{ID: "b", Keywords: []string{"下载"}, Status: domain.ContentStatusPublished}
	postA := domain.ContentItem{ID: "a", Keywords: []string{"telegram"}, Status: domain.ContentStatusPublished}
	s.mockContent.On("FindPublishedByTenant", mock.Anything, s.tenant.ID, "").Return([]domain.ContentItem{postB, postA}, nil)

	items, err := s.selector.SelectForDomain(context.Background(), s.tenant, s.binding, SelectOptions{Limit: 1})

	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal("a", items[0].ID)
}

func (s *ContentSelectorTestSuite) TestSelectForDomain_ExcludeIDPassedThrough() {
	s.mockContent.On("FindPublishedByTenant", mock.Anything, s.tenant.ID, "viewed-post").Return([]domain.ContentItem{}, nil)

	items, err := s.selector.SelectForDomain(context.Background(), s.tenant, s.binding, SelectOptions{ExcludeID: "viewed-post"})

	s.NoError(err)
	s.Empty(items)
	s.mockContent.AssertExpectations(s.T())
}

func (s *ContentSelectorTestSuite) TestSelectForDomain_NilTenantIsEmpty() {
	items, err := s.selector.SelectForDomain(context.Background(), nil, s.binding, SelectOptions{})

	s.NoError(err)
	s.NotNil(items)
	s.Empty(items)
}

func (s *ContentSelectorTestSuite) TestSelectForDomain_RepositoryError() {
	s.mockContent.On("FindPublishedByTenant", mock.Anything, s.tenant.ID, "").Return(nil, errors.New("connection refused"))

	_, err := s.selector.SelectForDomain(context.Background(), s.tenant, s.binding, SelectOptions{})

	s.ErrorIs(err, ErrContentQueryFailed)
}

func (s *ContentSelectorTestSuite) TestSelectForDomain_NoStore() {
	selector := NewContentSelector(nil, logger.NewLogger("test"))

	_, err := selector.SelectForDomain(context.Background(), s.tenant, s.binding, SelectOptions{})

	s.ErrorIs(err, ErrContentQueryFailed)
}

func (s *ContentSelectorTestSuite) TestGetBySlug_Published() {
	post := &domain.ContentItem{ID: "a", Slug: "getting-started", Status: domain.ContentStatusPublished}
	s.mockContent.On("FindBySlug", mock.Anything, s.tenant.ID, "getting-started").Return(post, nil)

	got, err := s.selector.GetBySlug(context.Background(), s.tenant, "getting-started")

	s.NoError(err)
	s.Require().NotNil(got)
	s.Equal("a", got.ID)
}

func (s *ContentSelectorTestSuite) TestGetBySlug_DraftIsAbsent() {
	post := &domain.ContentItem{ID: "a", Slug: "wip", Status: domain.ContentStatusDraft}
	s.mockContent.On("FindBySlug", mock.Anything, s.tenant.ID, "wip").Return(post, nil)

	got, err := s.selector.GetBySlug(context.Background(), s.tenant, "wip")

	s.NoError(err)
	s.Nil(got)
}

func (s *ContentSelectorTestSuite) TestGetBySlug_Missing() {
	s.mockContent.On("FindBySlug", mock.Anything, s.tenant.ID, "nope").Return(nil, nil)

	got, err := s.selector.GetBySlug(context.Background(), s.tenant, "nope")

	s.NoError(err)
	s.Nil(got)
}
