package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/internal/repository"
	"github.com/tgmsites/site-engine/pkg/logger"
)

// SelectOptions narrows a content selection. ExcludeID omits one item, used
// by related-post listings to drop the article being viewed.
type SelectOptions struct {
	Limit     int
	ExcludeID string
}

// ContentSelector produces the ordered content list for a resolved
// tenant/domain context. Ranking uses the equality scoring strategy
// (ScoreExact); listings that want containment ranking call ScoreContains
// themselves.
type ContentSelector struct {
	content repository.ContentRepository // nil when no store is configured
	logger  *logger.Logger
}

func NewContentSelector(content repository.ContentRepository, log *logger.Logger) *ContentSelector {
	return &ContentSelector{content: content, logger: log}
}

// SelectForDomain returns the tenant's published items ranked for the given
// binding. With no binding or no configured tags the order is plain recency.
// An empty result is not an error. Repository failures surface as
// ErrContentQueryFailed; the page layer recovers by rendering an empty list.
func (s *ContentSelector) SelectForDomain(ctx context.Context, tenant *domain.Tenant, binding *domain.DomainBinding, opts SelectOptions) ([]domain.ContentItem, error) {
	if tenant == nil {
		return []domain.ContentItem{}, nil
	}
	if s.content == nil {
		return nil, fmt.Errorf("%w: no content store configured", ErrContentQueryFailed)
	}

	items, err := s.content.FindPublishedByTenant(ctx, tenant.ID, opts.ExcludeID)
	if err != nil {
		s.logger.Errorf("querying published content for tenant %s: %v", tenant.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrContentQueryFailed, err)
	}

	if binding != nil && binding.HasTags() {
		// Items arrive newest first, so a stable sort by score keeps
		// recency as the tie-break within equal scores.
		sort.SliceStable(items, func(i, j int) bool {
			si := ScoreExact(items[i].Keywords, binding.PrimaryTags, binding.SecondaryTags)
			sj := ScoreExact(items[j].Keywords, binding.PrimaryTags, binding.SecondaryTags)
			return si > sj
		})
	}

	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	if items == nil {
		items = []domain.ContentItem{}
	}
	return items, nil
}

// GetBySlug fetches one published item of the tenant. Absent, unpublished,
// or cross-tenant slugs all report (nil, nil); cross-tenant leakage is a
// correctness bug the tenant scope here guards against.
func (s *ContentSelector) GetBySlug(ctx context.Context, tenant *domain.Tenant, slug string) (*domain.ContentItem, error) {
	if tenant == nil || s.content == nil {
		return nil, nil
	}
	item, err := s.content.FindBySlug(ctx, tenant.ID, slug)
	if err != nil {
		s.logger.Errorf("querying content %q for tenant %s: %v", slug, tenant.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrContentQueryFailed, err)
	}
	if item == nil || !item.IsPublished() {
		return nil, nil
	}
	return item, nil
}
