package repository

import (
	"context"

	"github.com/tgmsites/site-engine/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	// FindByNameOrDomainHint returns the first tenant whose name contains
	// the name hint or whose canonical domain contains the domain hint.
	// Used by the environment-default resolution stage. Absent → (nil, nil).
	FindByNameOrDomainHint(ctx context.Context, nameHint, domainHint string) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name DomainBindingRepository --output ../mocks
type DomainBindingRepository interface {
	// FindByHostname performs a case-insensitive exact match. Partial and
	// fallback matching is the resolver's job, not the registry's.
	// Absent → (nil, nil).
	FindByHostname(ctx context.Context, hostname string) (*domain.DomainBinding, error)
	// ListActive returns active bindings in creation order, which fixes the
	// iteration order of the resolver's substring fallback.
	ListActive(ctx context.Context) ([]domain.DomainBinding, error)
	// ListForTenant returns a tenant's bindings, primary first.
	ListForTenant(ctx context.Context, tenantID string) ([]domain.DomainBinding, error)
}

//go:generate mockery --name ContentRepository --output ../mocks
type ContentRepository interface {
	// FindPublishedByTenant returns the tenant's published items newest
	// first, omitting excludeID when non-empty.
	FindPublishedByTenant(ctx context.Context, tenantID, excludeID string) ([]domain.ContentItem, error)
	FindBySlug(ctx context.Context, tenantID, slug string) (*domain.ContentItem, error)
	FindByID(ctx context.Context, id string) (*domain.ContentItem, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	Binding() DomainBindingRepository
	Content() ContentRepository
}
