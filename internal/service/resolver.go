package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/internal/metrics"
	"github.com/tgmsites/site-engine/internal/repository"
	"github.com/tgmsites/site-engine/pkg/logger"
)

// DomainRegistry is the binding lookup surface the resolver depends on. Both
// the gorm-backed repository and the static in-process table satisfy it.
//
//go:generate mockery --name DomainRegistry --output ../mocks
type DomainRegistry interface {
	FindByHostname(ctx context.Context, hostname string) (*domain.DomainBinding, error)
	ListActive(ctx context.Context) ([]domain.DomainBinding, error)
}

// BindingCache caches hostname lookups. Errors are treated as misses; the
// cache never changes resolution results, only skips a database round trip.
//
//go:generate mockery --name BindingCache --output ../mocks
type BindingCache interface {
	Get(ctx context.Context, hostname string) (*domain.DomainBinding, bool, error)
	Set(ctx context.Context, hostname string, binding *domain.DomainBinding) error
}

// ResolverConfig carries the out-of-band hints for the environment-default
// resolution stage.
type ResolverConfig struct {
	// DefaultSiteName is the tenant-name hint consulted when no registered
	// hostname matches (SITE_NAME).
	DefaultSiteName string
	// PortTenants maps local development ports to tenant-name hints,
	// e.g. "3002" -> "Demo Website 2".
	PortTenants map[string]string
}

// TenantResolver implements the hostname to (tenant, binding) resolution
// every content-serving request starts with. The chain is strict: exact
// match, then substring fallback, then the localhost environment hint.
// Exact match is never skipped, so one tenant's alias can not shadow another
// tenant's registered hostname via a substring hit.
type TenantResolver struct {
	registry DomainRegistry // database-backed; nil when no store is configured
	fallback DomainRegistry // static table, always present
	tenants  repository.TenantRepository
	cache    BindingCache
	cfg      ResolverConfig
	logger   *logger.Logger
}

func NewTenantResolver(
	registry DomainRegistry,
	fallback DomainRegistry,
	tenants repository.TenantRepository,
	cfg ResolverConfig,
	log *logger.Logger,
) *TenantResolver {
	return &TenantResolver{
		registry: registry,
		fallback: fallback,
		tenants:  tenants,
		cfg:      cfg,
		logger:   log,
	}
}

// SetBindingCache wires an optional lookup cache. Resolution works without
// one.
func (r *TenantResolver) SetBindingCache(cache BindingCache) {
	r.cache = cache
}

// NormalizeHostname lowercases a host and strips any port suffix. It is
// idempotent: normalizing an already-normalized hostname is a no-op.
func NormalizeHostname(host string) string {
	h := strings.ToLower(strings.TrimSpace(host))
	h, _, _ = strings.Cut(h, ":")
	return h
}

func portOf(host string) string {
	_, port, ok := strings.Cut(host, ":")
	if !ok {
		return ""
	}
	return port
}

// Resolve maps an inbound Host header to the owning tenant and, when a
// registered hostname matched, its domain binding. Registry storage failures
// fall back to the static table before the chain gives up. On exhaustion it
// returns ErrNoTenantFound; the page layer recovers with generic tenant-less
// content rather than surfacing an error.
func (r *TenantResolver) Resolve(ctx context.Context, host string) (*domain.Resolution, error) {
	hostname := NormalizeHostname(host)
	if hostname == "" {
		metrics.ResolutionsTotal.WithLabelValues("none", "none").Inc()
		return nil, fmt.Errorf("%w: empty hostname", ErrNoTenantFound)
	}

	// Stage 1: exact match on an active binding.
	binding, backend := r.findExact(ctx, hostname)
	if binding != nil && binding.IsActive() {
		res, err := r.resolutionFromBinding(ctx, binding, domain.ResolutionExact)
		if err == nil {
			metrics.ResolutionsTotal.WithLabelValues(string(domain.ResolutionExact), backend).Inc()
			return res, nil
		}
		r.logger.Errorf("resolving tenant for exact-matched binding %s: %v", binding.Hostname, err)
	}

	// Stage 2: substring fallback over active bindings in creation order.
	// Handles development hosts like localhost:3002 matching a configured
	// "localhost" binding. First match wins.
	bindings, backend := r.listActive(ctx)
	for i := range bindings {
		bh := strings.ToLower(bindings[i].Hostname)
		if bh == "" {
			continue
		}
		if strings.Contains(hostname, bh) || strings.Contains(bh, hostname) {
			res, err := r.resolutionFromBinding(ctx, &bindings[i], domain.ResolutionSubstring)
			if err != nil {
				r.logger.Errorf("resolving tenant for substring-matched binding %s: %v", bindings[i].Hostname, err)
				break
			}
			r.logger.Debugf("substring fallback matched %s to binding %s", hostname, bindings[i].Hostname)
			metrics.ResolutionsTotal.WithLabelValues(string(domain.ResolutionSubstring), backend).Inc()
			return res, nil
		}
	}

	// Stage 3: local development hosts resolve through an out-of-band hint
	// with no binding attached.
	if strings.Contains(strings.ToLower(host), "localhost") {
		if tenant := r.resolveByHint(ctx, host, hostname); tenant != nil {
			metrics.ResolutionsTotal.WithLabelValues(string(domain.ResolutionEnvHint), "hint").Inc()
			return &domain.Resolution{Tenant: tenant, Source: domain.ResolutionEnvHint}, nil
		}
	}

	metrics.ResolutionsTotal.WithLabelValues("none", "none").Inc()
	return nil, fmt.Errorf("%w: %s", ErrNoTenantFound, hostname)
}

// findExact looks up a binding by exact hostname, trying the cache, then the
// database registry, then the static table when storage is unavailable. The
// returned backend label is for metrics.
func (r *TenantResolver) findExact(ctx context.Context, hostname string) (*domain.DomainBinding, string) {
	if r.cache != nil {
		if binding, ok, err := r.cache.Get(ctx, hostname); err == nil && ok {
			metrics.BindingCacheHits.WithLabelValues("hit").Inc()
			return binding, "cache"
		}
		metrics.BindingCacheHits.WithLabelValues("miss").Inc()
	}

	if r.registry != nil {
		binding, err := r.registry.FindByHostname(ctx, hostname)
		if err == nil {
			if binding != nil && r.cache != nil {
				if cerr := r.cache.Set(ctx, hostname, binding); cerr != nil {
					r.logger.Warnf("caching binding for %s: %v", hostname, cerr)
				}
			}
			return binding, "database"
		}
		r.logger.Errorf("%v for %s, using static table: %v", ErrStorageUnavailable, hostname, err)
	}

	binding, err := r.fallback.FindByHostname(ctx, hostname)
	if err != nil {
		return nil, "static"
	}
	return binding, "static"
}

func (r *TenantResolver) listActive(ctx context.Context) ([]domain.DomainBinding, string) {
	if r.registry != nil {
		bindings, err := r.registry.ListActive(ctx)
		if err == nil {
			return bindings, "database"
		}
		r.logger.Errorf("%v listing bindings, using static table: %v", ErrStorageUnavailable, err)
	}

	bindings, err := r.fallback.ListActive(ctx)
	if err != nil {
		return nil, "static"
	}
	return bindings, "static"
}

func (r *TenantResolver) resolutionFromBinding(ctx context.Context, binding *domain.DomainBinding, source domain.ResolutionSource) (*domain.Resolution, error) {
	tenant := binding.Tenant
	if tenant == nil {
		if r.tenants == nil {
			return nil, fmt.Errorf("binding %s has no tenant attached", binding.Hostname)
		}
		var err error
		tenant, err = r.tenants.GetByID(ctx, binding.TenantID)
		if err != nil {
			return nil, err
		}
	}
	return &domain.Resolution{Tenant: tenant, Binding: binding, Source: source}, nil
}

// resolveByHint resolves local development hosts through the configured
// port-to-tenant map, falling back to the SITE_NAME default. Without a
// tenant store it scans the static table for a primary binding of a tenant
// whose name contains the hint.
func (r *TenantResolver) resolveByHint(ctx context.Context, host, hostname string) *domain.Tenant {
	hint := r.cfg.DefaultSiteName
	if port := portOf(host); port != "" {
		if name, ok := r.cfg.PortTenants[port]; ok {
			hint = name
		}
	}
	if hint == "" {
		return nil
	}

	if r.tenants != nil {
		tenant, err := r.tenants.FindByNameOrDomainHint(ctx, hint, hostname)
		if err != nil {
			r.logger.Errorf("tenant hint lookup for %q: %v", hint, err)
		} else if tenant != nil {
			return tenant
		}
	}

	bindings, err := r.fallback.ListActive(ctx)
	if err != nil {
		return nil
	}
	for i := range bindings {
		t := bindings[i].Tenant
		if t != nil && bindings[i].IsPrimary && strings.Contains(t.Name, hint) {
			return t
		}
	}
	return nil
}
