// Package static provides an immutable in-process domain binding table used
// when no database is reachable. It is built once at startup and injected
// into the resolver; nothing mutates it afterwards, so unsynchronized
// concurrent reads are safe.
package static

import (
	"context"
	"strings"

	"github.com/tgmsites/site-engine/internal/domain"
)

type Registry struct {
	bindings []domain.DomainBinding
}

// NewRegistry copies the given bindings into an immutable registry. Bindings
// keep their declaration order, which fixes the substring-fallback iteration
// order the same way created_at ordering does for the database registry.
func NewRegistry(bindings []domain.DomainBinding) *Registry {
	r := &Registry{bindings: make([]domain.DomainBinding, len(bindings))}
	copy(r.bindings, bindings)
	return r
}

// FindByHostname is a case-insensitive exact match, mirroring the database
// registry's contract. Absent → (nil, nil).
func (r *Registry) FindByHostname(_ context.Context, hostname string) (*domain.DomainBinding, error) {
	hostname = strings.ToLower(hostname)
	for i := range r.bindings {
		if strings.ToLower(r.bindings[i].Hostname) == hostname {
			b := r.bindings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *Registry) ListActive(_ context.Context) ([]domain.DomainBinding, error) {
	out := make([]domain.DomainBinding, 0, len(r.bindings))
	for i := range r.bindings {
		if r.bindings[i].IsActive() {
			out = append(out, r.bindings[i])
		}
	}
	return out, nil
}

func (r *Registry) ListForTenant(_ context.Context, tenantID string) ([]domain.DomainBinding, error) {
	var out []domain.DomainBinding
	// Primary bindings first, declaration order within each group.
	for i := range r.bindings {
		if r.bindings[i].TenantID == tenantID && r.bindings[i].IsPrimary {
			out = append(out, r.bindings[i])
		}
	}
	for i := range r.bindings {
		if r.bindings[i].TenantID == tenantID && !r.bindings[i].IsPrimary {
			out = append(out, r.bindings[i])
		}
	}
	return out, nil
}
