package service

import (
	"fmt"
	"strings"

	"github.com/tgmsites/site-engine/internal/domain"
)

// Process-wide fallback metadata served when resolution fails entirely.
// Pages must never render with empty metadata.
const (
	GenericTitle       = "Telegram官网"
	GenericDescription = "Telegram官方网站"
)

type SEOMetadata struct {
	Title       string
	Description string
	Keywords    string
}

// AssembleSEOMetadata derives page metadata from a resolution result.
// Binding overrides win over tenant defaults, tenant defaults win over the
// generic fallback. A nil tenant means total resolution failure and yields
// the generic fallback.
func AssembleSEOMetadata(tenant *domain.Tenant, binding *domain.DomainBinding) SEOMetadata {
	if tenant == nil {
		return SEOMetadata{
			Title:       GenericTitle,
			Description: GenericDescription,
		}
	}

	meta := SEOMetadata{
		Title:       tenant.DefaultTitle,
		Description: tenant.DefaultDescription,
		Keywords:    joinTags(tenant.DefaultKeywords, nil),
	}
	if meta.Title == "" {
		meta.Title = tenant.Name
	}
	if meta.Description == "" {
		meta.Description = fmt.Sprintf("%s - 官方网站", tenant.Name)
	}

	if binding == nil {
		return meta
	}

	if binding.SiteName != "" {
		meta.Title = binding.SiteName
	}
	if binding.SiteDescription != "" {
		meta.Description = binding.SiteDescription
	}
	if binding.HasTags() {
		meta.Keywords = joinTags(binding.PrimaryTags, binding.SecondaryTags)
	}
	return meta
}

func joinTags(primary, secondary []string) string {
	tags := make([]string, 0, len(primary)+len(secondary))
	for _, t := range primary {
		if strings.TrimSpace(t) != "" {
			tags = append(tags, t)
		}
	}
	for _, t := range secondary {
		if strings.TrimSpace(t) != "" {
			tags = append(tags, t)
		}
	}
	return strings.Join(tags, ", ")
}
