package dto

import (
	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/internal/service"
)

func FromTenant(tenant *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:     tenant.ID,
		Name:   tenant.Name,
		Domain: tenant.Domain,
		Status: string(tenant.Status),
	}
}

func FromBinding(binding *domain.DomainBinding) *DomainBindingResponse {
	if binding == nil {
		return nil
	}
	return &DomainBindingResponse{
		Hostname:        binding.Hostname,
		SiteName:        binding.SiteName,
		SiteDescription: binding.SiteDescription,
		PrimaryTags:     binding.PrimaryTags,
		SecondaryTags:   binding.SecondaryTags,
		IsPrimary:       binding.IsPrimary,
	}
}

func FromResolution(res *domain.Resolution) SiteResolutionResponse {
	return SiteResolutionResponse{
		Tenant:  FromTenant(res.Tenant),
		Binding: FromBinding(res.Binding),
		Source:  string(res.Source),
	}
}

func FromSEOMetadata(meta service.SEOMetadata) SEOMetadataResponse {
	return SEOMetadataResponse{
		Title:       meta.Title,
		Description: meta.Description,
		Keywords:    meta.Keywords,
	}
}

// FromContentItem maps a single item including its body, for detail pages.
func FromContentItem(item *domain.ContentItem) *ContentItemResponse {
	return &ContentItemResponse{
		ID:        item.ID,
		Title:     item.Title,
		Slug:      item.Slug,
		Body:      item.Body,
		Keywords:  item.Keywords,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// FromContentItems maps listings; bodies are omitted to keep list payloads
// small.
func FromContentItems(items []domain.ContentItem) ListContentResponse {
	responses := make([]ContentItemResponse, len(items))
	for i, item := range items {
		responses[i] = ContentItemResponse{
			ID:        item.ID,
			Title:     item.Title,
			Slug:      item.Slug,
			Keywords:  item.Keywords,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		}
	}
	return ListContentResponse{Items: responses, Total: len(responses)}
}
