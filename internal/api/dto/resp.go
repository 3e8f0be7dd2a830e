package dto

import "time"

type TenantResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Status string `json:"status"`
}

type DomainBindingResponse struct {
	Hostname        string   `json:"hostname"`
	SiteName        string   `json:"site_name"`
	SiteDescription string   `json:"site_description"`
	PrimaryTags     []string `json:"primary_tags"`
	SecondaryTags   []string `json:"secondary_tags"`
	IsPrimary       bool     `json:"is_primary"`
}

// SiteResolutionResponse is the outcome of resolving the request hostname.
// Binding is null when the tenant was found through an environment hint.
type SiteResolutionResponse struct {
	Tenant  TenantResponse         `json:"tenant"`
	Binding *DomainBindingResponse `json:"binding,omitempty"`
	Source  string                 `json:"source"`
}

type SEOMetadataResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords,omitempty"`
}

type ContentItemResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body,omitempty"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListContentResponse struct {
	Items []ContentItemResponse `json:"items"`
	Total int                   `json:"total"`
}
