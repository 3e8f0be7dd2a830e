package domain

import (
	"time"

	"github.com/lib/pq"
)

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "DRAFT"
	ContentStatusPublished ContentStatus = "PUBLISHED"
)

// ContentItem is a post belonging to one tenant. Keywords drive tag matching
// against a domain binding's configured tag lists.
type ContentItem struct {
	ID        string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string         `gorm:"type:uuid;not null;index:idx_content_items_tenant_slug,unique" json:"tenant_id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Slug      string         `gorm:"type:text;not null;index:idx_content_items_tenant_slug,unique" json:"slug"`
	Body      string         `gorm:"type:text" json:"body"`
	Keywords  pq.StringArray `gorm:"type:text[]" json:"keywords"`
	Status    ContentStatus  `gorm:"type:text;not null;default:'DRAFT'" json:"status"`
	CreatedAt time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant    *Tenant        `gorm:"foreignKey:TenantID" json:"-"`
}

func (ContentItem) TableName() string {
	return "content_items"
}

func (c *ContentItem) IsPublished() bool {
	return c.Status == ContentStatusPublished
}
