package domain

import (
	"time"

	"github.com/lib/pq"
)

type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "ACTIVE"
	TenantStatusInactive TenantStatus = "INACTIVE"
)

// Tenant is a logical website sharing the content store. Every content item
// and domain binding references exactly one tenant.
type Tenant struct {
	ID                 string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name               string         `gorm:"type:text;not null" json:"name"`
	Domain             string         `gorm:"type:text;not null" json:"domain"`
	Status             TenantStatus   `gorm:"type:text;not null;default:'ACTIVE'" json:"status"`
	DefaultTitle       string         `gorm:"type:text" json:"default_title"`
	DefaultDescription string         `gorm:"type:text" json:"default_description"`
	DefaultKeywords    pq.StringArray `gorm:"type:text[]" json:"default_keywords"`
	CreatedAt          time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}
