package domain

import (
	"time"

	"github.com/lib/pq"
)

type BindingStatus string

const (
	BindingStatusActive   BindingStatus = "ACTIVE"
	BindingStatusInactive BindingStatus = "INACTIVE"
)

// DomainBinding maps one hostname to its owning tenant and carries that
// hostname's SEO configuration. Hostnames are stored lowercase and are
// globally unique. An inactive binding is invisible to resolution.
//
// At most one binding per tenant should have IsPrimary set. The storage layer
// does not enforce this; the admin tooling that writes bindings is expected
// to maintain it.
type DomainBinding struct {
	ID              string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Hostname        string         `gorm:"type:text;not null;uniqueIndex" json:"hostname"`
	TenantID        string         `gorm:"type:uuid;not null" json:"tenant_id"`
	IsPrimary       bool           `gorm:"not null;default:false" json:"is_primary"`
	SiteName        string         `gorm:"type:text" json:"site_name"`
	SiteDescription string         `gorm:"type:text" json:"site_description"`
	PrimaryTags     pq.StringArray `gorm:"type:text[]" json:"primary_tags"`
	SecondaryTags   pq.StringArray `gorm:"type:text[]" json:"secondary_tags"`
	Status          BindingStatus  `gorm:"type:text;not null;default:'ACTIVE'" json:"status"`
	CreatedAt       time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant          *Tenant        `gorm:"foreignKey:TenantID" json:"-"`
}

func (DomainBinding) TableName() string {
	return "domain_bindings"
}

func (b *DomainBinding) IsActive() bool {
	return b.Status == BindingStatusActive
}

// HasTags reports whether the binding carries any tag configuration at all.
// A binding with null tag arrays behaves like one with empty lists.
func (b *DomainBinding) HasTags() bool {
	return len(b.PrimaryTags) > 0 || len(b.SecondaryTags) > 0
}
