package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tgmsites/site-engine/internal/domain"
)

type DomainBindingRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewDomainBindingRepository(writerDB, readerDB *gorm.DB) *DomainBindingRepository {
	return &DomainBindingRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// FindByHostname is a case-insensitive exact match, status included, with the
// owning tenant preloaded. Hostnames are stored lowercase but inputs may not
// be, so both sides are folded.
func (r *DomainBindingRepository) FindByHostname(ctx context.Context, hostname string) (*domain.DomainBinding, error) {
	var binding domain.DomainBinding
	err := r.readerDB.WithContext(ctx).
		Preload("Tenant").
		Where("LOWER(hostname) = ?", strings.ToLower(hostname)).
		First(&binding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &binding, nil
}

func (r *DomainBindingRepository) ListActive(ctx context.Context) ([]domain.DomainBinding, error) {
	var bindings []domain.DomainBinding
	err := r.readerDB.WithContext(ctx).
		Preload("Tenant").
		Where("status = ?", domain.BindingStatusActive).
		Order("created_at ASC").
		Find(&bindings).Error
	if err != nil {
		return nil, err
	}
	return bindings, nil
}

func (r *DomainBindingRepository) ListForTenant(ctx context.Context, tenantID string) ([]domain.DomainBinding, error) {
	var bindings []domain.DomainBinding
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("is_primary DESC, created_at ASC").
		Find(&bindings).Error
	if err != nil {
		return nil, err
	}
	return bindings, nil
}
