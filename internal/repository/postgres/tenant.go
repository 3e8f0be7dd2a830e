package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tgmsites/site-engine/internal/domain"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) FindByNameOrDomainHint(ctx context.Context, nameHint, domainHint string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	db := r.readerDB.WithContext(ctx).
		Where("status = ?", domain.TenantStatusActive).
		Where("name ILIKE ? OR domain ILIKE ?", "%"+nameHint+"%", "%"+domainHint+"%").
		Order("created_at ASC")

	if err := db.First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	if err := r.readerDB.WithContext(ctx).Order("created_at ASC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}
