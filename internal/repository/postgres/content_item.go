package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tgmsites/site-engine/internal/domain"
)

type ContentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewContentRepository(writerDB, readerDB *gorm.DB) *ContentRepository {
	return &ContentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ContentRepository) FindPublishedByTenant(ctx context.Context, tenantID, excludeID string) ([]domain.ContentItem, error) {
	var items []domain.ContentItem

	db := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Where("status = ?", domain.ContentStatusPublished)

	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}

	if err := db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ContentRepository) FindBySlug(ctx context.Context, tenantID, slug string) (*domain.ContentItem, error) {
	var item domain.ContentItem
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND slug = ?", tenantID, slug).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *ContentRepository) FindByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	var item domain.ContentItem
	if err := r.readerDB.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
