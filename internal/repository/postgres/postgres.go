package postgres

import (
	"gorm.io/gorm"

	"github.com/tgmsites/site-engine/internal/config"
	"github.com/tgmsites/site-engine/internal/repository"
)

type postgresRepository struct {
	writerDB    *gorm.DB
	readerDB    *gorm.DB
	tenantRepo  repository.TenantRepository
	bindingRepo repository.DomainBindingRepository
	contentRepo repository.ContentRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		writerDB:    dbConnections.Writer,
		readerDB:    dbConnections.Reader,
		tenantRepo:  NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		bindingRepo: NewDomainBindingRepository(dbConnections.Writer, dbConnections.Reader),
		contentRepo: NewContentRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Binding() repository.DomainBindingRepository {
	return r.bindingRepo
}

func (r *postgresRepository) Content() repository.ContentRepository {
	return r.contentRepo
}
