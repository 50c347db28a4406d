package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// OrganizationRepositoryImpl implements domain.OrganizationRepository using GORM
type OrganizationRepositoryImpl struct {
	db *gorm.DB
}

// DBOrganization represents the database model for Organization. Names are
// not unique across tenants: two customers may register the same company
// name, and a uniqueness check here would leak which names exist.
type DBOrganization struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBOrganization) TableName() string {
	return "organizations"
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) domain.OrganizationRepository {
	return &OrganizationRepositoryImpl{db: db}
}

// Create implements domain.OrganizationRepository
func (r *OrganizationRepositoryImpl) Create(ctx context.Context, org *domain.Organization) error {
	dbOrg := &DBOrganization{Name: org.Name}
	if err := r.db.WithContext(ctx).Create(dbOrg).Error; err != nil {
		return err
	}
	org.ID = dbOrg.ID
	return nil
}

// FindByID implements domain.OrganizationRepository
func (r *OrganizationRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Organization, error) {
	var dbOrg DBOrganization
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbOrg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("Organization")
		}
		return nil, err
	}
	return &domain.Organization{
		ID:        dbOrg.ID,
		Name:      dbOrg.Name,
		CreatedAt: dbOrg.CreatedAt,
		UpdatedAt: dbOrg.UpdatedAt,
	}, nil
}
