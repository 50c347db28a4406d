package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// BusinessUnitRepositoryImpl implements domain.BusinessUnitRepository using GORM
type BusinessUnitRepositoryImpl struct {
	db *gorm.DB
}

// DBBusinessUnit represents the database model for BusinessUnit. Name is
// unique within an organization.
type DBBusinessUnit struct {
	ID          uint   `gorm:"primaryKey"`
	OrgID       uint   `gorm:"uniqueIndex:idx_bu_org_name"`
	Name        string `gorm:"uniqueIndex:idx_bu_org_name;size:255"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DBBusinessUnit) TableName() string {
	return "business_units"
}

// DBStakeholder represents the database model for Stakeholder
type DBStakeholder struct {
	ID             uint   `gorm:"primaryKey"`
	BusinessUnitID uint   `gorm:"index"`
	Name           string `gorm:"size:255"`
	Role           string `gorm:"size:255"`
	Email          string `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (DBStakeholder) TableName() string {
	return "stakeholders"
}

// NewBusinessUnitRepository creates a new business unit repository
func NewBusinessUnitRepository(db *gorm.DB) domain.BusinessUnitRepository {
	return &BusinessUnitRepositoryImpl{db: db}
}

// Create implements domain.BusinessUnitRepository
func (r *BusinessUnitRepositoryImpl) Create(ctx context.Context, bu *domain.BusinessUnit) error {
	dbBU := &DBBusinessUnit{
		OrgID:       bu.OrgID,
		Name:        bu.Name,
		Description: bu.Description,
	}
	if err := r.db.WithContext(ctx).Create(dbBU).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return err
	}
	bu.ID = dbBU.ID
	return nil
}

// FindByID implements domain.BusinessUnitRepository
func (r *BusinessUnitRepositoryImpl) FindByID(ctx context.Context, orgID, id uint) (*domain.BusinessUnit, error) {
	var dbBU DBBusinessUnit
	err := r.db.WithContext(ctx).Where("org_id = ? AND id = ?", orgID, id).First(&dbBU).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("Business unit")
		}
		return nil, err
	}
	return buToDomain(&dbBU), nil
}

// ListByOrg implements domain.BusinessUnitRepository
func (r *BusinessUnitRepositoryImpl) ListByOrg(ctx context.Context, orgID uint) ([]domain.BusinessUnit, error) {
	var dbBUs []DBBusinessUnit
	if err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Order("id").Find(&dbBUs).Error; err != nil {
		return nil, err
	}
	units := make([]domain.BusinessUnit, 0, len(dbBUs))
	for i := range dbBUs {
		units = append(units, *buToDomain(&dbBUs[i]))
	}
	return units, nil
}

// Update implements domain.BusinessUnitRepository
func (r *BusinessUnitRepositoryImpl) Update(ctx context.Context, bu *domain.BusinessUnit) error {
	res := r.db.WithContext(ctx).Model(&DBBusinessUnit{}).
		Where("org_id = ? AND id = ?", bu.OrgID, bu.ID).
		Updates(map[string]interface{}{"name": bu.Name, "description": bu.Description})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("Business unit")
	}
	return nil
}

// Delete implements domain.BusinessUnitRepository. Stakeholders under the
// unit go with it.
func (r *BusinessUnitRepositoryImpl) Delete(ctx context.Context, orgID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("org_id = ? AND id = ?", orgID, id).Delete(&DBBusinessUnit{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("Business unit")
		}
		return tx.Where("business_unit_id = ?", id).Delete(&DBStakeholder{}).Error
	})
}

// CreateStakeholder implements domain.BusinessUnitRepository
func (r *BusinessUnitRepositoryImpl) CreateStakeholder(ctx context.Context, s *domain.Stakeholder) error {
	dbS := &DBStakeholder{
		BusinessUnitID: s.BusinessUnitID,
		Name:           s.Name,
		Role:           s.Role,
		Email:          s.Email,
	}
	if err := r.db.WithContext(ctx).Create(dbS).Error; err != nil {
		return err
	}
	s.ID = dbS.ID
	return nil
}

// ListStakeholders implements domain.BusinessUnitRepository
func (r *BusinessUnitRepositoryImpl) ListStakeholders(ctx context.Context, businessUnitID uint) ([]domain.Stakeholder, error) {
	var dbStakeholders []DBStakeholder
	if err := r.db.WithContext(ctx).Where("business_unit_id = ?", businessUnitID).Order("id").Find(&dbStakeholders).Error; err != nil {
		return nil, err
	}
	stakeholders := make([]domain.Stakeholder, 0, len(dbStakeholders))
	for _, s := range dbStakeholders {
		stakeholders = append(stakeholders, domain.Stakeholder{
			ID:             s.ID,
			BusinessUnitID: s.BusinessUnitID,
			Name:           s.Name,
			Role:           s.Role,
			Email:          s.Email,
			CreatedAt:      s.CreatedAt,
			UpdatedAt:      s.UpdatedAt,
		})
	}
	return stakeholders, nil
}

func buToDomain(dbBU *DBBusinessUnit) *domain.BusinessUnit {
	return &domain.BusinessUnit{
		ID:          dbBU.ID,
		OrgID:       dbBU.OrgID,
		Name:        dbBU.Name,
		Description: dbBU.Description,
		CreatedAt:   dbBU.CreatedAt,
		UpdatedAt:   dbBU.UpdatedAt,
	}
}
