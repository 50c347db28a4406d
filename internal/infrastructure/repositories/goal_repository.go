package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// GoalRepositoryImpl implements domain.GoalRepository using GORM
type GoalRepositoryImpl struct {
	db *gorm.DB
}

// DBGoal represents the database model for Goal
type DBGoal struct {
	ID             uint `gorm:"primaryKey"`
	BusinessUnitID uint `gorm:"index"`
	StakeholderID  *uint
	Title          string `gorm:"size:255"`
	Description    string
	Quarter        string `gorm:"size:16"`
	Status         string `gorm:"size:16;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (DBGoal) TableName() string {
	return "goals"
}

// DBKPI represents the database model for KPI. Name is unique within a goal.
type DBKPI struct {
	ID        uint   `gorm:"primaryKey"`
	GoalID    uint   `gorm:"uniqueIndex:idx_kpi_goal_name"`
	Name      string `gorm:"uniqueIndex:idx_kpi_goal_name;size:255"`
	Target    float64
	Current   float64
	Unit      string `gorm:"size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBKPI) TableName() string {
	return "kpis"
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) domain.GoalRepository {
	return &GoalRepositoryImpl{db: db}
}

// Create implements domain.GoalRepository
func (r *GoalRepositoryImpl) Create(ctx context.Context, goal *domain.Goal) error {
	dbGoal := goalToDB(goal)
	if err := r.db.WithContext(ctx).Create(dbGoal).Error; err != nil {
		return err
	}
	goal.ID = dbGoal.ID
	return nil
}

// FindByID implements domain.GoalRepository
func (r *GoalRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Goal, error) {
	var dbGoal DBGoal
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbGoal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("Goal")
		}
		return nil, err
	}
	return goalToDomain(&dbGoal), nil
}

// ListByBusinessUnit implements domain.GoalRepository
func (r *GoalRepositoryImpl) ListByBusinessUnit(ctx context.Context, businessUnitID uint) ([]domain.Goal, error) {
	var dbGoals []DBGoal
	if err := r.db.WithContext(ctx).Where("business_unit_id = ?", businessUnitID).Order("id").Find(&dbGoals).Error; err != nil {
		return nil, err
	}
	goals := make([]domain.Goal, 0, len(dbGoals))
	for i := range dbGoals {
		goals = append(goals, *goalToDomain(&dbGoals[i]))
	}
	return goals, nil
}

// Update implements domain.GoalRepository
func (r *GoalRepositoryImpl) Update(ctx context.Context, goal *domain.Goal) error {
	res := r.db.WithContext(ctx).Model(&DBGoal{}).Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"title":          goal.Title,
			"description":    goal.Description,
			"quarter":        goal.Quarter,
			"status":         goal.Status,
			"stakeholder_id": goal.StakeholderID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("Goal")
	}
	return nil
}

// Delete implements domain.GoalRepository. KPIs under the goal go with it.
func (r *GoalRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&DBGoal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("Goal")
		}
		return tx.Where("goal_id = ?", id).Delete(&DBKPI{}).Error
	})
}

// CreateKPI implements domain.GoalRepository
func (r *GoalRepositoryImpl) CreateKPI(ctx context.Context, kpi *domain.KPI) error {
	dbKPI := &DBKPI{
		GoalID:  kpi.GoalID,
		Name:    kpi.Name,
		Target:  kpi.Target,
		Current: kpi.Current,
		Unit:    kpi.Unit,
	}
	if err := r.db.WithContext(ctx).Create(dbKPI).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return err
	}
	kpi.ID = dbKPI.ID
	return nil
}

// FindKPIByID implements domain.GoalRepository
func (r *GoalRepositoryImpl) FindKPIByID(ctx context.Context, id uint) (*domain.KPI, error) {
	var dbKPI DBKPI
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbKPI).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("KPI")
		}
		return nil, err
	}
	return &domain.KPI{
		ID:        dbKPI.ID,
		GoalID:    dbKPI.GoalID,
		Name:      dbKPI.Name,
		Target:    dbKPI.Target,
		Current:   dbKPI.Current,
		Unit:      dbKPI.Unit,
		CreatedAt: dbKPI.CreatedAt,
		UpdatedAt: dbKPI.UpdatedAt,
	}, nil
}

// ListKPIs implements domain.GoalRepository
func (r *GoalRepositoryImpl) ListKPIs(ctx context.Context, goalID uint) ([]domain.KPI, error) {
	var dbKPIs []DBKPI
	if err := r.db.WithContext(ctx).Where("goal_id = ?", goalID).Order("id").Find(&dbKPIs).Error; err != nil {
		return nil, err
	}
	kpis := make([]domain.KPI, 0, len(dbKPIs))
	for _, k := range dbKPIs {
		kpis = append(kpis, domain.KPI{
			ID:        k.ID,
			GoalID:    k.GoalID,
			Name:      k.Name,
			Target:    k.Target,
			Current:   k.Current,
			Unit:      k.Unit,
			CreatedAt: k.CreatedAt,
			UpdatedAt: k.UpdatedAt,
		})
	}
	return kpis, nil
}

// UpdateKPI implements domain.GoalRepository
func (r *GoalRepositoryImpl) UpdateKPI(ctx context.Context, kpi *domain.KPI) error {
	res := r.db.WithContext(ctx).Model(&DBKPI{}).Where("id = ?", kpi.ID).
		Updates(map[string]interface{}{
			"name":    kpi.Name,
			"target":  kpi.Target,
			"current": kpi.Current,
			"unit":    kpi.Unit,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("KPI")
	}
	return nil
}

// DeleteKPI implements domain.GoalRepository
func (r *GoalRepositoryImpl) DeleteKPI(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBKPI{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("KPI")
	}
	return nil
}

func goalToDB(goal *domain.Goal) *DBGoal {
	return &DBGoal{
		ID:             goal.ID,
		BusinessUnitID: goal.BusinessUnitID,
		StakeholderID:  goal.StakeholderID,
		Title:          goal.Title,
		Description:    goal.Description,
		Quarter:        goal.Quarter,
		Status:         goal.Status,
	}
}

func goalToDomain(dbGoal *DBGoal) *domain.Goal {
	return &domain.Goal{
		ID:             dbGoal.ID,
		BusinessUnitID: dbGoal.BusinessUnitID,
		StakeholderID:  dbGoal.StakeholderID,
		Title:          dbGoal.Title,
		Description:    dbGoal.Description,
		Quarter:        dbGoal.Quarter,
		Status:         dbGoal.Status,
		CreatedAt:      dbGoal.CreatedAt,
		UpdatedAt:      dbGoal.UpdatedAt,
	}
}
