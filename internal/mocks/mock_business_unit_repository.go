package mocks

import (
	"context"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// MockBusinessUnitRepository implements domain.BusinessUnitRepository interface for testing
type MockBusinessUnitRepository struct {
	CreateFunc            func(ctx context.Context, bu *domain.BusinessUnit) error
	FindByIDFunc          func(ctx context.Context, orgID, id uint) (*domain.BusinessUnit, error)
	ListByOrgFunc         func(ctx context.Context, orgID uint) ([]domain.BusinessUnit, error)
	UpdateFunc            func(ctx context.Context, bu *domain.BusinessUnit) error
	DeleteFunc            func(ctx context.Context, orgID, id uint) error
	CreateStakeholderFunc func(ctx context.Context, s *domain.Stakeholder) error
	ListStakeholdersFunc  func(ctx context.Context, businessUnitID uint) ([]domain.Stakeholder, error)
}

// NewMockBusinessUnitRepository creates a new MockBusinessUnitRepository with default behaviors
func NewMockBusinessUnitRepository() *MockBusinessUnitRepository {
	return &MockBusinessUnitRepository{}
}

// Create creates a business unit
func (m *MockBusinessUnitRepository) Create(ctx context.Context, bu *domain.BusinessUnit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, bu)
	}
	// Default behavior: assign an ID
	if bu.ID == 0 {
		bu.ID = 1
	}
	return nil
}

// FindByID finds a business unit within the org
func (m *MockBusinessUnitRepository) FindByID(ctx context.Context, orgID, id uint) (*domain.BusinessUnit, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, orgID, id)
	}
	// Default behavior: not found
	return nil, domain.NotFound("Business unit")
}

// ListByOrg returns the org's business units
func (m *MockBusinessUnitRepository) ListByOrg(ctx context.Context, orgID uint) ([]domain.BusinessUnit, error) {
	if m.ListByOrgFunc != nil {
		return m.ListByOrgFunc(ctx, orgID)
	}
	// Default behavior: empty
	return []domain.BusinessUnit{}, nil
}

// Update updates a business unit
func (m *MockBusinessUnitRepository) Update(ctx context.Context, bu *domain.BusinessUnit) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, bu)
	}
	// Default behavior: success
	return nil
}

// Delete removes a business unit and its stakeholders
func (m *MockBusinessUnitRepository) Delete(ctx context.Context, orgID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, orgID, id)
	}
	// Default behavior: success
	return nil
}

// CreateStakeholder attaches a stakeholder to a business unit
func (m *MockBusinessUnitRepository) CreateStakeholder(ctx context.Context, s *domain.Stakeholder) error {
	if m.CreateStakeholderFunc != nil {
		return m.CreateStakeholderFunc(ctx, s)
	}
	// Default behavior: assign an ID
	if s.ID == 0 {
		s.ID = 1
	}
	return nil
}

// ListStakeholders returns a business unit's stakeholders
func (m *MockBusinessUnitRepository) ListStakeholders(ctx context.Context, businessUnitID uint) ([]domain.Stakeholder, error) {
	if m.ListStakeholdersFunc != nil {
		return m.ListStakeholdersFunc(ctx, businessUnitID)
	}
	// Default behavior: empty
	return []domain.Stakeholder{}, nil
}
