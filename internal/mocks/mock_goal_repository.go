package mocks

import (
	"context"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// MockGoalRepository implements domain.GoalRepository interface for testing
type MockGoalRepository struct {
	CreateFunc             func(ctx context.Context, goal *domain.Goal) error
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.Goal, error)
	ListByBusinessUnitFunc func(ctx context.Context, businessUnitID uint) ([]domain.Goal, error)
	UpdateFunc             func(ctx context.Context, goal *domain.Goal) error
	DeleteFunc             func(ctx context.Context, id uint) error
	CreateKPIFunc          func(ctx context.Context, kpi *domain.KPI) error
	FindKPIByIDFunc        func(ctx context.Context, id uint) (*domain.KPI, error)
	ListKPIsFunc           func(ctx context.Context, goalID uint) ([]domain.KPI, error)
	UpdateKPIFunc          func(ctx context.Context, kpi *domain.KPI) error
	DeleteKPIFunc          func(ctx context.Context, id uint) error
}

// NewMockGoalRepository creates a new MockGoalRepository with default behaviors
func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{}
}

// Create creates a goal
func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, goal)
	}
	// Default behavior: assign an ID
	if goal.ID == 0 {
		goal.ID = 1
	}
	return nil
}

// FindByID finds a goal by ID
func (m *MockGoalRepository) FindByID(ctx context.Context, id uint) (*domain.Goal, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.NotFound("Goal")
}

// ListByBusinessUnit returns a business unit's goals
func (m *MockGoalRepository) ListByBusinessUnit(ctx context.Context, businessUnitID uint) ([]domain.Goal, error) {
	if m.ListByBusinessUnitFunc != nil {
		return m.ListByBusinessUnitFunc(ctx, businessUnitID)
	}
	// Default behavior: empty
	return []domain.Goal{}, nil
}

// Update updates a goal
func (m *MockGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, goal)
	}
	// Default behavior: success
	return nil
}

// Delete removes a goal and its KPIs
func (m *MockGoalRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// CreateKPI attaches a KPI to a goal
func (m *MockGoalRepository) CreateKPI(ctx context.Context, kpi *domain.KPI) error {
	if m.CreateKPIFunc != nil {
		return m.CreateKPIFunc(ctx, kpi)
	}
	// Default behavior: assign an ID
	if kpi.ID == 0 {
		kpi.ID = 1
	}
	return nil
}

// FindKPIByID returns a KPI by ID
func (m *MockGoalRepository) FindKPIByID(ctx context.Context, id uint) (*domain.KPI, error) {
	if m.FindKPIByIDFunc != nil {
		return m.FindKPIByIDFunc(ctx, id)
	}
	// Default behavior: found
	return &domain.KPI{ID: id, GoalID: 1, Name: "mock-kpi"}, nil
}

// ListKPIs returns a goal's KPIs
func (m *MockGoalRepository) ListKPIs(ctx context.Context, goalID uint) ([]domain.KPI, error) {
	if m.ListKPIsFunc != nil {
		return m.ListKPIsFunc(ctx, goalID)
	}
	// Default behavior: empty
	return []domain.KPI{}, nil
}

// UpdateKPI updates a KPI
func (m *MockGoalRepository) UpdateKPI(ctx context.Context, kpi *domain.KPI) error {
	if m.UpdateKPIFunc != nil {
		return m.UpdateKPIFunc(ctx, kpi)
	}
	// Default behavior: success
	return nil
}

// DeleteKPI removes a KPI
func (m *MockGoalRepository) DeleteKPI(ctx context.Context, id uint) error {
	if m.DeleteKPIFunc != nil {
		return m.DeleteKPIFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}
