package mocks

import (
	"context"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// MockOrganizationRepository implements domain.OrganizationRepository interface for testing
type MockOrganizationRepository struct {
	CreateFunc   func(ctx context.Context, org *domain.Organization) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Organization, error)
}

// NewMockOrganizationRepository creates a new MockOrganizationRepository with default behaviors
func NewMockOrganizationRepository() *MockOrganizationRepository {
	return &MockOrganizationRepository{}
}

// Create creates a new organization
func (m *MockOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, org)
	}
	// Default behavior: assign an ID
	if org.ID == 0 {
		org.ID = 1
	}
	return nil
}

// FindByID finds an organization by ID
func (m *MockOrganizationRepository) FindByID(ctx context.Context, id uint) (*domain.Organization, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: return a mock organization
	return &domain.Organization{ID: id, Name: "Acme"}, nil
}
