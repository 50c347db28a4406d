package mocks

import (
	"context"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// MockTeamRepository implements domain.TeamRepository interface for testing
type MockTeamRepository struct {
	CreateFunc       func(ctx context.Context, team *domain.Team) error
	FindByIDFunc     func(ctx context.Context, orgID, id uint) (*domain.Team, error)
	ListByOrgFunc    func(ctx context.Context, orgID uint) ([]domain.Team, error)
	UpdateFunc       func(ctx context.Context, team *domain.Team) error
	DeleteFunc       func(ctx context.Context, orgID, id uint) error
	CreateReviewFunc func(ctx context.Context, review *domain.OperationalReview) error
	ListReviewsFunc  func(ctx context.Context, teamID uint) ([]domain.OperationalReview, error)
	AddMemberFunc    func(ctx context.Context, member *domain.TeamMember) error
	ListMembersFunc  func(ctx context.Context, teamID uint) ([]domain.TeamMember, error)
	RemoveMemberFunc func(ctx context.Context, teamID, userID uint) error
}

// NewMockTeamRepository creates a new MockTeamRepository with default behaviors
func NewMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{}
}

// Create creates a team
func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, team)
	}
	// Default behavior: assign an ID
	if team.ID == 0 {
		team.ID = 1
	}
	return nil
}

// FindByID finds a team within the org
func (m *MockTeamRepository) FindByID(ctx context.Context, orgID, id uint) (*domain.Team, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, orgID, id)
	}
	// Default behavior: not found
	return nil, domain.NotFound("Team")
}

// ListByOrg returns the org's teams
func (m *MockTeamRepository) ListByOrg(ctx context.Context, orgID uint) ([]domain.Team, error) {
	if m.ListByOrgFunc != nil {
		return m.ListByOrgFunc(ctx, orgID)
	}
	// Default behavior: empty
	return []domain.Team{}, nil
}

// Update updates a team
func (m *MockTeamRepository) Update(ctx context.Context, team *domain.Team) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, team)
	}
	// Default behavior: success
	return nil
}

// Delete removes a team and its reviews
func (m *MockTeamRepository) Delete(ctx context.Context, orgID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, orgID, id)
	}
	// Default behavior: success
	return nil
}

// CreateReview records an operational review
func (m *MockTeamRepository) CreateReview(ctx context.Context, review *domain.OperationalReview) error {
	if m.CreateReviewFunc != nil {
		return m.CreateReviewFunc(ctx, review)
	}
	// Default behavior: assign an ID
	if review.ID == 0 {
		review.ID = 1
	}
	return nil
}

// ListReviews returns a team's reviews
func (m *MockTeamRepository) ListReviews(ctx context.Context, teamID uint) ([]domain.OperationalReview, error) {
	if m.ListReviewsFunc != nil {
		return m.ListReviewsFunc(ctx, teamID)
	}
	// Default behavior: empty
	return []domain.OperationalReview{}, nil
}

// AddMember joins a user to a team
func (m *MockTeamRepository) AddMember(ctx context.Context, member *domain.TeamMember) error {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(ctx, member)
	}
	// Default behavior: assign an ID
	if member.ID == 0 {
		member.ID = 1
	}
	return nil
}

// ListMembers returns a team's members
func (m *MockTeamRepository) ListMembers(ctx context.Context, teamID uint) ([]domain.TeamMember, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, teamID)
	}
	// Default behavior: empty
	return []domain.TeamMember{}, nil
}

// RemoveMember takes a user off a team
func (m *MockTeamRepository) RemoveMember(ctx context.Context, teamID, userID uint) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, teamID, userID)
	}
	// Default behavior: success
	return nil
}
