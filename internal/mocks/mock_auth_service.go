package mocks

import (
	"context"
	"time"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, orgName, email, password string) (*domain.User, error)
	LoginFunc          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	LogoutFunc         func(ctx context.Context, sessionID string) error
	GetUserProfileFunc func(ctx context.Context, userID uint) (*domain.User, error)
	CompleteMFAFunc    func(ctx context.Context, session *domain.Session, rememberDevice bool, deviceLabel string) (string, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register creates an organization and its first user
func (m *MockAuthService) Register(ctx context.Context, orgName, email, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, orgName, email, password)
	}
	// Default behavior: return a mock user
	return &domain.User{
		ID:         1,
		OrgID:      1,
		Email:      email,
		Role:       "user",
		IsActive:   true,
		MFAEnabled: true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}, nil
}

// Login authenticates a user and opens a session
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: successful login
	return &domain.AuthResult{
		User: &domain.User{
			ID:       1,
			OrgID:    1,
			Email:    email,
			Role:     "user",
			IsActive: true,
		},
		SessionToken: "mock_session_token",
		SessionID:    "mock_session_id",
		ExpiresIn:    3600,
	}, nil
}

// Logout revokes a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// GetUserProfile returns the user's profile
func (m *MockAuthService) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	// Default behavior: return a mock user
	return &domain.User{
		ID:       userID,
		OrgID:    1,
		Email:    "test@example.com",
		Role:     "user",
		IsActive: true,
	}, nil
}

// CompleteMFA marks the session verified and optionally trusts the device
func (m *MockAuthService) CompleteMFA(ctx context.Context, session *domain.Session, rememberDevice bool, deviceLabel string) (string, error) {
	if m.CompleteMFAFunc != nil {
		return m.CompleteMFAFunc(ctx, session, rememberDevice, deviceLabel)
	}
	// Default behavior: mark verified, mint a token only when remembering
	session.MFA = domain.MFAVerified
	if rememberDevice {
		return "mock_device_token", nil
	}
	return "", nil
}
