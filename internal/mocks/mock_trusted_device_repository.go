package mocks

import (
	"context"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// MockTrustedDeviceRepository implements domain.TrustedDeviceRepository interface for testing
type MockTrustedDeviceRepository struct {
	RegisterFunc   func(ctx context.Context, device *domain.TrustedDevice) error
	IsTrustedFunc  func(ctx context.Context, userID uint, tokenHash string) (bool, error)
	ListByUserFunc func(ctx context.Context, userID uint) ([]domain.TrustedDevice, error)
	DeleteFunc     func(ctx context.Context, userID uint, deviceID uint) error
}

// NewMockTrustedDeviceRepository creates a new MockTrustedDeviceRepository with default behaviors
func NewMockTrustedDeviceRepository() *MockTrustedDeviceRepository {
	return &MockTrustedDeviceRepository{}
}

// Register stores a trusted device
func (m *MockTrustedDeviceRepository) Register(ctx context.Context, device *domain.TrustedDevice) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, device)
	}
	// Default behavior: success
	return nil
}

// IsTrusted checks a device token hash for a user
func (m *MockTrustedDeviceRepository) IsTrusted(ctx context.Context, userID uint, tokenHash string) (bool, error) {
	if m.IsTrustedFunc != nil {
		return m.IsTrustedFunc(ctx, userID, tokenHash)
	}
	// Default behavior: not trusted
	return false, nil
}

// ListByUser returns the user's trusted devices
func (m *MockTrustedDeviceRepository) ListByUser(ctx context.Context, userID uint) ([]domain.TrustedDevice, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	// Default behavior: none
	return []domain.TrustedDevice{}, nil
}

// Delete removes a trusted device
func (m *MockTrustedDeviceRepository) Delete(ctx context.Context, userID uint, deviceID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, deviceID)
	}
	// Default behavior: success
	return nil
}
