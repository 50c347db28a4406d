package mocks

import "context"

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	RequestFunc func(ctx context.Context, userID uint, email string) (bool, error)
	VerifyFunc  func(ctx context.Context, userID uint, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Request issues or reuses a pending code
func (m *MockOTPService) Request(ctx context.Context, userID uint, email string) (bool, error) {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, userID, email)
	}
	// Default behavior: a fresh code was sent
	return true, nil
}

// Verify checks a submitted code
func (m *MockOTPService) Verify(ctx context.Context, userID uint, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, userID, code)
	}
	// Default behavior: success
	return nil
}
