package mocks

import (
	"context"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// MockGateService implements domain.GateService interface for testing
type MockGateService struct {
	EvaluateFunc func(ctx context.Context, session *domain.Session, deviceTokenHash, currentPath string) (domain.GateOutcome, error)
}

// NewMockGateService creates a new MockGateService with default behaviors
func NewMockGateService() *MockGateService {
	return &MockGateService{}
}

// Evaluate decides the gate outcome for a request
func (m *MockGateService) Evaluate(ctx context.Context, session *domain.Session, deviceTokenHash, currentPath string) (domain.GateOutcome, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, session, deviceTokenHash, currentPath)
	}
	// Default behavior: proceed
	return domain.GateProceed, nil
}
