package services

import (
	"context"
	"fmt"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// GateServiceImpl implements domain.GateService. It resolves the trusted
// device and onboarding snapshot for the session's user, then hands the
// decision to domain.DecideGateOutcome so both gate layers branch in exactly
// one place.
type GateServiceImpl struct {
	userRepo       domain.UserRepository
	deviceRepo     domain.TrustedDeviceRepository
	onboardingPath string
}

// NewGateService creates a new gate service
func NewGateService(userRepo domain.UserRepository, deviceRepo domain.TrustedDeviceRepository, onboardingPath string) domain.GateService {
	return &GateServiceImpl{
		userRepo:       userRepo,
		deviceRepo:     deviceRepo,
		onboardingPath: onboardingPath,
	}
}

// Evaluate implements domain.GateService. A collaborator failure is returned
// to the caller and must fail closed: the gate never grants access on an
// unresolved lookup.
func (s *GateServiceImpl) Evaluate(ctx context.Context, session *domain.Session, deviceTokenHash, currentPath string) (domain.GateOutcome, error) {
	if session == nil {
		return domain.GateProceed, nil
	}

	trusted, err := s.deviceRepo.IsTrusted(ctx, session.UserID, deviceTokenHash)
	if err != nil {
		return domain.GateProceed, fmt.Errorf("trusted device lookup: %w", err)
	}

	// The MFA branch needs no user record; skip the lookup when it decides.
	if session.MFA == domain.MFANotVerified && !trusted {
		return domain.GateRedirectMFA, nil
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return domain.GateProceed, fmt.Errorf("user lookup: %w", err)
	}

	return domain.DecideGateOutcome(session, trusted, user.OnboardingComplete(), currentPath, s.onboardingPath), nil
}
