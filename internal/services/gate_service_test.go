package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/mocks"
)

const testOnboardingPath = "/dashboard/onboarding"

func testSession(mfa domain.MFAStatus) *domain.Session {
	return &domain.Session{
		ID:        "session_123",
		UserID:    1,
		OrgID:     1,
		Email:     "user@example.com",
		MFA:       mfa,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
}

func TestGateServiceImpl_Evaluate(t *testing.T) {
	tests := []struct {
		name            string
		session         *domain.Session
		deviceTokenHash string
		currentPath     string
		setupMocks      func(*mocks.MockUserRepository, *mocks.MockTrustedDeviceRepository)
		expectedOutcome domain.GateOutcome
		expectError     bool
	}{
		{
			name:            "nil session proceeds without lookups",
			session:         nil,
			currentPath:     "/dashboard",
			setupMocks:      func(userRepo *mocks.MockUserRepository, deviceRepo *mocks.MockTrustedDeviceRepository) {},
			expectedOutcome: domain.GateProceed,
		},
		{
			name:        "not verified and untrusted redirects without user lookup",
			session:     testSession(domain.MFANotVerified),
			currentPath: "/dashboard",
			setupMocks: func(userRepo *mocks.MockUserRepository, deviceRepo *mocks.MockTrustedDeviceRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					t.Error("user lookup should be skipped when the MFA branch decides")
					return nil, domain.ErrUserNotFound
				}
			},
			expectedOutcome: domain.GateRedirectMFA,
		},
		{
			name:            "trusted device bypasses MFA but incomplete profile redirects",
			session:         testSession(domain.MFANotVerified),
			deviceTokenHash: "hash_abc",
			currentPath:     "/dashboard",
			setupMocks: func(userRepo *mocks.MockUserRepository, deviceRepo *mocks.MockTrustedDeviceRepository) {
				deviceRepo.IsTrustedFunc = func(ctx context.Context, userID uint, tokenHash string) (bool, error) {
					return tokenHash == "hash_abc", nil
				}
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return &domain.User{ID: id, Email: "user@example.com"}, nil
				}
			},
			expectedOutcome: domain.GateRedirectOnboarding,
		},
		{
			name:        "verified user with complete profile proceeds",
			session:     testSession(domain.MFAVerified),
			currentPath: "/dashboard",
			setupMocks: func(userRepo *mocks.MockUserRepository, deviceRepo *mocks.MockTrustedDeviceRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return &domain.User{
						ID:               id,
						FirstName:        "Ada",
						LastName:         "Lovelace",
						CompanyName:      "Analytical Engines",
						Level:            "C_LEVEL",
						Industry:         "Technology",
						LeadershipStyles: []string{"VISIONARY"},
					}, nil
				}
			},
			expectedOutcome: domain.GateProceed,
		},
		{
			name:        "device lookup failure fails closed",
			session:     testSession(domain.MFAVerified),
			currentPath: "/dashboard",
			setupMocks: func(userRepo *mocks.MockUserRepository, deviceRepo *mocks.MockTrustedDeviceRepository) {
				deviceRepo.IsTrustedFunc = func(ctx context.Context, userID uint, tokenHash string) (bool, error) {
					return false, errors.New("connection refused")
				}
			},
			expectError: true,
		},
		{
			name:        "user lookup failure fails closed",
			session:     testSession(domain.MFAVerified),
			currentPath: "/dashboard",
			setupMocks: func(userRepo *mocks.MockUserRepository, deviceRepo *mocks.MockTrustedDeviceRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return nil, errors.New("connection refused")
				}
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			deviceRepo := mocks.NewMockTrustedDeviceRepository()
			tt.setupMocks(userRepo, deviceRepo)

			svc := NewGateService(userRepo, deviceRepo, testOnboardingPath)
			outcome, err := svc.Evaluate(context.Background(), tt.session, tt.deviceTokenHash, tt.currentPath)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome != tt.expectedOutcome {
				t.Errorf("expected outcome %v, got %v", tt.expectedOutcome, outcome)
			}
		})
	}
}
