package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/mocks"
)

type authServiceMocks struct {
	userRepo    *mocks.MockUserRepository
	orgRepo     *mocks.MockOrganizationRepository
	sessionRepo *mocks.MockSessionRepository
	deviceRepo  *mocks.MockTrustedDeviceRepository
	passwordSvc *mocks.MockPasswordService
	tokenSvc    *mocks.MockTokenService
	otpSvc      *mocks.MockOTPService
}

func setupAuthService(t *testing.T) (domain.AuthService, *authServiceMocks) {
	t.Helper()

	m := &authServiceMocks{
		userRepo:    mocks.NewMockUserRepository(),
		orgRepo:     mocks.NewMockOrganizationRepository(),
		sessionRepo: mocks.NewMockSessionRepository(),
		deviceRepo:  mocks.NewMockTrustedDeviceRepository(),
		passwordSvc: mocks.NewMockPasswordService(),
		tokenSvc:    mocks.NewMockTokenService(),
		otpSvc:      mocks.NewMockOTPService(),
	}
	svc := NewAuthService(m.userRepo, m.orgRepo, m.sessionRepo, m.deviceRepo, m.passwordSvc, m.tokenSvc, m.otpSvc, time.Hour)
	return svc, m
}

func activeUser() *domain.User {
	return &domain.User{
		ID:           1,
		OrgID:        7,
		Email:        "user@example.com",
		PasswordHash: "hashed_correcthorse",
		Role:         "user",
		IsActive:     true,
		MFAEnabled:   true,
	}
}

func TestAuthServiceImpl_Register(t *testing.T) {
	t.Run("creates org then user and requests an OTP", func(t *testing.T) {
		svc, m := setupAuthService(t)

		m.orgRepo.CreateFunc = func(ctx context.Context, org *domain.Organization) error {
			if org.Name != "Acme" {
				t.Errorf("expected org name Acme, got %s", org.Name)
			}
			org.ID = 7
			return nil
		}

		var createdUser *domain.User
		m.userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			user.ID = 1
			createdUser = user
			return nil
		}

		otpRequested := false
		m.otpSvc.RequestFunc = func(ctx context.Context, userID uint, email string) (bool, error) {
			otpRequested = true
			if userID != 1 || email != "new@example.com" {
				t.Errorf("unexpected OTP target: user=%d email=%s", userID, email)
			}
			return true, nil
		}

		user, err := svc.Register(context.Background(), "Acme", "new@example.com", "correcthorse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.OrgID != 7 {
			t.Errorf("expected user in org 7, got %d", user.OrgID)
		}
		if user.Role != "user" || !user.IsActive || !user.MFAEnabled {
			t.Errorf("unexpected defaults: %+v", user)
		}
		if createdUser.PasswordHash != "hashed_correcthorse" {
			t.Errorf("expected hashed password, got %s", createdUser.PasswordHash)
		}
		if !otpRequested {
			t.Error("expected an OTP request after registration")
		}
	})

	t.Run("duplicate email is rejected before any write", func(t *testing.T) {
		svc, m := setupAuthService(t)

		m.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return activeUser(), nil
		}
		m.orgRepo.CreateFunc = func(ctx context.Context, org *domain.Organization) error {
			t.Error("org must not be created for a duplicate email")
			return nil
		}

		_, err := svc.Register(context.Background(), "Acme", "user@example.com", "pw12345678")
		if !errors.Is(err, domain.ErrUserAlreadyExists) {
			t.Errorf("expected ErrUserAlreadyExists, got %v", err)
		}
	})
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		setupMocks    func(m *authServiceMocks)
		expectedError error
		expectedMFA   domain.MFAStatus
	}{
		{
			name:     "mfa-enabled user starts not verified",
			password: "correcthorse",
			setupMocks: func(m *authServiceMocks) {
				m.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return activeUser(), nil
				}
			},
			expectedMFA: domain.MFANotVerified,
		},
		{
			name:     "mfa-disabled user starts unknown",
			password: "correcthorse",
			setupMocks: func(m *authServiceMocks) {
				m.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					u := activeUser()
					u.MFAEnabled = false
					return u, nil
				}
			},
			expectedMFA: domain.MFAUnknown,
		},
		{
			name:     "unknown email reads as invalid credentials",
			password: "correcthorse",
			setupMocks: func(m *authServiceMocks) {
				m.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "tr0ub4dor",
			setupMocks: func(m *authServiceMocks) {
				m.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return activeUser(), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "inactive user",
			password: "correcthorse",
			setupMocks: func(m *authServiceMocks) {
				m.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					u := activeUser()
					u.IsActive = false
					return u, nil
				}
			},
			expectedError: domain.ErrUserInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupAuthService(t)
			tt.setupMocks(m)

			var createdSession *domain.Session
			m.sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
				createdSession = session
				return nil
			}

			result, err := svc.Login(context.Background(), "user@example.com", tt.password)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if createdSession == nil {
				t.Fatal("expected a session to be created")
			}
			if createdSession.MFA != tt.expectedMFA {
				t.Errorf("expected session MFA %v, got %v", tt.expectedMFA, createdSession.MFA)
			}
			if createdSession.OrgID != 7 {
				t.Errorf("expected session org 7, got %d", createdSession.OrgID)
			}
			if result.SessionID != createdSession.ID {
				t.Error("result session ID must match the stored session")
			}
			if result.SessionToken == "" {
				t.Error("expected a signed session token")
			}
		})
	}
}

func TestAuthServiceImpl_CompleteMFA(t *testing.T) {
	t.Run("marks the session verified", func(t *testing.T) {
		svc, m := setupAuthService(t)

		var updated *domain.Session
		m.sessionRepo.UpdateFunc = func(ctx context.Context, session *domain.Session) error {
			updated = session
			return nil
		}

		session := &domain.Session{ID: "s1", UserID: 1, MFA: domain.MFANotVerified}
		token, err := svc.CompleteMFA(context.Background(), session, false, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "" {
			t.Error("no device token expected without rememberDevice")
		}
		if updated == nil || updated.MFA != domain.MFAVerified {
			t.Error("expected the stored session flipped to MFAVerified")
		}
	})

	t.Run("remembering the device registers its hash", func(t *testing.T) {
		svc, m := setupAuthService(t)

		var registered *domain.TrustedDevice
		m.deviceRepo.RegisterFunc = func(ctx context.Context, device *domain.TrustedDevice) error {
			registered = device
			return nil
		}

		session := &domain.Session{ID: "s1", UserID: 1, MFA: domain.MFANotVerified}
		token, err := svc.CompleteMFA(context.Background(), session, true, "work laptop")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatal("expected a raw device token")
		}
		if registered == nil {
			t.Fatal("expected a trusted device registration")
		}
		if registered.TokenHash != HashDeviceToken(token) {
			t.Error("stored hash must match the raw token's hash")
		}
		if registered.TokenHash == token {
			t.Error("the raw token must never be stored")
		}
		if registered.Label != "work laptop" {
			t.Errorf("expected label to be kept, got %q", registered.Label)
		}
	})
}
