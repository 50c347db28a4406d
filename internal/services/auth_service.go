package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	orgRepo     domain.OrganizationRepository
	sessionRepo domain.SessionRepository
	deviceRepo  domain.TrustedDeviceRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	sessionTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	orgRepo domain.OrganizationRepository,
	sessionRepo domain.SessionRepository,
	deviceRepo domain.TrustedDeviceRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	sessionTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		orgRepo:     orgRepo,
		sessionRepo: sessionRepo,
		deviceRepo:  deviceRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		sessionTTL:  sessionTTL,
	}
}

// Register implements domain.AuthService. A fresh organization is created for
// the registering user, who becomes its first member.
func (s *AuthServiceImpl) Register(ctx context.Context, orgName, email, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	org := &domain.Organization{Name: orgName}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	user := &domain.User{
		OrgID:        org.ID,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         "user",
		IsActive:     true,
		MFAEnabled:   true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Kick off the first MFA challenge. Request treats an already-pending
	// code as success, so retried registrations do not double-send.
	if _, err := s.otpSvc.Request(ctx, user.ID, user.Email); err != nil {
		return nil, fmt.Errorf("failed to send OTP: %w", err)
	}

	return user, nil
}

// Login implements domain.AuthService. The session starts MFANotVerified for
// users with MFA enabled and MFAUnknown otherwise; the gate treats those two
// states differently on purpose.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	mfa := domain.MFAUnknown
	if user.MFAEnabled {
		mfa = domain.MFANotVerified
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		OrgID:     user.OrgID,
		Email:     user.Email,
		MFA:       mfa,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.tokenSvc.GenerateSessionToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		SessionToken: token,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.sessionTTL.Seconds()),
	}, nil
}

// CompleteMFA implements domain.AuthService. Called after a successful OTP
// verify: flips the session to MFAVerified and, when asked, mints a trusted
// device token whose hash is persisted.
func (s *AuthServiceImpl) CompleteMFA(ctx context.Context, session *domain.Session, rememberDevice bool, deviceLabel string) (string, error) {
	session.MFA = domain.MFAVerified
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return "", fmt.Errorf("failed to update session: %w", err)
	}

	if !rememberDevice {
		return "", nil
	}

	deviceToken := uuid.NewString()
	device := &domain.TrustedDevice{
		UserID:    session.UserID,
		TokenHash: HashDeviceToken(deviceToken),
		Label:     deviceLabel,
	}
	if err := s.deviceRepo.Register(ctx, device); err != nil {
		return "", fmt.Errorf("failed to register trusted device: %w", err)
	}

	return deviceToken, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// HashDeviceToken derives the stored form of a raw device token.
func HashDeviceToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
