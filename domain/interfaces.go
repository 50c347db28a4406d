package domain

import (
	"context"
	"io"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdateProfile(ctx context.Context, userID uint, profile Profile) (*User, error)
}

// Profile carries the onboarding fields written by PUT /api/profile.
type Profile struct {
	FirstName        string
	LastName         string
	CompanyName      string
	Level            string
	Industry         string
	LeadershipStyles []string
}

// OrganizationRepository defines tenant data access operations
type OrganizationRepository interface {
	Create(ctx context.Context, org *Organization) error
	FindByID(ctx context.Context, id uint) (*Organization, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}

// TrustedDeviceRepository defines trusted-device lookups and registration.
type TrustedDeviceRepository interface {
	Register(ctx context.Context, device *TrustedDevice) error
	IsTrusted(ctx context.Context, userID uint, tokenHash string) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]TrustedDevice, error)
	Delete(ctx context.Context, userID uint, deviceID uint) error
}

// BusinessUnitRepository defines business unit and stakeholder persistence.
type BusinessUnitRepository interface {
	Create(ctx context.Context, bu *BusinessUnit) error
	FindByID(ctx context.Context, orgID, id uint) (*BusinessUnit, error)
	ListByOrg(ctx context.Context, orgID uint) ([]BusinessUnit, error)
	Update(ctx context.Context, bu *BusinessUnit) error
	Delete(ctx context.Context, orgID, id uint) error

	CreateStakeholder(ctx context.Context, s *Stakeholder) error
	ListStakeholders(ctx context.Context, businessUnitID uint) ([]Stakeholder, error)
}

// GoalRepository defines goal and KPI persistence.
type GoalRepository interface {
	Create(ctx context.Context, goal *Goal) error
	FindByID(ctx context.Context, id uint) (*Goal, error)
	ListByBusinessUnit(ctx context.Context, businessUnitID uint) ([]Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id uint) error

	CreateKPI(ctx context.Context, kpi *KPI) error
	FindKPIByID(ctx context.Context, id uint) (*KPI, error)
	ListKPIs(ctx context.Context, goalID uint) ([]KPI, error)
	UpdateKPI(ctx context.Context, kpi *KPI) error
	DeleteKPI(ctx context.Context, id uint) error
}

// TaskRepository defines task and note persistence.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, orgID, id uint) (*Task, error)
	ListByOrg(ctx context.Context, orgID uint) ([]Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, orgID, id uint) error

	CreateNote(ctx context.Context, note *TaskNote) error
	ListNotes(ctx context.Context, taskID uint) ([]TaskNote, error)
}

// TeamRepository defines team and operational review persistence.
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	FindByID(ctx context.Context, orgID, id uint) (*Team, error)
	ListByOrg(ctx context.Context, orgID uint) ([]Team, error)
	Update(ctx context.Context, team *Team) error
	Delete(ctx context.Context, orgID, id uint) error

	CreateReview(ctx context.Context, review *OperationalReview) error
	ListReviews(ctx context.Context, teamID uint) ([]OperationalReview, error)

	AddMember(ctx context.Context, member *TeamMember) error
	ListMembers(ctx context.Context, teamID uint) ([]TeamMember, error)
	RemoveMember(ctx context.Context, teamID, userID uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, orgName, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
	CompleteMFA(ctx context.Context, session *Session, rememberDevice bool, deviceLabel string) (deviceToken string, err error)
}

// OTPService defines email OTP operations. Request reports resent=false when
// an unexpired code is already pending; that is a success, not an error.
type OTPService interface {
	Request(ctx context.Context, userID uint, email string) (resent bool, err error)
	Verify(ctx context.Context, userID uint, code string) error
}

// GateService evaluates the dashboard gate for a request.
type GateService interface {
	Evaluate(ctx context.Context, session *Session, deviceTokenHash, currentPath string) (GateOutcome, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService signs and validates bearer session tokens.
type TokenService interface {
	GenerateSessionToken(userID uint, role string, sessionID string) (string, error)
	ValidateSessionToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// PolicyService defines authorization policy operations. The booleans report
// whether the rule set actually changed.
type PolicyService interface {
	AddPolicy(role, resource, action string) (bool, error)
	RemovePolicy(role, resource, action string) (bool, error)
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() ([][]string, error)
}

// ExportService renders org data as downloadable documents.
type ExportService interface {
	WriteTasksCSV(ctx context.Context, w io.Writer, orgID uint) error
}

// TokenClaims represents signed session token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
