package domain

import "time"

// Organization is the tenant boundary. Every dashboard resource belongs to
// exactly one organization.
type Organization struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User represents an authenticated account. The profile fields below the
// credentials block are what onboarding collects; completeness is derived
// from them on every gated request, never stored.
type User struct {
	ID           uint
	OrgID        uint
	Email        string
	PasswordHash string `gorm:"column:password"`
	Role         string
	IsActive     bool
	MFAEnabled   bool

	FirstName        string
	LastName         string
	CompanyName      string
	Level            string
	Industry         string
	LeadershipStyles []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OnboardingComplete reports whether the user has filled every required
// profile field: all scalars non-empty and at least one leadership style.
func (u *User) OnboardingComplete() bool {
	if u.FirstName == "" || u.LastName == "" || u.CompanyName == "" {
		return false
	}
	if u.Level == "" || u.Industry == "" {
		return false
	}
	return len(u.LeadershipStyles) > 0
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	SessionToken string
	SessionID    string
	ExpiresIn    int64
}

// OTPRequest represents an issued email OTP
type OTPRequest struct {
	Email     string
	Code      string
	UserID    uint
	ExpiresAt time.Time
	Attempts  int
}

// Session is the per-request authentication context. MFA carries the
// tri-state verification flag; see MFAStatus for its semantics.
type Session struct {
	ID        string
	UserID    uint
	OrgID     uint
	Email     string
	MFA       MFAStatus
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TrustedDevice marks a device that skips repeated MFA challenges. The raw
// device token is only ever held by the client; we store its hash.
type TrustedDevice struct {
	ID        uint
	UserID    uint
	TokenHash string
	Label     string
	LastSeen  time.Time
	CreatedAt time.Time
}

// BusinessUnit groups stakeholders and goals under an organization.
type BusinessUnit struct {
	ID          uint      `json:"id"`
	OrgID       uint      `json:"orgId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Stakeholder is a named contact attached to a business unit.
type Stakeholder struct {
	ID             uint      `json:"id"`
	BusinessUnitID uint      `json:"businessUnitId"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Goal statuses.
const (
	GoalStatusDraft    = "DRAFT"
	GoalStatusActive   = "ACTIVE"
	GoalStatusAchieved = "ACHIEVED"
	GoalStatusMissed   = "MISSED"
)

// Goal is a quarterly objective owned by a business unit.
type Goal struct {
	ID             uint      `json:"id"`
	BusinessUnitID uint      `json:"businessUnitId"`
	StakeholderID  *uint     `json:"stakeholderId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Quarter        string    `json:"quarter"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// KPI is a measurable indicator attached to a goal. Name is unique per goal.
type KPI struct {
	ID        uint      `json:"id"`
	GoalID    uint      `json:"goalId"`
	Name      string    `json:"name"`
	Target    float64   `json:"target"`
	Current   float64   `json:"current"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Task statuses.
const (
	TaskStatusTodo       = "TODO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// Task is an org-scoped work item with attached notes.
type Task struct {
	ID         uint       `json:"id"`
	OrgID      uint       `json:"orgId"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	AssigneeID *uint      `json:"assigneeId"`
	Notes      []TaskNote `json:"notes"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// TaskNote is a free-form note on a task. Deleting the task deletes its notes.
type TaskNote struct {
	ID        uint      `json:"id"`
	TaskID    uint      `json:"taskId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Team is an org-scoped group that runs operational reviews.
type Team struct {
	ID        uint      `json:"id"`
	OrgID     uint      `json:"orgId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamMember links a user to a team. A user joins a team at most once.
type TeamMember struct {
	ID        uint      `json:"id"`
	TeamID    uint      `json:"teamId"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// OperationalReview is a monthly team retrospective.
type OperationalReview struct {
	ID         uint      `json:"id"`
	TeamID     uint      `json:"teamId"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	Summary    string    `json:"summary"`
	Highlights string    `json:"highlights"`
	Lowlights  string    `json:"lowlights"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
