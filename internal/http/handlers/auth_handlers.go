package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/http/httpx"
	"github.com/fam-OS/truenorth-sub002/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
	otpSvc  domain.OTPService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, otpSvc domain.OTPService) *AuthHandlers {
	return &AuthHandlers{
		authSvc: authSvc,
		otpSvc:  otpSvc,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	OrganizationName string `json:"organizationName" binding:"required,min=2,max=255"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OTPVerifyRequest represents OTP verification request
type OTPVerifyRequest struct {
	Code           string `json:"code" binding:"required"`
	RememberDevice bool   `json:"rememberDevice"`
	DeviceLabel    string `json:"deviceLabel" binding:"max=255"`
}

// Register handles user + organization registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.OrganizationName, req.Email, req.Password)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	httpx.Created(c, gin.H{
		"message": "Registered successfully. Check your email for a verification code.",
		"userId":  user.ID,
		"orgId":   user.OrgID,
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	httpx.OK(c, gin.H{
		"sessionToken": result.SessionToken,
		"tokenType":    "Bearer",
		"expiresIn":    result.ExpiresIn,
		"mfaRequired":  result.User.MFAEnabled,
		"user": gin.H{
			"id":    result.User.ID,
			"email": result.User.Email,
			"role":  result.User.Role,
			"orgId": result.User.OrgID,
		},
	})
}

// RequestOTP issues an email OTP for the current session's user. A second
// call inside the code's lifetime is a success that sends nothing.
func (h *AuthHandlers) RequestOTP(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		httpx.Error(c, domain.ErrUnauthorized)
		return
	}

	resent, err := h.otpSvc.Request(c.Request.Context(), session.UserID, session.Email)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	httpx.OK(c, gin.H{"ok": true, "resent": resent})
}

// VerifyOTP checks the submitted code and marks the session MFA-verified.
// With rememberDevice set, the response carries a device token the client
// stores in the device cookie to skip future challenges.
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		httpx.Error(c, domain.ErrUnauthorized)
		return
	}

	var req OTPVerifyRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	if err := h.otpSvc.Verify(c.Request.Context(), session.UserID, req.Code); err != nil {
		httpx.Error(c, err)
		return
	}

	deviceToken, err := h.authSvc.CompleteMFA(c.Request.Context(), session, req.RememberDevice, req.DeviceLabel)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	log.Printf("MFA_VERIFIED: user_id=%d email=%s remembered=%t timestamp=%s",
		session.UserID, session.Email, req.RememberDevice, time.Now().UTC().Format(time.RFC3339))

	body := gin.H{"message": "MFA verified"}
	if deviceToken != "" {
		c.SetCookie(middleware.DeviceCookie, deviceToken, int((90 * 24 * time.Hour).Seconds()), "/", "", false, true)
		body["deviceToken"] = deviceToken
	}
	httpx.OK(c, body)
}

// MFAChallenge is the page the gate redirects unverified sessions to.
func (h *AuthHandlers) MFAChallenge(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"challenge": "mfa",
		"message":   "Verify the code sent to your email via POST /auth/otp/verify.",
	})
}

// Me handles getting the current user's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		httpx.Error(c, domain.ErrUnauthorized)
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), session.UserID)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	httpx.OK(c, userBody(user))
}

// Logout handles user logout
func (h *AuthHandlers) Logout(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		httpx.Error(c, domain.ErrUnauthorized)
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), session.ID); err != nil {
		httpx.Error(c, err)
		return
	}

	httpx.OK(c, gin.H{"message": "Logged out successfully"})
}

func userBody(user *domain.User) gin.H {
	styles := user.LeadershipStyles
	if styles == nil {
		styles = []string{}
	}
	return gin.H{
		"id":                 user.ID,
		"orgId":              user.OrgID,
		"email":              user.Email,
		"role":               user.Role,
		"isActive":           user.IsActive,
		"mfaEnabled":         user.MFAEnabled,
		"firstName":          user.FirstName,
		"lastName":           user.LastName,
		"companyName":        user.CompanyName,
		"level":              user.Level,
		"industry":           user.Industry,
		"leadershipStyles":   styles,
		"onboardingComplete": user.OnboardingComplete(),
		"createdAt":          user.CreatedAt,
		"updatedAt":          user.UpdatedAt,
	}
}
