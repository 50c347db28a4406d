package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/http/httpx"
	"github.com/fam-OS/truenorth-sub002/internal/http/middleware"
)

// UserHandlers handles user profile HTTP requests
type UserHandlers struct {
	userRepo domain.UserRepository
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userRepo domain.UserRepository) *UserHandlers {
	return &UserHandlers{userRepo: userRepo}
}

// ProfileRequest carries the onboarding profile fields.
type ProfileRequest struct {
	FirstName        string   `json:"firstName" binding:"required,max=255"`
	LastName         string   `json:"lastName" binding:"required,max=255"`
	CompanyName      string   `json:"companyName" binding:"required,max=255"`
	Level            string   `json:"level" binding:"required,oneof=C_LEVEL VP DIRECTOR MANAGER IC"`
	Industry         string   `json:"industry" binding:"required,max=255"`
	LeadershipStyles []string `json:"leadershipStyles" binding:"required,min=1,dive,max=64"`
}

// UpdateProfile writes the current user's onboarding profile.
func (h *UserHandlers) UpdateProfile(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		httpx.Error(c, domain.ErrUnauthorized)
		return
	}

	var req ProfileRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	user, err := h.userRepo.UpdateProfile(c.Request.Context(), session.UserID, domain.Profile{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		CompanyName:      req.CompanyName,
		Level:            req.Level,
		Industry:         req.Industry,
		LeadershipStyles: req.LeadershipStyles,
	})
	if err != nil {
		httpx.Error(c, err)
		return
	}

	httpx.OK(c, userBody(user))
}

// GetByID returns a user record. Reachable by admins and, through the
// ownership rules, by the user themselves.
func (h *UserHandlers) GetByID(c *gin.Context) {
	raw := c.Param("user_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httpx.Error(c, domain.ErrUserNotFound)
		return
	}

	user, lookupErr := h.userRepo.FindByID(c.Request.Context(), uint(id))
	if lookupErr != nil {
		httpx.Error(c, lookupErr)
		return
	}

	httpx.OK(c, userBody(user))
}

// UpdateByID writes a user's onboarding profile by id. Same ownership
// semantics as GetByID.
func (h *UserHandlers) UpdateByID(c *gin.Context) {
	raw := c.Param("user_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httpx.Error(c, domain.ErrUserNotFound)
		return
	}

	var req ProfileRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	user, updateErr := h.userRepo.UpdateProfile(c.Request.Context(), uint(id), domain.Profile{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		CompanyName:      req.CompanyName,
		Level:            req.Level,
		Industry:         req.Industry,
		LeadershipStyles: req.LeadershipStyles,
	})
	if updateErr != nil {
		httpx.Error(c, updateErr)
		return
	}

	httpx.OK(c, userBody(user))
}
