package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/http/httpx"
	"github.com/fam-OS/truenorth-sub002/internal/http/middleware"
)

// TeamHandlers handles team and operational review HTTP requests
type TeamHandlers struct {
	teamRepo domain.TeamRepository
}

// NewTeamHandlers creates new team handlers
func NewTeamHandlers(teamRepo domain.TeamRepository) *TeamHandlers {
	return &TeamHandlers{teamRepo: teamRepo}
}

// TeamRequest is the create/update payload.
type TeamRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// MemberRequest is the team membership payload.
type MemberRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// ReviewRequest is the operational review create payload.
type ReviewRequest struct {
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000,max=2100"`
	Summary    string `json:"summary" binding:"required,max=4000"`
	Highlights string `json:"highlights" binding:"max=4000"`
	Lowlights  string `json:"lowlights" binding:"max=4000"`
}

// List returns the org's teams.
func (h *TeamHandlers) List(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	teams, err := h.teamRepo.ListByOrg(c.Request.Context(), session.OrgID)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, teams)
}

// Create adds a team. Duplicate names within the org conflict.
func (h *TeamHandlers) Create(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	var req TeamRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	team := &domain.Team{OrgID: session.OrgID, Name: req.Name}
	if err := h.teamRepo.Create(c.Request.Context(), team); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, team)
}

// Get returns one team.
func (h *TeamHandlers) Get(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamRepo.FindByID(c.Request.Context(), session.OrgID, id)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, team)
}

// Update renames a team.
func (h *TeamHandlers) Update(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	var req TeamRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	team := &domain.Team{ID: id, OrgID: session.OrgID, Name: req.Name}
	if err := h.teamRepo.Update(c.Request.Context(), team); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, team)
}

// Delete removes a team and its reviews.
func (h *TeamHandlers) Delete(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamRepo.Delete(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}

// ListMembers returns a team's members, existence pre-checked.
func (h *TeamHandlers) ListMembers(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.teamRepo.FindByID(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	members, err := h.teamRepo.ListMembers(c.Request.Context(), id)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, members)
}

// AddMember joins a user to a team, existence pre-checked. Joining the same
// team twice conflicts.
func (h *TeamHandlers) AddMember(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	var req MemberRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	if _, err := h.teamRepo.FindByID(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	member := &domain.TeamMember{TeamID: id, UserID: req.UserID}
	if err := h.teamRepo.AddMember(c.Request.Context(), member); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, member)
}

// RemoveMember takes a user off a team, existence pre-checked.
func (h *TeamHandlers) RemoveMember(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := httpx.IDParam(c, "user_id")
	if !ok {
		return
	}

	if _, err := h.teamRepo.FindByID(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	if err := h.teamRepo.RemoveMember(c.Request.Context(), id, userID); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}

// ListReviews returns a team's operational reviews, existence pre-checked.
func (h *TeamHandlers) ListReviews(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.teamRepo.FindByID(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	reviews, err := h.teamRepo.ListReviews(c.Request.Context(), id)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, reviews)
}

// CreateReview records an operational review, existence pre-checked.
func (h *TeamHandlers) CreateReview(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	var req ReviewRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	if _, err := h.teamRepo.FindByID(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	review := &domain.OperationalReview{
		TeamID:     id,
		Month:      req.Month,
		Year:       req.Year,
		Summary:    req.Summary,
		Highlights: req.Highlights,
		Lowlights:  req.Lowlights,
	}
	if err := h.teamRepo.CreateReview(c.Request.Context(), review); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, review)
}
