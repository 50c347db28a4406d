package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/http/httpx"
	"github.com/fam-OS/truenorth-sub002/internal/http/middleware"
)

// GoalHandlers handles goal and KPI HTTP requests
type GoalHandlers struct {
	goalRepo domain.GoalRepository
	buRepo   domain.BusinessUnitRepository
}

// NewGoalHandlers creates new goal handlers
func NewGoalHandlers(goalRepo domain.GoalRepository, buRepo domain.BusinessUnitRepository) *GoalHandlers {
	return &GoalHandlers{goalRepo: goalRepo, buRepo: buRepo}
}

// GoalRequest is the create/update payload.
type GoalRequest struct {
	Title         string `json:"title" binding:"required,min=1,max=255"`
	Description   string `json:"description" binding:"max=2000"`
	Quarter       string `json:"quarter" binding:"required,max=16"`
	Status        string `json:"status" binding:"required,oneof=DRAFT ACTIVE ACHIEVED MISSED"`
	StakeholderID *uint  `json:"stakeholderId"`
}

// KPIRequest is the KPI create/update payload.
type KPIRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Target  float64 `json:"target" binding:"required"`
	Current float64 `json:"current"`
	Unit    string  `json:"unit" binding:"max=64"`
}

// findOrgGoal resolves a goal and confirms it belongs to the caller's org.
// Goals from other tenants read as missing, never as forbidden.
func (h *GoalHandlers) findOrgGoal(ctx context.Context, orgID, goalID uint) (*domain.Goal, error) {
	goal, err := h.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if _, err := h.buRepo.FindByID(ctx, orgID, goal.BusinessUnitID); err != nil {
		return nil, domain.NotFound("Goal")
	}
	return goal, nil
}

// findOrgKPI resolves a KPI through its goal and confirms the chain ends in
// the caller's org. KPIs from other tenants read as missing.
func (h *GoalHandlers) findOrgKPI(ctx context.Context, orgID, kpiID uint) (*domain.KPI, error) {
	kpi, err := h.goalRepo.FindKPIByID(ctx, kpiID)
	if err != nil {
		return nil, err
	}
	if _, err := h.findOrgGoal(ctx, orgID, kpi.GoalID); err != nil {
		return nil, domain.NotFound("KPI")
	}
	return kpi, nil
}

// ListByBusinessUnit returns the goals under a business unit.
func (h *GoalHandlers) ListByBusinessUnit(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	buID, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.buRepo.FindByID(c.Request.Context(), session.OrgID, buID); err != nil {
		httpx.Error(c, err)
		return
	}

	goals, err := h.goalRepo.ListByBusinessUnit(c.Request.Context(), buID)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, goals)
}

// Create adds a goal under a business unit, existence pre-checked.
func (h *GoalHandlers) Create(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	buID, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	var req GoalRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	if _, err := h.buRepo.FindByID(c.Request.Context(), session.OrgID, buID); err != nil {
		httpx.Error(c, err)
		return
	}

	goal := &domain.Goal{
		BusinessUnitID: buID,
		StakeholderID:  req.StakeholderID,
		Title:          req.Title,
		Description:    req.Description,
		Quarter:        req.Quarter,
		Status:         req.Status,
	}
	if err := h.goalRepo.Create(c.Request.Context(), goal); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, goal)
}

// Get returns one goal.
func (h *GoalHandlers) Get(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	goal, err := h.findOrgGoal(c.Request.Context(), session.OrgID, id)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, goal)
}

// Update rewrites a goal.
func (h *GoalHandlers) Update(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	var req GoalRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	goal, err := h.findOrgGoal(c.Request.Context(), session.OrgID, id)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	goal.Title = req.Title
	goal.Description = req.Description
	goal.Quarter = req.Quarter
	goal.Status = req.Status
	goal.StakeholderID = req.StakeholderID

	if err := h.goalRepo.Update(c.Request.Context(), goal); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, goal)
}

// Delete removes a goal and its KPIs.
func (h *GoalHandlers) Delete(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.findOrgGoal(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	if err := h.goalRepo.Delete(c.Request.Context(), id); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}

// ListKPIs returns the goal's KPIs, existence pre-checked.
func (h *GoalHandlers) ListKPIs(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.findOrgGoal(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	kpis, err := h.goalRepo.ListKPIs(c.Request.Context(), id)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, kpis)
}

// CreateKPI adds a KPI under a goal, existence pre-checked. Duplicate names
// within a goal conflict.
func (h *GoalHandlers) CreateKPI(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	var req KPIRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	if _, err := h.findOrgGoal(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	kpi := &domain.KPI{
		GoalID:  id,
		Name:    req.Name,
		Target:  req.Target,
		Current: req.Current,
		Unit:    req.Unit,
	}
	if err := h.goalRepo.CreateKPI(c.Request.Context(), kpi); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, kpi)
}

// UpdateKPI rewrites a KPI, ownership resolved through its goal.
func (h *GoalHandlers) UpdateKPI(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	var req KPIRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	kpi, err := h.findOrgKPI(c.Request.Context(), session.OrgID, id)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	kpi.Name = req.Name
	kpi.Target = req.Target
	kpi.Current = req.Current
	kpi.Unit = req.Unit

	if err := h.goalRepo.UpdateKPI(c.Request.Context(), kpi); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, kpi)
}

// DeleteKPI removes a KPI, ownership resolved through its goal.
func (h *GoalHandlers) DeleteKPI(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.findOrgKPI(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	if err := h.goalRepo.DeleteKPI(c.Request.Context(), id); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}
