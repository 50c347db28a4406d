package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/http/httpx"
	"github.com/fam-OS/truenorth-sub002/internal/http/middleware"
)

// BusinessUnitHandlers handles business unit and stakeholder HTTP requests
type BusinessUnitHandlers struct {
	buRepo domain.BusinessUnitRepository
}

// NewBusinessUnitHandlers creates new business unit handlers
func NewBusinessUnitHandlers(buRepo domain.BusinessUnitRepository) *BusinessUnitHandlers {
	return &BusinessUnitHandlers{buRepo: buRepo}
}

// BusinessUnitRequest is the create/update payload.
type BusinessUnitRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

// StakeholderRequest is the stakeholder create payload.
type StakeholderRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Role  string `json:"role" binding:"max=255"`
	Email string `json:"email" binding:"omitempty,email"`
}

// List returns the org's business units.
func (h *BusinessUnitHandlers) List(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	units, err := h.buRepo.ListByOrg(c.Request.Context(), session.OrgID)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, units)
}

// Create adds a business unit to the org.
func (h *BusinessUnitHandlers) Create(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	var req BusinessUnitRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	bu := &domain.BusinessUnit{
		OrgID:       session.OrgID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.buRepo.Create(c.Request.Context(), bu); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, bu)
}

// Get returns one business unit.
func (h *BusinessUnitHandlers) Get(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	bu, err := h.buRepo.FindByID(c.Request.Context(), session.OrgID, id)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, bu)
}

// Update rewrites a business unit.
func (h *BusinessUnitHandlers) Update(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	var req BusinessUnitRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	bu := &domain.BusinessUnit{
		ID:          id,
		OrgID:       session.OrgID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.buRepo.Update(c.Request.Context(), bu); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, bu)
}

// Delete removes a business unit and its stakeholders.
func (h *BusinessUnitHandlers) Delete(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	if err := h.buRepo.Delete(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}

// ListStakeholders returns the unit's stakeholders. The unit must exist in
// the caller's org before anything is listed.
func (h *BusinessUnitHandlers) ListStakeholders(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.buRepo.FindByID(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	stakeholders, err := h.buRepo.ListStakeholders(c.Request.Context(), id)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, stakeholders)
}

// CreateStakeholder adds a stakeholder to the unit, existence pre-checked.
func (h *BusinessUnitHandlers) CreateStakeholder(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	var req StakeholderRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	if _, err := h.buRepo.FindByID(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	s := &domain.Stakeholder{
		BusinessUnitID: id,
		Name:           req.Name,
		Role:           req.Role,
		Email:          req.Email,
	}
	if err := h.buRepo.CreateStakeholder(c.Request.Context(), s); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, s)
}
