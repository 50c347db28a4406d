package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/http/httpx"
)

// PolicyHandlers exposes casbin policy administration.
type PolicyHandlers struct {
	policySvc domain.PolicyService
}

// NewPolicyHandlers creates new policy handlers
func NewPolicyHandlers(policySvc domain.PolicyService) *PolicyHandlers {
	return &PolicyHandlers{policySvc: policySvc}
}

type policyRequest struct {
	Sub string `json:"sub" binding:"required"`
	Obj string `json:"obj" binding:"required"`
	Act string `json:"act" binding:"required"`
}

// List returns all stored policies.
func (h *PolicyHandlers) List(c *gin.Context) {
	policies, err := h.policySvc.GetPolicies()
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, policies)
}

// Add stores a policy rule.
func (h *PolicyHandlers) Add(c *gin.Context) {
	var req policyRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	added, err := h.policySvc.AddPolicy(req.Sub, req.Obj, req.Act)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	if !added {
		c.JSON(http.StatusConflict, gin.H{"error": "Policy already exists"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Remove deletes a policy rule.
func (h *PolicyHandlers) Remove(c *gin.Context) {
	var req policyRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	removed, err := h.policySvc.RemovePolicy(req.Sub, req.Obj, req.Act)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	if !removed {
		httpx.Error(c, domain.NotFound("Policy"))
		return
	}
	c.Status(http.StatusNoContent)
}
