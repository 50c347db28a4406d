package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/internal/http/httpx"
	"github.com/fam-OS/truenorth-sub002/internal/http/middleware"
)

// DashboardHandlers serves the gated dashboard pages. The gate middleware
// decides redirects before these run; handlers only render for visitors
// that were allowed through.
type DashboardHandlers struct{}

// NewDashboardHandlers creates new dashboard handlers
func NewDashboardHandlers() *DashboardHandlers {
	return &DashboardHandlers{}
}

// Home is the dashboard landing page.
func (h *DashboardHandlers) Home(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	body := gin.H{"page": "dashboard"}
	if session != nil {
		body["email"] = session.Email
		body["orgId"] = session.OrgID
	}
	httpx.OK(c, body)
}

// Onboarding is the profile setup page. Reachable while incomplete so
// users are not redirected away from the page that fixes the redirect.
func (h *DashboardHandlers) Onboarding(c *gin.Context) {
	httpx.OK(c, gin.H{"page": "onboarding"})
}

// Org is the organization template page under the nested gate layer.
func (h *DashboardHandlers) Org(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	body := gin.H{"page": "org"}
	if session != nil {
		body["orgId"] = session.OrgID
	}
	httpx.OK(c, body)
}
