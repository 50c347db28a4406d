package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/services"
)

// DeviceCookie is the cookie carrying the raw trusted-device token.
const DeviceCookie = "tn_device"

// GateMW wraps the gate service for the dashboard area. It carries both
// redirect targets so the router has no path of its own to get wrong.
type GateMW struct {
	gateSvc        domain.GateService
	mfaPath        string
	onboardingPath string
}

// NewGateMW creates new gate middleware wrapper
func NewGateMW(gateSvc domain.GateService, mfaPath, onboardingPath string) *GateMW {
	return &GateMW{gateSvc: gateSvc, mfaPath: mfaPath, onboardingPath: onboardingPath}
}

// Gate returns the dashboard gate middleware. It runs behind ResolveSession,
// so an anonymous request carries no session and passes through; the page
// behind it enforces its own auth. Applied at both the dashboard layout
// group and the org template group, both ending up in the same decision
// function.
func (mw *GateMW) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)

		deviceTokenHash := ""
		if raw, err := c.Cookie(DeviceCookie); err == nil && raw != "" {
			deviceTokenHash = services.HashDeviceToken(raw)
		}

		outcome, err := mw.gateSvc.Evaluate(c.Request.Context(), session, deviceTokenHash, c.Request.URL.Path)
		if err != nil {
			// Fail closed: an unresolved lookup never grants access.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}

		switch outcome {
		case domain.GateRedirectMFA:
			c.Redirect(http.StatusFound, mw.mfaPath)
			c.Abort()
		case domain.GateRedirectOnboarding:
			c.Redirect(http.StatusFound, mw.onboardingPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
