package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// AuthMW wraps the token service and session repository for middleware
type AuthMW struct {
	tokenSvc    domain.TokenService
	sessionRepo domain.SessionRepository
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) *AuthMW {
	return &AuthMW{
		tokenSvc:    tokenSvc,
		sessionRepo: sessionRepo,
	}
}

// WithSession returns the mandatory session middleware: requests without a
// valid bearer session are rejected.
func (mw *AuthMW) WithSession() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc, mw.sessionRepo)
}

// ResolveSession returns the optional session middleware used by the gate
// layers: it attaches the session when present but never blocks.
func (mw *AuthMW) ResolveSession() gin.HandlerFunc {
	return SessionResolver(mw.tokenSvc, mw.sessionRepo)
}
