package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// Context keys set by the auth middleware.
const (
	CtxUserID    = "user_id"
	CtxUserRole  = "user_role"
	CtxSessionID = "session_id"
	CtxSession   = "session"
)

// AuthMiddleware creates the mandatory session authentication middleware.
// The bearer token's signature is checked first, then the session it names
// must still exist in the store; a revoked session invalidates an otherwise
// valid token.
func AuthMiddleware(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, claims, err := resolveSession(c, tokenSvc, sessionRepo)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		// Casbin expects string subjects.
		c.Set(CtxUserID, fmt.Sprintf("%d", claims.UserID))
		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxSessionID, session.ID)
		c.Set(CtxSession, session)

		c.Next()
	}
}

// SessionResolver attaches the session to the context when a valid bearer
// token is present and proceeds either way. Store failures still abort with
// 500: the gate layers behind this must fail closed, not open.
func SessionResolver(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, claims, err := resolveSession(c, tokenSvc, sessionRepo)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}
		if session != nil {
			c.Set(CtxUserID, fmt.Sprintf("%d", claims.UserID))
			c.Set(CtxUserRole, claims.Role)
			c.Set(CtxSessionID, session.ID)
			c.Set(CtxSession, session)
		}
		c.Next()
	}
}

// resolveSession returns (nil, nil, nil) for anonymous or stale credentials
// and a non-nil error only for store failures.
func resolveSession(c *gin.Context, tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) (*domain.Session, *domain.TokenClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, nil, nil
	}

	tokenParts := strings.SplitN(authHeader, " ", 2)
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, nil, nil
	}

	claims, err := tokenSvc.ValidateSessionToken(tokenParts[1])
	if err != nil {
		return nil, nil, nil
	}
	if claims.SessionID == "" {
		return nil, nil, nil
	}

	session, err := sessionRepo.FindByID(c.Request.Context(), claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrSessionExpired) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	// Session hijack guard: the session must belong to the token's user.
	if session.UserID != claims.UserID {
		return nil, nil, nil
	}

	return session, claims, nil
}

// SessionFromContext returns the session attached by the auth middleware.
func SessionFromContext(c *gin.Context) *domain.Session {
	v, ok := c.Get(CtxSession)
	if !ok {
		return nil
	}
	session, ok := v.(*domain.Session)
	if !ok {
		return nil
	}
	return session
}
