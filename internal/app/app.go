package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/internal/config"
	httpserver "github.com/fam-OS/truenorth-sub002/internal/http"
)

// Run wires the whole service from config and serves until the listener fails.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	SeedDefaultPolicies(c)

	r := httpserver.BuildRouter(c.RouterDeps())

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// SeedDefaultPolicies installs the baseline role grants on an empty policy
// table. role_user grants are enumerated per resource so that user records
// stay outside them: /api/users/* is reachable only by role_admin and, for a
// caller's own record, by the role_owner fallback the ownership rules select.
func SeedDefaultPolicies(c *Container) {
	policies, _ := c.Enforcer.GetPolicy()
	if len(policies) > 0 {
		return
	}
	c.Enforcer.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT|DELETE)")
	c.Enforcer.AddPolicy("role_admin", "/api/*", "(GET|POST|PUT|DELETE)")
	c.Enforcer.AddPolicy("role_admin", "/auth/*", "(GET|POST)")
	c.Enforcer.AddPolicy("role_owner", "/api/users/*", "(GET|PUT)")
	c.Enforcer.AddPolicy("role_user", "/auth/me", "GET")
	c.Enforcer.AddPolicy("role_user", "/auth/logout", "POST")
	c.Enforcer.AddPolicy("role_user", "/auth/otp/*", "POST")
	c.Enforcer.AddPolicy("role_user", "/api/profile", "PUT")
	c.Enforcer.AddPolicy("role_user", "/api/business-units", "(GET|POST)")
	c.Enforcer.AddPolicy("role_user", "/api/business-units/*", "(GET|POST|PUT|DELETE)")
	c.Enforcer.AddPolicy("role_user", "/api/goals/*", "(GET|POST|PUT|DELETE)")
	c.Enforcer.AddPolicy("role_user", "/api/kpis/*", "(PUT|DELETE)")
	c.Enforcer.AddPolicy("role_user", "/api/tasks", "(GET|POST)")
	c.Enforcer.AddPolicy("role_user", "/api/tasks/*", "(GET|POST|PUT|DELETE)")
	c.Enforcer.AddPolicy("role_user", "/api/teams", "(GET|POST)")
	c.Enforcer.AddPolicy("role_user", "/api/teams/*", "(GET|POST|PUT|DELETE)")
	if err := c.Enforcer.SavePolicy(); err != nil {
		log.Printf("casbin: failed to persist seeded policies: %v", err)
		return
	}
	log.Println("casbin: seeded default policies")
}
