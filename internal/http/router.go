package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/internal/http/handlers"
	"github.com/fam-OS/truenorth-sub002/internal/http/middleware"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	Auth      *handlers.AuthHandlers
	Users     *handlers.UserHandlers
	BUs       *handlers.BusinessUnitHandlers
	Goals     *handlers.GoalHandlers
	Tasks     *handlers.TaskHandlers
	Teams     *handlers.TeamHandlers
	Policies  *handlers.PolicyHandlers
	Dashboard *handlers.DashboardHandlers

	AuthMW   *middleware.AuthMW
	CasbinMW *middleware.CasbinMW
	GateMW   *middleware.GateMW
}

// BuildRouter assembles the gin engine. API groups run session auth then
// casbin before any handler; dashboard groups resolve the session without
// requiring one and apply the gate at both the layout and the org layer.
func BuildRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.GET("/mfa", d.Auth.MFAChallenge)

	authed := r.Group("/auth").Use(d.AuthMW.WithSession(), d.CasbinMW.Enforce())
	authed.POST("/otp/request", d.Auth.RequestOTP)
	authed.POST("/otp/verify", d.Auth.VerifyOTP)
	authed.GET("/me", d.Auth.Me)
	authed.POST("/logout", d.Auth.Logout)

	api := r.Group("/api").Use(d.AuthMW.WithSession(), d.CasbinMW.Enforce())
	api.PUT("/profile", d.Users.UpdateProfile)
	api.GET("/users/:user_id", d.Users.GetByID)
	api.PUT("/users/:user_id", d.Users.UpdateByID)

	api.GET("/business-units", d.BUs.List)
	api.POST("/business-units", d.BUs.Create)
	api.GET("/business-units/:id", d.BUs.Get)
	api.PUT("/business-units/:id", d.BUs.Update)
	api.DELETE("/business-units/:id", d.BUs.Delete)
	api.GET("/business-units/:id/stakeholders", d.BUs.ListStakeholders)
	api.POST("/business-units/:id/stakeholders", d.BUs.CreateStakeholder)
	api.GET("/business-units/:id/goals", d.Goals.ListByBusinessUnit)
	api.POST("/business-units/:id/goals", d.Goals.Create)

	api.GET("/goals/:id", d.Goals.Get)
	api.PUT("/goals/:id", d.Goals.Update)
	api.DELETE("/goals/:id", d.Goals.Delete)
	api.GET("/goals/:id/kpis", d.Goals.ListKPIs)
	api.POST("/goals/:id/kpis", d.Goals.CreateKPI)
	api.PUT("/kpis/:id", d.Goals.UpdateKPI)
	api.DELETE("/kpis/:id", d.Goals.DeleteKPI)

	api.GET("/tasks", d.Tasks.List)
	api.POST("/tasks", d.Tasks.Create)
	api.GET("/tasks/export", d.Tasks.ExportCSV)
	api.GET("/tasks/:id", d.Tasks.Get)
	api.PUT("/tasks/:id", d.Tasks.Update)
	api.DELETE("/tasks/:id", d.Tasks.Delete)
	api.GET("/tasks/:id/notes", d.Tasks.ListNotes)
	api.POST("/tasks/:id/notes", d.Tasks.CreateNote)

	api.GET("/teams", d.Teams.List)
	api.POST("/teams", d.Teams.Create)
	api.GET("/teams/:id", d.Teams.Get)
	api.PUT("/teams/:id", d.Teams.Update)
	api.DELETE("/teams/:id", d.Teams.Delete)
	api.GET("/teams/:id/members", d.Teams.ListMembers)
	api.POST("/teams/:id/members", d.Teams.AddMember)
	api.DELETE("/teams/:id/members/:user_id", d.Teams.RemoveMember)
	api.GET("/teams/:id/reviews", d.Teams.ListReviews)
	api.POST("/teams/:id/reviews", d.Teams.CreateReview)

	dash := r.Group("/dashboard")
	dash.Use(d.AuthMW.ResolveSession(), d.GateMW.Gate())
	dash.GET("", d.Dashboard.Home)
	dash.GET("/onboarding", d.Dashboard.Onboarding)

	// The org layer runs the gate again, mirroring a nested template guard.
	org := dash.Group("/org")
	org.Use(d.GateMW.Gate())
	org.GET("", d.Dashboard.Org)

	adm := r.Group("/admin").Use(d.AuthMW.WithSession(), d.CasbinMW.Enforce())
	adm.GET("/policies", d.Policies.List)
	adm.POST("/policies", d.Policies.Add)
	adm.DELETE("/policies", d.Policies.Remove)

	return r
}
