package app

import (
	"context"

	"github.com/casbin/casbin/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/config"
	httpserver "github.com/fam-OS/truenorth-sub002/internal/http"
	"github.com/fam-OS/truenorth-sub002/internal/http/handlers"
	"github.com/fam-OS/truenorth-sub002/internal/http/middleware"
	"github.com/fam-OS/truenorth-sub002/internal/infrastructure/auth"
	"github.com/fam-OS/truenorth-sub002/internal/infrastructure/database"
	"github.com/fam-OS/truenorth-sub002/internal/infrastructure/notifications"
	"github.com/fam-OS/truenorth-sub002/internal/infrastructure/repositories"
	"github.com/fam-OS/truenorth-sub002/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client
	Enforcer    *casbin.Enforcer

	UserRepo    domain.UserRepository
	OrgRepo     domain.OrganizationRepository
	SessionRepo domain.SessionRepository
	DeviceRepo  domain.TrustedDeviceRepository
	BURepo      domain.BusinessUnitRepository
	GoalRepo    domain.GoalRepository
	TaskRepo    domain.TaskRepository
	TeamRepo    domain.TeamRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	GateSvc         domain.GateService
	PolicySvc       domain.PolicyService
	ExportSvc       domain.ExportService

	AuthMW   *middleware.AuthMW
	CasbinMW *middleware.CasbinMW
	GateMW   *middleware.GateMW
}

// NewContainer opens Postgres and Redis from the config, then wires the rest.
func NewContainer(cfg *config.Config) (*Container, error) {
	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return nil, err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return NewContainerWith(cfg, gdb, rdb)
}

// NewContainerWith wires dependencies on top of already-open stores. Tests
// hand in sqlite and miniredis here.
func NewContainerWith(cfg *config.Config, gdb *gorm.DB, rdb *redis.Client) (*Container, error) {
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:      cfg,
		DB:          gdb,
		RedisClient: rdb,
		Enforcer:    cas.E,
	}

	c.UserRepo = repositories.NewUserRepository(gdb)
	c.OrgRepo = repositories.NewOrganizationRepository(gdb)
	c.SessionRepo = repositories.NewSessionRepository(rdb, cfg.SessionTTL)
	c.DeviceRepo = repositories.NewTrustedDeviceRepository(gdb)
	c.BURepo = repositories.NewBusinessUnitRepository(gdb)
	c.GoalRepo = repositories.NewGoalRepository(gdb)
	c.TaskRepo = repositories.NewTaskRepository(gdb)
	c.TeamRepo = repositories.NewTeamRepository(gdb)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewTokenService(cfg.SessionSecret, cfg.SessionIssuer, cfg.SessionTTL)
	c.NotificationSvc = notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)
	c.OTPSvc = services.NewOTPService(c.NotificationSvc, rdb, services.OTPConfig{
		Length:      cfg.OTP_Length,
		TTL:         cfg.OTP_TTL,
		MaxAttempts: cfg.OTP_MaxAttempts,
	})
	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.OrgRepo,
		c.SessionRepo,
		c.DeviceRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		cfg.SessionTTL,
	)
	c.GateSvc = services.NewGateService(c.UserRepo, c.DeviceRepo, cfg.OnboardingPath)
	c.PolicySvc = services.NewPolicyService(cas.E)
	c.ExportSvc = services.NewExportService(c.TaskRepo)

	c.AuthMW = middleware.NewAuthMW(c.TokenSvc, c.SessionRepo)
	c.CasbinMW = middleware.NewCasbinMW(cas.E, cfg.OwnershipRules)
	c.GateMW = middleware.NewGateMW(c.GateSvc, cfg.MFAPath, cfg.OnboardingPath)

	return c, nil
}

// RouterDeps collects handlers and middleware for the HTTP layer.
func (c *Container) RouterDeps() httpserver.RouterDeps {
	return httpserver.RouterDeps{
		Auth:      handlers.NewAuthHandlers(c.AuthSvc, c.OTPSvc),
		Users:     handlers.NewUserHandlers(c.UserRepo),
		BUs:       handlers.NewBusinessUnitHandlers(c.BURepo),
		Goals:     handlers.NewGoalHandlers(c.GoalRepo, c.BURepo),
		Tasks:     handlers.NewTaskHandlers(c.TaskRepo, c.ExportSvc),
		Teams:     handlers.NewTeamHandlers(c.TeamRepo),
		Policies:  handlers.NewPolicyHandlers(c.PolicySvc),
		Dashboard: handlers.NewDashboardHandlers(),

		AuthMW:   c.AuthMW,
		CasbinMW: c.CasbinMW,
		GateMW:   c.GateMW,

	}
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
