package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/mocks"
)

func goalRouter(goalRepo domain.GoalRepository, buRepo domain.BusinessUnitRepository) *gin.Engine {
	h := NewGoalHandlers(goalRepo, buRepo)
	r := gin.New()
	api := r.Group("/api", attachSession(7))
	api.GET("/business-units/:id/goals", h.ListByBusinessUnit)
	api.POST("/business-units/:id/goals", h.Create)
	api.GET("/goals/:id", h.Get)
	api.PUT("/goals/:id", h.Update)
	api.DELETE("/goals/:id", h.Delete)
	api.POST("/goals/:id/kpis", h.CreateKPI)
	api.PUT("/kpis/:id", h.UpdateKPI)
	api.DELETE("/kpis/:id", h.DeleteKPI)
	return r
}

func orgBusinessUnit(orgID, id uint) *domain.BusinessUnit {
	return &domain.BusinessUnit{ID: id, OrgID: orgID, Name: "Platform"}
}

func TestGoalHandlers_Create(t *testing.T) {
	t.Run("missing business unit short-circuits before any write", func(t *testing.T) {
		goalRepo := mocks.NewMockGoalRepository()
		goalRepo.CreateFunc = func(ctx context.Context, goal *domain.Goal) error {
			t.Error("goal must not be written when the business unit is missing")
			return nil
		}

		r := goalRouter(goalRepo, mocks.NewMockBusinessUnitRepository())
		w := doJSON(t, r, http.MethodPost, "/api/business-units/3/goals", `{"title":"Grow ARR","quarter":"Q3-2026","status":"ACTIVE"}`)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Business unit not found") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("goal lands under the business unit", func(t *testing.T) {
		buRepo := mocks.NewMockBusinessUnitRepository()
		buRepo.FindByIDFunc = func(ctx context.Context, orgID, id uint) (*domain.BusinessUnit, error) {
			return orgBusinessUnit(orgID, id), nil
		}
		goalRepo := mocks.NewMockGoalRepository()
		var created *domain.Goal
		goalRepo.CreateFunc = func(ctx context.Context, goal *domain.Goal) error {
			goal.ID = 21
			created = goal
			return nil
		}

		r := goalRouter(goalRepo, buRepo)
		w := doJSON(t, r, http.MethodPost, "/api/business-units/3/goals", `{"title":"Grow ARR","quarter":"Q3-2026","status":"ACTIVE"}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if created.BusinessUnitID != 3 {
			t.Errorf("expected goal under business unit 3, got %d", created.BusinessUnitID)
		}
	})
}

func TestGoalHandlers_Get(t *testing.T) {
	t.Run("cross-tenant goal reads as missing", func(t *testing.T) {
		goalRepo := mocks.NewMockGoalRepository()
		goalRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Goal, error) {
			// The goal exists but hangs off business unit 99 in another org.
			return &domain.Goal{ID: id, BusinessUnitID: 99, Title: "Their goal", Status: domain.GoalStatusActive}, nil
		}
		buRepo := mocks.NewMockBusinessUnitRepository() // org-scoped lookup misses

		r := goalRouter(goalRepo, buRepo)
		w := doJSON(t, r, http.MethodGet, "/api/goals/5", "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Goal not found") {
			t.Errorf("cross-tenant access must read as a missing goal, got %s", w.Body.String())
		}
		if strings.Contains(w.Body.String(), "Forbidden") {
			t.Error("cross-tenant access must not reveal the goal exists")
		}
	})

	t.Run("own goal is returned", func(t *testing.T) {
		goalRepo := mocks.NewMockGoalRepository()
		goalRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Goal, error) {
			return &domain.Goal{ID: id, BusinessUnitID: 3, Title: "Grow ARR", Status: domain.GoalStatusActive}, nil
		}
		buRepo := mocks.NewMockBusinessUnitRepository()
		buRepo.FindByIDFunc = func(ctx context.Context, orgID, id uint) (*domain.BusinessUnit, error) {
			return orgBusinessUnit(orgID, id), nil
		}

		r := goalRouter(goalRepo, buRepo)
		w := doJSON(t, r, http.MethodGet, "/api/goals/5", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Grow ARR") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestGoalHandlers_KPIOwnership(t *testing.T) {
	// The KPI hangs off a goal whose business unit misses the caller's org.
	crossTenantRepos := func(t *testing.T) (*mocks.MockGoalRepository, *mocks.MockBusinessUnitRepository) {
		goalRepo := mocks.NewMockGoalRepository()
		goalRepo.FindKPIByIDFunc = func(ctx context.Context, id uint) (*domain.KPI, error) {
			return &domain.KPI{ID: id, GoalID: 8, Name: "ARR", Target: 1000000}, nil
		}
		goalRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Goal, error) {
			return &domain.Goal{ID: id, BusinessUnitID: 99, Title: "Their goal", Status: domain.GoalStatusActive}, nil
		}
		return goalRepo, mocks.NewMockBusinessUnitRepository() // org-scoped lookup misses
	}

	t.Run("cross-tenant KPI update reads as missing and writes nothing", func(t *testing.T) {
		goalRepo, buRepo := crossTenantRepos(t)
		goalRepo.UpdateKPIFunc = func(ctx context.Context, kpi *domain.KPI) error {
			t.Error("KPI must not be updated across tenants")
			return nil
		}

		r := goalRouter(goalRepo, buRepo)
		w := doJSON(t, r, http.MethodPut, "/api/kpis/4", `{"name":"ARR","target":1,"unit":"USD"}`)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "KPI not found") {
			t.Errorf("cross-tenant access must read as a missing KPI, got %s", w.Body.String())
		}
	})

	t.Run("cross-tenant KPI delete reads as missing and deletes nothing", func(t *testing.T) {
		goalRepo, buRepo := crossTenantRepos(t)
		goalRepo.DeleteKPIFunc = func(ctx context.Context, id uint) error {
			t.Error("KPI must not be deleted across tenants")
			return nil
		}

		r := goalRouter(goalRepo, buRepo)
		w := doJSON(t, r, http.MethodDelete, "/api/kpis/4", "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("own KPI updates through the goal chain", func(t *testing.T) {
		goalRepo := mocks.NewMockGoalRepository()
		goalRepo.FindKPIByIDFunc = func(ctx context.Context, id uint) (*domain.KPI, error) {
			return &domain.KPI{ID: id, GoalID: 8, Name: "ARR", Target: 1000000}, nil
		}
		goalRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Goal, error) {
			return &domain.Goal{ID: id, BusinessUnitID: 3, Title: "Grow ARR", Status: domain.GoalStatusActive}, nil
		}
		buRepo := mocks.NewMockBusinessUnitRepository()
		buRepo.FindByIDFunc = func(ctx context.Context, orgID, id uint) (*domain.BusinessUnit, error) {
			return orgBusinessUnit(orgID, id), nil
		}
		var updated *domain.KPI
		goalRepo.UpdateKPIFunc = func(ctx context.Context, kpi *domain.KPI) error {
			updated = kpi
			return nil
		}

		r := goalRouter(goalRepo, buRepo)
		w := doJSON(t, r, http.MethodPut, "/api/kpis/4", `{"name":"ARR","target":2000000,"unit":"USD"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if updated == nil || updated.GoalID != 8 {
			t.Errorf("expected update to keep the resolved goal binding, got %+v", updated)
		}
	})
}

func TestGoalHandlers_CreateKPI(t *testing.T) {
	t.Run("duplicate KPI name conflicts", func(t *testing.T) {
		goalRepo := mocks.NewMockGoalRepository()
		goalRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Goal, error) {
			return &domain.Goal{ID: id, BusinessUnitID: 3, Title: "Grow ARR", Status: domain.GoalStatusActive}, nil
		}
		goalRepo.CreateKPIFunc = func(ctx context.Context, kpi *domain.KPI) error {
			return domain.ErrConflict
		}
		buRepo := mocks.NewMockBusinessUnitRepository()
		buRepo.FindByIDFunc = func(ctx context.Context, orgID, id uint) (*domain.BusinessUnit, error) {
			return orgBusinessUnit(orgID, id), nil
		}

		r := goalRouter(goalRepo, buRepo)
		w := doJSON(t, r, http.MethodPost, "/api/goals/5/kpis", `{"name":"ARR","target":1000000,"unit":"USD"}`)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})
}
