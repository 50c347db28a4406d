package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/fam-OS/truenorth-sub002/domain"
)

func TestGoalRepositoryImpl_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()

	goal := &domain.Goal{BusinessUnitID: 3, Title: "Grow ARR", Quarter: "Q3", Status: "ACTIVE"}
	if err := repo.Create(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Title != "Grow ARR" || found.BusinessUnitID != 3 {
		t.Errorf("unexpected goal %+v", found)
	}

	goal.Title = "Grow ARR 20%"
	if err := repo.Update(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Update(ctx, &domain.Goal{ID: 999, Title: "ghost"}); !domain.IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}

	if err := repo.Delete(ctx, goal.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, goal.ID); !domain.IsNotFound(err) {
		t.Errorf("expected a not-found error after delete, got %v", err)
	}
}

func TestGoalRepositoryImpl_KPINameUniquePerGoal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()

	goal := &domain.Goal{BusinessUnitID: 3, Title: "Grow ARR", Status: "ACTIVE"}
	if err := repo.Create(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kpi := &domain.KPI{GoalID: goal.ID, Name: "New logos", Target: 12, Unit: "count"}
	if err := repo.CreateKPI(ctx, kpi); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("duplicate within the goal conflicts", func(t *testing.T) {
		err := repo.CreateKPI(ctx, &domain.KPI{GoalID: goal.ID, Name: "New logos", Target: 20})
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("same name on another goal is fine", func(t *testing.T) {
		other := &domain.Goal{BusinessUnitID: 3, Title: "Expand EMEA", Status: "ACTIVE"}
		if err := repo.Create(ctx, other); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.CreateKPI(ctx, &domain.KPI{GoalID: other.ID, Name: "New logos", Target: 5}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("update progresses the current value", func(t *testing.T) {
		kpi.Current = 7
		if err := repo.UpdateKPI(ctx, kpi); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		kpis, err := repo.ListKPIs(ctx, goal.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(kpis) != 1 || kpis[0].Current != 7 {
			t.Errorf("unexpected kpis %+v", kpis)
		}
	})

	t.Run("delete missing kpi", func(t *testing.T) {
		if err := repo.DeleteKPI(ctx, 999); !domain.IsNotFound(err) {
			t.Errorf("expected a not-found error, got %v", err)
		}
	})
}
