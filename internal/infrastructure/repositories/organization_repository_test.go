package repositories

import (
	"context"
	"testing"

	"github.com/fam-OS/truenorth-sub002/domain"
)

func TestOrganizationRepositoryImpl_Create(t *testing.T) {
	t.Run("two tenants may register the same company name", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOrganizationRepository(db)
		ctx := context.Background()

		first := &domain.Organization{Name: "Acme Industries"}
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("failed to create first org: %v", err)
		}

		second := &domain.Organization{Name: "Acme Industries"}
		if err := repo.Create(ctx, second); err != nil {
			t.Fatalf("second org with the same name must not conflict: %v", err)
		}
		if second.ID == first.ID {
			t.Errorf("expected distinct org ids, both got %d", first.ID)
		}
	})
}

func TestOrganizationRepositoryImpl_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := &domain.Organization{Name: "Acme Industries"}
	if err := repo.Create(ctx, org); err != nil {
		t.Fatalf("failed to create org: %v", err)
	}

	found, err := repo.FindByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("failed to find org: %v", err)
	}
	if found.Name != "Acme Industries" {
		t.Errorf("expected name Acme Industries, got %s", found.Name)
	}

	if _, err := repo.FindByID(ctx, 9999); !domain.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}
