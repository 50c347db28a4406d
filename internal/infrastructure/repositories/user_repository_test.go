package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/fam-OS/truenorth-sub002/domain"
)

func TestUserRepositoryImpl_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{OrgID: 1, Email: "ceo@example.com", PasswordHash: "hash", Role: "user", IsActive: true}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected an assigned ID")
	}

	err := repo.Create(ctx, &domain.User{OrgID: 2, Email: "ceo@example.com", PasswordHash: "hash", Role: "user"})
	if !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Errorf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestUserRepositoryImpl_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{OrgID: 1, Email: "ceo@example.com", PasswordHash: "hash", Role: "user", IsActive: true, MFAEnabled: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByEmail(ctx, "ceo@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.OrgID != 1 || !found.MFAEnabled || found.PasswordHash != "hash" {
		t.Errorf("unexpected user %+v", found)
	}

	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_UpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{OrgID: 1, Email: "ceo@example.com", PasswordHash: "hash", Role: "user", IsActive: true}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile := domain.Profile{
		FirstName:        "Ada",
		LastName:         "Lovelace",
		CompanyName:      "Analytical Engines",
		Level:            "C_LEVEL",
		Industry:         "Computing",
		LeadershipStyles: []string{"VISIONARY", "COACHING"},
	}
	updated, err := repo.UpdateProfile(ctx, user.ID, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.FirstName != "Ada" || updated.CompanyName != "Analytical Engines" {
		t.Errorf("unexpected profile %+v", updated)
	}
	if len(updated.LeadershipStyles) != 2 || updated.LeadershipStyles[0] != "VISIONARY" {
		t.Errorf("leadership styles did not survive the round trip: %v", updated.LeadershipStyles)
	}
	if updated.Email != "ceo@example.com" || updated.PasswordHash != "hash" {
		t.Errorf("credentials should be untouched, got %+v", updated)
	}
	if !updated.OnboardingComplete() {
		t.Error("expected onboarding complete after a full profile")
	}

	t.Run("missing user", func(t *testing.T) {
		if _, err := repo.UpdateProfile(ctx, 999, profile); !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("nil styles persist as empty list", func(t *testing.T) {
		profile.LeadershipStyles = nil
		updated, err := repo.UpdateProfile(ctx, user.ID, profile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.LeadershipStyles == nil || len(updated.LeadershipStyles) != 0 {
			t.Errorf("expected an empty list, got %v", updated.LeadershipStyles)
		}
	})
}
