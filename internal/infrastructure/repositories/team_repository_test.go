package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/fam-OS/truenorth-sub002/domain"
)

func TestTeamRepositoryImpl_NameUniqueWithinOrg(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Team{OrgID: 1, Name: "Platform"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Create(ctx, &domain.Team{OrgID: 1, Name: "Platform"}); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
	if err := repo.Create(ctx, &domain.Team{OrgID: 2, Name: "Platform"}); err != nil {
		t.Errorf("another org should be able to reuse the name, got %v", err)
	}
}

func TestTeamRepositoryImpl_ReviewsOrderedByPeriod(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	team := &domain.Team{OrgID: 1, Name: "Platform"}
	if err := repo.Create(ctx, team); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Inserted out of period order on purpose.
	reviews := []domain.OperationalReview{
		{TeamID: team.ID, Month: 3, Year: 2026, Summary: "March"},
		{TeamID: team.ID, Month: 11, Year: 2025, Summary: "November"},
		{TeamID: team.ID, Month: 1, Year: 2026, Summary: "January"},
	}
	for i := range reviews {
		if err := repo.CreateReview(ctx, &reviews[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	listed, err := repo.ListReviews(ctx, team.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(listed))
	}
	for i, want := range []string{"November", "January", "March"} {
		if listed[i].Summary != want {
			t.Errorf("position %d: expected %q, got %q", i, want, listed[i].Summary)
		}
	}
}

func TestTeamRepositoryImpl_Membership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	team := &domain.Team{OrgID: 1, Name: "Platform"}
	if err := repo.Create(ctx, team); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	member := &domain.TeamMember{TeamID: team.ID, UserID: 42}
	if err := repo.AddMember(ctx, member); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if member.ID == 0 {
		t.Fatal("expected an assigned ID")
	}

	t.Run("joining twice conflicts", func(t *testing.T) {
		err := repo.AddMember(ctx, &domain.TeamMember{TeamID: team.ID, UserID: 42})
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("remove then list", func(t *testing.T) {
		if err := repo.AddMember(ctx, &domain.TeamMember{TeamID: team.ID, UserID: 43}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.RemoveMember(ctx, team.ID, 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		members, err := repo.ListMembers(ctx, team.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(members) != 1 || members[0].UserID != 43 {
			t.Errorf("unexpected members %+v", members)
		}
	})

	t.Run("removing a non-member", func(t *testing.T) {
		if err := repo.RemoveMember(ctx, team.ID, 99); !domain.IsNotFound(err) {
			t.Errorf("expected a not-found error, got %v", err)
		}
	})

	t.Run("team delete clears memberships", func(t *testing.T) {
		if err := repo.Delete(ctx, 1, team.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var remaining int64
		db.Model(&DBTeamMember{}).Where("team_id = ?", team.ID).Count(&remaining)
		if remaining != 0 {
			t.Errorf("expected memberships removed with the team, %d remain", remaining)
		}
	})
}

func TestTeamRepositoryImpl_OrgScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	team := &domain.Team{OrgID: 1, Name: "Platform"}
	if err := repo.Create(ctx, team); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByID(ctx, 2, team.ID); !domain.IsNotFound(err) {
		t.Errorf("expected a not-found error for the other org, got %v", err)
	}
	if err := repo.Delete(ctx, 2, team.ID); !domain.IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
	if err := repo.Delete(ctx, 1, team.ID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
