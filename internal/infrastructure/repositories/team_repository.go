package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// TeamRepositoryImpl implements domain.TeamRepository using GORM
type TeamRepositoryImpl struct {
	db *gorm.DB
}

// DBTeam represents the database model for Team. Name is unique per org.
type DBTeam struct {
	ID        uint   `gorm:"primaryKey"`
	OrgID     uint   `gorm:"uniqueIndex:idx_team_org_name"`
	Name      string `gorm:"uniqueIndex:idx_team_org_name;size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBTeam) TableName() string {
	return "teams"
}

// DBReview represents the database model for OperationalReview
type DBReview struct {
	ID         uint `gorm:"primaryKey"`
	TeamID     uint `gorm:"index"`
	Month      int
	Year       int
	Summary    string
	Highlights string
	Lowlights  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DBReview) TableName() string {
	return "operational_reviews"
}

// DBTeamMember represents the database model for TeamMember
type DBTeamMember struct {
	ID        uint `gorm:"primaryKey"`
	TeamID    uint `gorm:"uniqueIndex:idx_member_team_user"`
	UserID    uint `gorm:"uniqueIndex:idx_member_team_user"`
	CreatedAt time.Time
}

func (DBTeamMember) TableName() string {
	return "team_members"
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) domain.TeamRepository {
	return &TeamRepositoryImpl{db: db}
}

// Create implements domain.TeamRepository
func (r *TeamRepositoryImpl) Create(ctx context.Context, team *domain.Team) error {
	dbTeam := &DBTeam{OrgID: team.OrgID, Name: team.Name}
	if err := r.db.WithContext(ctx).Create(dbTeam).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return err
	}
	team.ID = dbTeam.ID
	return nil
}

// FindByID implements domain.TeamRepository
func (r *TeamRepositoryImpl) FindByID(ctx context.Context, orgID, id uint) (*domain.Team, error) {
	var dbTeam DBTeam
	err := r.db.WithContext(ctx).Where("org_id = ? AND id = ?", orgID, id).First(&dbTeam).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("Team")
		}
		return nil, err
	}
	return teamToDomain(&dbTeam), nil
}

// ListByOrg implements domain.TeamRepository
func (r *TeamRepositoryImpl) ListByOrg(ctx context.Context, orgID uint) ([]domain.Team, error) {
	var dbTeams []DBTeam
	if err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Order("id").Find(&dbTeams).Error; err != nil {
		return nil, err
	}
	teams := make([]domain.Team, 0, len(dbTeams))
	for i := range dbTeams {
		teams = append(teams, *teamToDomain(&dbTeams[i]))
	}
	return teams, nil
}

// Update implements domain.TeamRepository
func (r *TeamRepositoryImpl) Update(ctx context.Context, team *domain.Team) error {
	res := r.db.WithContext(ctx).Model(&DBTeam{}).
		Where("org_id = ? AND id = ?", team.OrgID, team.ID).
		Update("name", team.Name)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("Team")
	}
	return nil
}

// Delete implements domain.TeamRepository. Reviews and memberships under the
// team go with it.
func (r *TeamRepositoryImpl) Delete(ctx context.Context, orgID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("org_id = ? AND id = ?", orgID, id).Delete(&DBTeam{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("Team")
		}
		if err := tx.Where("team_id = ?", id).Delete(&DBReview{}).Error; err != nil {
			return err
		}
		return tx.Where("team_id = ?", id).Delete(&DBTeamMember{}).Error
	})
}

// CreateReview implements domain.TeamRepository
func (r *TeamRepositoryImpl) CreateReview(ctx context.Context, review *domain.OperationalReview) error {
	dbReview := &DBReview{
		TeamID:     review.TeamID,
		Month:      review.Month,
		Year:       review.Year,
		Summary:    review.Summary,
		Highlights: review.Highlights,
		Lowlights:  review.Lowlights,
	}
	if err := r.db.WithContext(ctx).Create(dbReview).Error; err != nil {
		return err
	}
	review.ID = dbReview.ID
	return nil
}

// ListReviews implements domain.TeamRepository
func (r *TeamRepositoryImpl) ListReviews(ctx context.Context, teamID uint) ([]domain.OperationalReview, error) {
	var dbReviews []DBReview
	if err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("year, month").Find(&dbReviews).Error; err != nil {
		return nil, err
	}
	reviews := make([]domain.OperationalReview, 0, len(dbReviews))
	for _, rv := range dbReviews {
		reviews = append(reviews, domain.OperationalReview{
			ID:         rv.ID,
			TeamID:     rv.TeamID,
			Month:      rv.Month,
			Year:       rv.Year,
			Summary:    rv.Summary,
			Highlights: rv.Highlights,
			Lowlights:  rv.Lowlights,
			CreatedAt:  rv.CreatedAt,
			UpdatedAt:  rv.UpdatedAt,
		})
	}
	return reviews, nil
}

// AddMember implements domain.TeamRepository. Joining twice conflicts.
func (r *TeamRepositoryImpl) AddMember(ctx context.Context, member *domain.TeamMember) error {
	dbMember := &DBTeamMember{TeamID: member.TeamID, UserID: member.UserID}
	if err := r.db.WithContext(ctx).Create(dbMember).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return err
	}
	member.ID = dbMember.ID
	member.CreatedAt = dbMember.CreatedAt
	return nil
}

// ListMembers implements domain.TeamRepository
func (r *TeamRepositoryImpl) ListMembers(ctx context.Context, teamID uint) ([]domain.TeamMember, error) {
	var dbMembers []DBTeamMember
	if err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("id").Find(&dbMembers).Error; err != nil {
		return nil, err
	}
	members := make([]domain.TeamMember, 0, len(dbMembers))
	for _, m := range dbMembers {
		members = append(members, domain.TeamMember{
			ID:        m.ID,
			TeamID:    m.TeamID,
			UserID:    m.UserID,
			CreatedAt: m.CreatedAt,
		})
	}
	return members, nil
}

// RemoveMember implements domain.TeamRepository
func (r *TeamRepositoryImpl) RemoveMember(ctx context.Context, teamID, userID uint) error {
	res := r.db.WithContext(ctx).Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&DBTeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("Team member")
	}
	return nil
}

func teamToDomain(dbTeam *DBTeam) *domain.Team {
	return &domain.Team{
		ID:        dbTeam.ID,
		OrgID:     dbTeam.OrgID,
		Name:      dbTeam.Name,
		CreatedAt: dbTeam.CreatedAt,
		UpdatedAt: dbTeam.UpdatedAt,
	}
}
