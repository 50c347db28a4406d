package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint   `gorm:"primaryKey"`
	OrgID        uint   `gorm:"index"`
	Email        string `gorm:"uniqueIndex;size:255"`
	PasswordHash string `gorm:"column:password"`
	Role         string `gorm:"index;size:64"`
	IsActive     bool   `gorm:"index"`
	MFAEnabled   bool

	FirstName        string   `gorm:"size:255"`
	LastName         string   `gorm:"size:255"`
	CompanyName      string   `gorm:"size:255"`
	Level            string   `gorm:"size:64"`
	Industry         string   `gorm:"size:255"`
	LeadershipStyles []string `gorm:"serializer:json"`

	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time      `gorm:"index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(user)).Error
}

// UpdateProfile implements domain.UserRepository. Only the onboarding fields
// are written; credentials and role are untouched.
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, userID uint, profile domain.Profile) (*domain.User, error) {
	updates := map[string]interface{}{
		"first_name":        profile.FirstName,
		"last_name":         profile.LastName,
		"company_name":      profile.CompanyName,
		"level":             profile.Level,
		"industry":          profile.Industry,
		"leadership_styles": marshalStyles(profile.LeadershipStyles),
	}
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, userID)
}

// marshalStyles serializes the styles list the same way the gorm json
// serializer does; map-based Updates bypass field serializers.
func marshalStyles(styles []string) string {
	if styles == nil {
		styles = []string{}
	}
	b, _ := json.Marshal(styles)
	return string(b)
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:               user.ID,
		OrgID:            user.OrgID,
		Email:            user.Email,
		PasswordHash:     user.PasswordHash,
		Role:             user.Role,
		IsActive:         user.IsActive,
		MFAEnabled:       user.MFAEnabled,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		CompanyName:      user.CompanyName,
		Level:            user.Level,
		Industry:         user.Industry,
		LeadershipStyles: user.LeadershipStyles,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:               dbUser.ID,
		OrgID:            dbUser.OrgID,
		Email:            dbUser.Email,
		PasswordHash:     dbUser.PasswordHash,
		Role:             dbUser.Role,
		IsActive:         dbUser.IsActive,
		MFAEnabled:       dbUser.MFAEnabled,
		FirstName:        dbUser.FirstName,
		LastName:         dbUser.LastName,
		CompanyName:      dbUser.CompanyName,
		Level:            dbUser.Level,
		Industry:         dbUser.Industry,
		LeadershipStyles: dbUser.LeadershipStyles,
		CreatedAt:        dbUser.CreatedAt,
		UpdatedAt:        dbUser.UpdatedAt,
	}
}
