package repositories

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	models := []interface{}{
		&DBOrganization{},
		&DBUser{},
		&DBTrustedDevice{},
		&DBBusinessUnit{},
		&DBStakeholder{},
		&DBGoal{},
		&DBKPI{},
		&DBTask{},
		&DBTaskNote{},
		&DBTeam{},
		&DBTeamMember{},
		&DBReview{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}
