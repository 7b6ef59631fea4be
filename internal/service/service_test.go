package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// newTestDB opens a fresh in-memory database with all tables migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Message{},
		&model.StudentProfile{},
		&model.AlumniProfile{},
		&model.JobPosting{},
		&model.Referral{},
		&model.MentorshipRequest{},
		&model.ProfileApprovalRequest{},
		&model.SupportTicket{},
		&model.AdminSetting{},
		&model.AdminMetric{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// mustCreateUser inserts an enabled account with the given role.
func mustCreateUser(t *testing.T, db *gorm.DB, name string, role model.Role) model.User {
	t.Helper()

	user := model.User{
		FullName: name,
		Email:    name + "@test.local",
		Role:     role,
		Enabled:  true,
	}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}
