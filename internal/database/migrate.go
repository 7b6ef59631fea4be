package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// AutoMigrate migrates all table schemas and seeds the default admin.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
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
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	if err := createDefaultAdmin(db); err != nil {
		zap.L().Error("failed to create default admin", zap.Error(err))
		// Not fatal; the admin CLI can create one later.
	}

	return nil
}

// createDefaultAdmin seeds an admin account on an empty users table so
// the platform is reachable after first boot.
func createDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := &model.User{
		FullName: "Platform Admin",
		Email:    "admin@alumniconnect.local",
		Role:     model.RoleAdmin,
		Enabled:  true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		return fmt.Errorf("failed to set default password: %w", err)
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	zap.L().Info("default admin user created",
		zap.String("email", admin.Email))
	return nil
}
