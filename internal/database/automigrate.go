package database

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-marketplace-api/internal/authz"
	"course-marketplace-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.Role{},
		&domain.UserRole{},
		&domain.Skill{},
		&domain.SkillCreator{},
		&domain.Course{},
		&domain.Video{},
		&domain.Review{},
		&domain.Payment{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}

// DefaultRoles are created on startup when missing
var DefaultRoles = []string{authz.RoleAdmin, authz.RoleCreator, authz.RoleStudent, authz.RoleModerator}

// SeedRoles creates every role in names that does not exist yet
func SeedRoles(ctx context.Context, db *gorm.DB, names []string, logger *zap.Logger) error {
	for _, name := range names {
		var role domain.Role
		err := db.WithContext(ctx).Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up role %s: %w", name, err)
		}
		if err := db.WithContext(ctx).Create(&domain.Role{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to create role %s: %w", name, err)
		}
		logger.Info("Created role", zap.String("role", name))
	}
	return nil
}
