package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"course-marketplace-api/internal/domain"
)

// UserRepository defines the interface for user and role-membership data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindPage(ctx context.Context, page Page) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindRoleNames(ctx context.Context, userID uuid.UUID) ([]string, error)
	AddRoles(ctx context.Context, userID uuid.UUID, roleIDs []uuid.UUID) error
	RemoveRole(ctx context.Context, userID, roleID uuid.UUID) error
	ClearRoles(ctx context.Context, userID uuid.UUID) error
	ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error)
	Identity(ctx context.Context, id uuid.UUID) ([]string, bool, error)
}

// userRepositoryImpl is the GORM implementation of UserRepository
type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Scopes(notDeleted).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) FindPage(ctx context.Context, page Page) ([]*domain.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Scopes(notDeleted).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*domain.User
	err := r.db.WithContext(ctx).
		Scopes(notDeleted, paginate(page)).
		Order("last_name ASC, first_name ASC").
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete removes the user and its role memberships
func (r *userRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ?", id).Delete(&domain.UserRole{}).Error; err != nil {
		return err
	}
	return db.Delete(&domain.User{}, "id = ?", id).Error
}

func (r *userRepositoryImpl) FindRoleNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&domain.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.name ASC").
		Pluck("roles.name", &names).Error
	return names, err
}

func (r *userRepositoryImpl) AddRoles(ctx context.Context, userID uuid.UUID, roleIDs []uuid.UUID) error {
	if len(roleIDs) == 0 {
		return nil
	}
	rows := make([]domain.UserRole, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		rows = append(rows, domain.UserRole{UserID: userID, RoleID: roleID})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *userRepositoryImpl) RemoveRole(ctx context.Context, userID, roleID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&domain.UserRole{}).Error
}

func (r *userRepositoryImpl) ClearRoles(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.UserRole{}).Error
}

// ResolveOwner treats a user as owned by itself
func (r *userRepositoryImpl) ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error) {
	return resolveOwner(r.db.WithContext(ctx).Model(&domain.User{}).Scopes(notDeleted), "id", id)
}

// Identity returns the role names and activation state of the user.
// It returns gorm.ErrRecordNotFound when the user does not exist.
func (r *userRepositoryImpl) Identity(ctx context.Context, id uuid.UUID) ([]string, bool, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	roles, err := r.FindRoleNames(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return roles, user.IsActive, nil
}
