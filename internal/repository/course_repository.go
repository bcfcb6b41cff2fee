package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"course-marketplace-api/internal/domain"
)

// CourseRepository defines the interface for course data access
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	FindWithVideos(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	FindBySkillID(ctx context.Context, skillID uuid.UUID, page Page) ([]*domain.Course, int64, error)
	FindByCreatorID(ctx context.Context, creatorID uuid.UUID, page Page) ([]*domain.Course, int64, error)
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error)
	CountActive(ctx context.Context) (int64, error)
}

// courseRepositoryImpl is the GORM implementation of CourseRepository
type courseRepositoryImpl struct {
	db *gorm.DB
}

// NewCourseRepository creates a new instance of CourseRepository
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepositoryImpl{db: db}
}

func (r *courseRepositoryImpl) Create(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// FindByID returns the course whether or not it is soft-deleted
func (r *courseRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	var course domain.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// FindWithVideos loads the course and its videos that are not soft-deleted
func (r *courseRepositoryImpl) FindWithVideos(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	course, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var videos []*domain.Video
	err = r.db.WithContext(ctx).
		Scopes(notDeleted).
		Where("course_id = ?", id).
		Order("created_at ASC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	for _, v := range videos {
		course.AddVideo(v)
	}
	return course, nil
}

func (r *courseRepositoryImpl) FindBySkillID(ctx context.Context, skillID uuid.UUID, page Page) ([]*domain.Course, int64, error) {
	return r.findPage(ctx, page, "skill_id = ?", skillID)
}

func (r *courseRepositoryImpl) FindByCreatorID(ctx context.Context, creatorID uuid.UUID, page Page) ([]*domain.Course, int64, error) {
	return r.findPage(ctx, page, "creator_id = ?", creatorID)
}

func (r *courseRepositoryImpl) findPage(ctx context.Context, page Page, query string, args ...interface{}) ([]*domain.Course, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Course{}).Scopes(notDeleted).Where(query, args...)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []*domain.Course
	err := r.db.WithContext(ctx).
		Scopes(notDeleted, paginate(page)).
		Where(query, args...).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (r *courseRepositoryImpl) Update(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Course{}, "id = ?", id).Error
}

// ResolveOwner returns the creator of the course
func (r *courseRepositoryImpl) ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error) {
	return resolveOwner(r.db.WithContext(ctx).Model(&domain.Course{}), "creator_id", id)
}

func (r *courseRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Course{}).Scopes(notDeleted).Count(&count).Error
	return count, err
}

// resolveOwner reads a single owner column. A vanished row is reported as not found.
func resolveOwner(db *gorm.DB, column string, id uuid.UUID) (string, bool, error) {
	var owner string
	if err := db.Select(column).Where("id = ?", id).Limit(1).Scan(&owner).Error; err != nil {
		return "", false, err
	}
	if owner == "" {
		return "", false, nil
	}
	return owner, true, nil
}
