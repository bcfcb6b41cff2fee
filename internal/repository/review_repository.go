package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"course-marketplace-api/internal/domain"
)

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	FindByCourseID(ctx context.Context, courseID uuid.UUID, page Page) ([]*domain.Review, int64, error)
	FindByVideoID(ctx context.Context, videoID uuid.UUID, page Page) ([]*domain.Review, int64, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error
	DeleteByVideoID(ctx context.Context, videoID uuid.UUID) error
	ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error)
}

// reviewRepositoryImpl is the GORM implementation of ReviewRepository
type reviewRepositoryImpl struct {
	db *gorm.DB
}

// NewReviewRepository creates a new instance of ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

func (r *reviewRepositoryImpl) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var review domain.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepositoryImpl) FindByCourseID(ctx context.Context, courseID uuid.UUID, page Page) ([]*domain.Review, int64, error) {
	return r.findPage(ctx, page, "course_id = ?", courseID)
}

func (r *reviewRepositoryImpl) FindByVideoID(ctx context.Context, videoID uuid.UUID, page Page) ([]*domain.Review, int64, error) {
	return r.findPage(ctx, page, "video_id = ?", videoID)
}

func (r *reviewRepositoryImpl) findPage(ctx context.Context, page Page, query string, args ...interface{}) ([]*domain.Review, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Scopes(notDeleted).
		Where(query, args...).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var reviews []*domain.Review
	err = r.db.WithContext(ctx).
		Scopes(notDeleted, paginate(page)).
		Where(query, args...).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepositoryImpl) Update(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Review{}, "id = ?", id).Error
}

// DeleteByCourseID removes every review of the course, video-level ones included
func (r *reviewRepositoryImpl) DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("course_id = ?", courseID).Delete(&domain.Review{}).Error
}

func (r *reviewRepositoryImpl) DeleteByVideoID(ctx context.Context, videoID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("video_id = ?", videoID).Delete(&domain.Review{}).Error
}

// ResolveOwner returns the author of the review
func (r *reviewRepositoryImpl) ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error) {
	return resolveOwner(r.db.WithContext(ctx).Model(&domain.Review{}), "user_id", id)
}
