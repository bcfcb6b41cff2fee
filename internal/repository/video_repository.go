package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"course-marketplace-api/internal/domain"
)

// VideoRepository defines the interface for video data access
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	CreateBatch(ctx context.Context, videos []*domain.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]*domain.Video, error)
	FindPageByCourseID(ctx context.Context, courseID uuid.UUID, page Page) ([]*domain.Video, int64, error)
	Update(ctx context.Context, video *domain.Video) error
	UpdateBatch(ctx context.Context, videos []*domain.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error
	ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error)
	CountActive(ctx context.Context) (int64, error)
}

// videoRepositoryImpl is the GORM implementation of VideoRepository
type videoRepositoryImpl struct {
	db *gorm.DB
}

// NewVideoRepository creates a new instance of VideoRepository
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepositoryImpl{db: db}
}

func (r *videoRepositoryImpl) Create(ctx context.Context, video *domain.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepositoryImpl) CreateBatch(ctx context.Context, videos []*domain.Video) error {
	if len(videos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&videos).Error
}

func (r *videoRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	var video domain.Video
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// FindByCourseID returns every video of the course, soft-deleted ones included
func (r *videoRepositoryImpl) FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]*domain.Video, error) {
	var videos []*domain.Video
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at ASC").
		Find(&videos).Error
	return videos, err
}

func (r *videoRepositoryImpl) FindPageByCourseID(ctx context.Context, courseID uuid.UUID, page Page) ([]*domain.Video, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Video{}).
		Scopes(notDeleted).
		Where("course_id = ?", courseID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var videos []*domain.Video
	err = r.db.WithContext(ctx).
		Scopes(notDeleted, paginate(page)).
		Where("course_id = ?", courseID).
		Order("created_at ASC").
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (r *videoRepositoryImpl) Update(ctx context.Context, video *domain.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

// UpdateBatch saves every video. Callers wrap it in a unit of work for atomicity.
func (r *videoRepositoryImpl) UpdateBatch(ctx context.Context, videos []*domain.Video) error {
	db := r.db.WithContext(ctx)
	for _, v := range videos {
		if err := db.Save(v).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *videoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Video{}, "id = ?", id).Error
}

func (r *videoRepositoryImpl) DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("course_id = ?", courseID).Delete(&domain.Video{}).Error
}

// ResolveOwner returns the creator of the video
func (r *videoRepositoryImpl) ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error) {
	return resolveOwner(r.db.WithContext(ctx).Model(&domain.Video{}), "creator_id", id)
}

func (r *videoRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Video{}).Scopes(notDeleted).Count(&count).Error
	return count, err
}
