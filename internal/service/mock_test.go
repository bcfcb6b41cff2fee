package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"course-marketplace-api/internal/domain"
	"course-marketplace-api/internal/repository"
)

// MockCourseRepository is a mock implementation of CourseRepository
type MockCourseRepository struct {
	CreateFunc          func(ctx context.Context, course *domain.Course) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	FindWithVideosFunc  func(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	FindBySkillIDFunc   func(ctx context.Context, skillID uuid.UUID, page repository.Page) ([]*domain.Course, int64, error)
	FindByCreatorIDFunc func(ctx context.Context, creatorID uuid.UUID, page repository.Page) ([]*domain.Course, int64, error)
	UpdateFunc          func(ctx context.Context, course *domain.Course) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	ResolveOwnerFunc    func(ctx context.Context, id uuid.UUID) (string, bool, error)
	CountActiveFunc     func(ctx context.Context) (int64, error)

	UpdateCalls int
}

func (m *MockCourseRepository) Create(ctx context.Context, course *domain.Course) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, course)
	}
	return nil
}

func (m *MockCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCourseRepository) FindWithVideos(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if m.FindWithVideosFunc != nil {
		return m.FindWithVideosFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCourseRepository) FindBySkillID(ctx context.Context, skillID uuid.UUID, page repository.Page) ([]*domain.Course, int64, error) {
	if m.FindBySkillIDFunc != nil {
		return m.FindBySkillIDFunc(ctx, skillID, page)
	}
	return nil, 0, nil
}

func (m *MockCourseRepository) FindByCreatorID(ctx context.Context, creatorID uuid.UUID, page repository.Page) ([]*domain.Course, int64, error) {
	if m.FindByCreatorIDFunc != nil {
		return m.FindByCreatorIDFunc(ctx, creatorID, page)
	}
	return nil, 0, nil
}

func (m *MockCourseRepository) Update(ctx context.Context, course *domain.Course) error {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, course)
	}
	return nil
}

func (m *MockCourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCourseRepository) ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error) {
	if m.ResolveOwnerFunc != nil {
		return m.ResolveOwnerFunc(ctx, id)
	}
	return "", false, nil
}

func (m *MockCourseRepository) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx)
	}
	return 0, nil
}

// MockVideoRepository is a mock implementation of VideoRepository
type MockVideoRepository struct {
	CreateFunc             func(ctx context.Context, video *domain.Video) error
	CreateBatchFunc        func(ctx context.Context, videos []*domain.Video) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	FindByCourseIDFunc     func(ctx context.Context, courseID uuid.UUID) ([]*domain.Video, error)
	FindPageByCourseIDFunc func(ctx context.Context, courseID uuid.UUID, page repository.Page) ([]*domain.Video, int64, error)
	UpdateFunc             func(ctx context.Context, video *domain.Video) error
	UpdateBatchFunc        func(ctx context.Context, videos []*domain.Video) error
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	DeleteByCourseIDFunc   func(ctx context.Context, courseID uuid.UUID) error

	UpdateCalls      int
	UpdateBatchCalls int
	FindByCourseHits int
}

func (m *MockVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, video)
	}
	return nil
}

func (m *MockVideoRepository) CreateBatch(ctx context.Context, videos []*domain.Video) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, videos)
	}
	return nil
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockVideoRepository) FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]*domain.Video, error) {
	m.FindByCourseHits++
	if m.FindByCourseIDFunc != nil {
		return m.FindByCourseIDFunc(ctx, courseID)
	}
	return nil, nil
}

func (m *MockVideoRepository) FindPageByCourseID(ctx context.Context, courseID uuid.UUID, page repository.Page) ([]*domain.Video, int64, error) {
	if m.FindPageByCourseIDFunc != nil {
		return m.FindPageByCourseIDFunc(ctx, courseID, page)
	}
	return nil, 0, nil
}

func (m *MockVideoRepository) Update(ctx context.Context, video *domain.Video) error {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, video)
	}
	return nil
}

func (m *MockVideoRepository) UpdateBatch(ctx context.Context, videos []*domain.Video) error {
	m.UpdateBatchCalls++
	if m.UpdateBatchFunc != nil {
		return m.UpdateBatchFunc(ctx, videos)
	}
	return nil
}

func (m *MockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockVideoRepository) DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error {
	if m.DeleteByCourseIDFunc != nil {
		return m.DeleteByCourseIDFunc(ctx, courseID)
	}
	return nil
}

func (m *MockVideoRepository) ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error) {
	return "", false, nil
}

func (m *MockVideoRepository) CountActive(ctx context.Context) (int64, error) {
	return 0, nil
}

// MockSkillRepository is a mock implementation of SkillRepository
type MockSkillRepository struct {
	CreateFunc             func(ctx context.Context, skill *domain.Skill) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Skill, error)
	FindByIDsFunc          func(ctx context.Context, ids []uuid.UUID) ([]*domain.Skill, error)
	FindWithCoursesFunc    func(ctx context.Context, id uuid.UUID) (*domain.Skill, error)
	FindPageFunc           func(ctx context.Context, page repository.Page) ([]*domain.Skill, int64, error)
	FindAllWithCoursesFunc func(ctx context.Context) ([]*domain.Skill, error)
	FindByCreatorIDFunc    func(ctx context.Context, userID uuid.UUID) ([]*domain.Skill, error)
	UpdateFunc             func(ctx context.Context, skill *domain.Skill) error
	AddCreatorsFunc        func(ctx context.Context, skill *domain.Skill) error
}

func (m *MockSkillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, skill)
	}
	return nil
}

func (m *MockSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockSkillRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Skill, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockSkillRepository) FindWithCourses(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	if m.FindWithCoursesFunc != nil {
		return m.FindWithCoursesFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockSkillRepository) FindPage(ctx context.Context, page repository.Page) ([]*domain.Skill, int64, error) {
	if m.FindPageFunc != nil {
		return m.FindPageFunc(ctx, page)
	}
	return nil, 0, nil
}

func (m *MockSkillRepository) FindAllWithCourses(ctx context.Context) ([]*domain.Skill, error) {
	if m.FindAllWithCoursesFunc != nil {
		return m.FindAllWithCoursesFunc(ctx)
	}
	return nil, nil
}

func (m *MockSkillRepository) FindByCreatorID(ctx context.Context, userID uuid.UUID) ([]*domain.Skill, error) {
	if m.FindByCreatorIDFunc != nil {
		return m.FindByCreatorIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockSkillRepository) Update(ctx context.Context, skill *domain.Skill) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, skill)
	}
	return nil
}

func (m *MockSkillRepository) AddCreators(ctx context.Context, skill *domain.Skill) error {
	if m.AddCreatorsFunc != nil {
		return m.AddCreatorsFunc(ctx, skill)
	}
	return nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	CreateFunc       func(ctx context.Context, payment *domain.Payment) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	FindByIDsFunc    func(ctx context.Context, ids []uuid.UUID) ([]*domain.Payment, error)
	FindByUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Payment, error)
	UpdateFunc       func(ctx context.Context, payment *domain.Payment) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	CountByCourseFn  func(ctx context.Context, courseID uuid.UUID) (int64, error)

	UpdateCalls int
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payment)
	}
	return nil
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPaymentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Payment, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockPaymentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Payment, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, payment)
	}
	return nil
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPaymentRepository) CountPaid(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *MockPaymentRepository) CountByCourseID(ctx context.Context, courseID uuid.UUID) (int64, error) {
	if m.CountByCourseFn != nil {
		return m.CountByCourseFn(ctx, courseID)
	}
	return 0, nil
}

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	CreateFunc           func(ctx context.Context, review *domain.Review) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	FindByCourseIDFunc   func(ctx context.Context, courseID uuid.UUID, page repository.Page) ([]*domain.Review, int64, error)
	FindByVideoIDFunc    func(ctx context.Context, videoID uuid.UUID, page repository.Page) ([]*domain.Review, int64, error)
	UpdateFunc           func(ctx context.Context, review *domain.Review) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	DeleteByCourseIDFunc func(ctx context.Context, courseID uuid.UUID) error
	DeleteByVideoIDFunc  func(ctx context.Context, videoID uuid.UUID) error
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	return nil
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockReviewRepository) FindByCourseID(ctx context.Context, courseID uuid.UUID, page repository.Page) ([]*domain.Review, int64, error) {
	if m.FindByCourseIDFunc != nil {
		return m.FindByCourseIDFunc(ctx, courseID, page)
	}
	return nil, 0, nil
}

func (m *MockReviewRepository) FindByVideoID(ctx context.Context, videoID uuid.UUID, page repository.Page) ([]*domain.Review, int64, error) {
	if m.FindByVideoIDFunc != nil {
		return m.FindByVideoIDFunc(ctx, videoID, page)
	}
	return nil, 0, nil
}

func (m *MockReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, review)
	}
	return nil
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockReviewRepository) DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error {
	if m.DeleteByCourseIDFunc != nil {
		return m.DeleteByCourseIDFunc(ctx, courseID)
	}
	return nil
}

func (m *MockReviewRepository) DeleteByVideoID(ctx context.Context, videoID uuid.UUID) error {
	if m.DeleteByVideoIDFunc != nil {
		return m.DeleteByVideoIDFunc(ctx, videoID)
	}
	return nil
}

func (m *MockReviewRepository) ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error) {
	return "", false, nil
}

// MockUnitOfWork runs fn against the configured repositories and counts commits
type MockUnitOfWork struct {
	Repos   repository.Repositories
	Commits int
	Calls   int
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(tx repository.Repositories) error) error {
	m.Calls++
	if err := fn(m.Repos); err != nil {
		return err
	}
	m.Commits++
	return nil
}

// MockMediaChecker is a mock implementation of client.MediaChecker
type MockMediaChecker struct {
	CheckReadyFunc func(ctx context.Context, ids []string) (map[string]bool, error)
	Calls          int
}

func (m *MockMediaChecker) CheckReady(ctx context.Context, ids []string) (map[string]bool, error) {
	m.Calls++
	if m.CheckReadyFunc != nil {
		return m.CheckReadyFunc(ctx, ids)
	}
	ready := make(map[string]bool, len(ids))
	for _, id := range ids {
		ready[id] = true
	}
	return ready, nil
}
