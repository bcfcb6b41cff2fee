package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-marketplace-api/internal/client"
	"course-marketplace-api/internal/domain"
	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/metrics"
	"course-marketplace-api/internal/repository"
	"course-marketplace-api/internal/response"
	"course-marketplace-api/internal/slug"
)

// CourseService defines the interface for course business logic
type CourseService interface {
	GetCourseWithVideos(ctx context.Context, id uuid.UUID) response.Result[*dto.CourseResponse]
	GetCourseWithPaginatedVideos(ctx context.Context, id uuid.UUID, q dto.PageQuery) response.Result[*dto.CourseWithVideosPageResponse]
	GetCoursesBySkill(ctx context.Context, skillID uuid.UUID, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.CourseResponse]]
	GetCoursesByCreator(ctx context.Context, creatorID uuid.UUID, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.CourseResponse]]
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest, creatorID uuid.UUID) response.Result[*dto.CourseResponse]
	UpdateCourse(ctx context.Context, id uuid.UUID, req *dto.UpdateCourseRequest) response.Result[response.Empty]
	DeleteCourse(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	MakeCoursePaid(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	MakeCourseFree(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	MakeCoursePrivate(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	MakeCoursePublic(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	HardDeleteCourse(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
}

// courseTransition pairs a course-level axis transition with the same transition on its videos.
// Transitions with liveOnly set treat a soft-deleted course as missing.
type courseTransition struct {
	name     string
	course   func(*domain.Course) bool
	video    func(*domain.Video) bool
	done     func() response.Result[response.Empty]
	liveOnly bool
}

var (
	courseSoftDelete  = courseTransition{"soft_delete", (*domain.Course).SoftDelete, (*domain.Video).SoftDelete, response.Deleted, false}
	courseMakePaid    = courseTransition{"make_paid", (*domain.Course).MakePaid, (*domain.Video).MakePaid, response.Updated, true}
	courseMakeFree    = courseTransition{"make_free", (*domain.Course).MakeFree, (*domain.Video).MakeFree, response.Updated, true}
	courseMakePrivate = courseTransition{"make_private", (*domain.Course).MakePrivate, (*domain.Video).MakePrivate, response.Updated, true}
	courseMakePublic  = courseTransition{"make_public", (*domain.Course).MakePublic, (*domain.Video).MakePublic, response.Updated, true}
)

// errCourseHasPayments stops a hard delete of a course that was ever purchased
var errCourseHasPayments = errors.New("course has recorded payments")

// courseServiceImpl is the implementation of CourseService
type courseServiceImpl struct {
	repos   repository.Repositories
	uow     repository.UnitOfWork
	media   client.MediaChecker
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewCourseService creates a new instance of CourseService
func NewCourseService(repos repository.Repositories, uow repository.UnitOfWork, media client.MediaChecker, m *metrics.Metrics, logger *zap.Logger) CourseService {
	return &courseServiceImpl{
		repos:   repos,
		uow:     uow,
		media:   media,
		metrics: m,
		logger:  logger,
	}
}

func (s *courseServiceImpl) GetCourseWithVideos(ctx context.Context, id uuid.UUID) response.Result[*dto.CourseResponse] {
	course, err := s.repos.Courses.FindWithVideos(ctx, id)
	if err != nil {
		return response.Fail[*dto.CourseResponse](lookupFailure(s.logger, "Course", id, err))
	}
	if course.IsSoftDeleted {
		return response.Fail[*dto.CourseResponse](response.NewNotFoundError("Course", id))
	}

	resp := toCourseResponse(course)
	return response.Ok(&resp)
}

func (s *courseServiceImpl) GetCourseWithPaginatedVideos(ctx context.Context, id uuid.UUID, q dto.PageQuery) response.Result[*dto.CourseWithVideosPageResponse] {
	course, err := s.repos.Courses.FindByID(ctx, id)
	if err != nil {
		return response.Fail[*dto.CourseWithVideosPageResponse](lookupFailure(s.logger, "Course", id, err))
	}
	if course.IsSoftDeleted {
		return response.Fail[*dto.CourseWithVideosPageResponse](response.NewNotFoundError("Course", id))
	}

	videos, total, err := s.repos.Videos.FindPageByCourseID(ctx, id, toPage(q))
	if err != nil {
		return response.Fail[*dto.CourseWithVideosPageResponse](internalFailure(s.logger, "Failed to load course videos", err))
	}

	return response.Ok(&dto.CourseWithVideosPageResponse{
		Course: toCourseResponse(course),
		Videos: *newPagedResponse(toVideoResponses(videos), q, total),
	})
}

func (s *courseServiceImpl) GetCoursesBySkill(ctx context.Context, skillID uuid.UUID, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.CourseResponse]] {
	if _, err := s.repos.Skills.FindByID(ctx, skillID); err != nil {
		return response.Fail[*dto.PagedResponse[dto.CourseResponse]](lookupFailure(s.logger, "Skill", skillID, err))
	}

	courses, total, err := s.repos.Courses.FindBySkillID(ctx, skillID, toPage(q))
	if err != nil {
		return response.Fail[*dto.PagedResponse[dto.CourseResponse]](internalFailure(s.logger, "Failed to list courses by skill", err))
	}
	return response.Ok(newPagedResponse(toCourseResponses(courses), q, total))
}

func (s *courseServiceImpl) GetCoursesByCreator(ctx context.Context, creatorID uuid.UUID, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.CourseResponse]] {
	courses, total, err := s.repos.Courses.FindByCreatorID(ctx, creatorID, toPage(q))
	if err != nil {
		return response.Fail[*dto.PagedResponse[dto.CourseResponse]](internalFailure(s.logger, "Failed to list courses by creator", err))
	}
	return response.Ok(newPagedResponse(toCourseResponses(courses), q, total))
}

// CreateCourse persists the course and its videos in one transaction
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest, creatorID uuid.UUID) response.Result[*dto.CourseResponse] {
	if req == nil {
		return response.Fail[*dto.CourseResponse](response.NewArgumentNullError("Course"))
	}
	if req.Price.IsNegative() {
		return response.Fail[*dto.CourseResponse](fieldError("price", "Price must not be negative."))
	}
	if appErr := s.ensureSkillExists(ctx, req.SkillID); appErr != nil {
		return response.Fail[*dto.CourseResponse](appErr)
	}

	providerIDs := make([]string, 0, len(req.Videos))
	for _, v := range req.Videos {
		providerIDs = append(providerIDs, v.ProviderVideoID)
	}
	if appErr := ensureMediaReady(ctx, s.media, s.logger, providerIDs); appErr != nil {
		return response.Fail[*dto.CourseResponse](appErr)
	}

	course := &domain.Course{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		Status:      domain.NewStatus(),
		Title:       req.Title,
		Description: req.Description,
		Slug:        slug.Make(req.Title),
		Price:       req.Price,
		SkillID:     req.SkillID,
		CreatorID:   creatorID,
		Availability: domain.Availability{
			IsPaid:    req.IsPaid,
			IsPrivate: req.IsPrivate,
		},
	}
	for _, desc := range req.Videos {
		video := newVideo(desc)
		video.ID = uuid.New()
		course.AddVideo(video)
	}

	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		if err := tx.Courses.Create(ctx, course); err != nil {
			return err
		}
		if videos := course.Videos(); len(videos) > 0 {
			return tx.Videos.CreateBatch(ctx, videos)
		}
		return nil
	})
	if err != nil {
		return response.Fail[*dto.CourseResponse](writeFailure(s.logger, "Course", err))
	}

	s.metrics.IncrementCourseCreated()
	s.logger.Info("Course created",
		zap.String("course_id", course.ID.String()),
		zap.String("creator_id", creatorID.String()),
		zap.Int("videos", len(req.Videos)),
	)

	resp := toCourseResponse(course)
	return response.Created(&resp)
}

// UpdateCourse updates descriptive fields. The slug follows the title only when the title changed.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id uuid.UUID, req *dto.UpdateCourseRequest) response.Result[response.Empty] {
	if req == nil {
		return response.Fail[response.Empty](response.NewArgumentNullError("Course"))
	}
	if req.Price.IsNegative() {
		return response.Fail[response.Empty](fieldError("price", "Price must not be negative."))
	}

	course, err := s.repos.Courses.FindByID(ctx, id)
	if err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Course", id, err))
	}
	if course.IsSoftDeleted {
		return response.Fail[response.Empty](response.NewNotFoundError("Course", id))
	}
	if appErr := s.ensureSkillExists(ctx, req.SkillID); appErr != nil {
		return response.Fail[response.Empty](appErr)
	}

	if course.Title != req.Title {
		course.Title = req.Title
		course.Slug = slug.Make(req.Title)
	}
	course.Description = req.Description
	course.Price = req.Price
	course.SkillID = req.SkillID
	course.Touch()

	if err := s.repos.Courses.Update(ctx, course); err != nil {
		return response.Fail[response.Empty](writeFailure(s.logger, "Course", err))
	}
	return response.Updated()
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.propagate(ctx, id, courseSoftDelete)
}

func (s *courseServiceImpl) MakeCoursePaid(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.propagate(ctx, id, courseMakePaid)
}

func (s *courseServiceImpl) MakeCourseFree(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.propagate(ctx, id, courseMakeFree)
}

func (s *courseServiceImpl) MakeCoursePrivate(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.propagate(ctx, id, courseMakePrivate)
}

func (s *courseServiceImpl) MakeCoursePublic(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.propagate(ctx, id, courseMakePublic)
}

// propagate applies t to the course and, when the course changed, to every one of its videos.
// Course and videos are committed together. A no-op on the course writes nothing.
func (s *courseServiceImpl) propagate(ctx context.Context, id uuid.UUID, t courseTransition) response.Result[response.Empty] {
	course, err := s.repos.Courses.FindByID(ctx, id)
	if err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Course", id, err))
	}
	if t.liveOnly && course.IsSoftDeleted {
		return response.Fail[response.Empty](response.NewNotFoundError("Course", id))
	}

	if !t.course(course) {
		s.metrics.RecordLifecycleTransition("course", t.name, "not_modified")
		return response.NotModified()
	}

	var propagated int
	err = s.uow.Do(ctx, func(tx repository.Repositories) error {
		videos, err := tx.Videos.FindByCourseID(ctx, course.ID)
		if err != nil {
			return err
		}
		changed := make([]*domain.Video, 0, len(videos))
		for _, v := range videos {
			if t.video(v) {
				changed = append(changed, v)
			}
		}
		if len(changed) > 0 {
			if err := tx.Videos.UpdateBatch(ctx, changed); err != nil {
				return err
			}
		}
		propagated = len(changed)
		return tx.Courses.Update(ctx, course)
	})
	if err != nil {
		s.metrics.RecordLifecycleTransition("course", t.name, "error")
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to apply course transition", err,
			zap.String("course_id", id.String()),
			zap.String("transition", t.name),
		))
	}

	s.metrics.RecordLifecycleTransition("course", t.name, "changed")
	s.logger.Info("Course transition applied",
		zap.String("course_id", id.String()),
		zap.String("transition", t.name),
		zap.Int("videos", propagated),
	)
	return t.done()
}

// HardDeleteCourse physically removes the course with its videos and reviews.
// A course with recorded payments is kept and the call fails with Conflict.
func (s *courseServiceImpl) HardDeleteCourse(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	if _, err := s.repos.Courses.FindByID(ctx, id); err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Course", id, err))
	}

	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		payments, err := tx.Payments.CountByCourseID(ctx, id)
		if err != nil {
			return err
		}
		if payments > 0 {
			return errCourseHasPayments
		}
		if err := tx.Reviews.DeleteByCourseID(ctx, id); err != nil {
			return err
		}
		if err := tx.Videos.DeleteByCourseID(ctx, id); err != nil {
			return err
		}
		return tx.Courses.Delete(ctx, id)
	})
	if errors.Is(err, errCourseHasPayments) {
		return response.Fail[response.Empty](response.NewConflictError("Course has payments and cannot be permanently deleted."))
	}
	if err != nil {
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to delete course", err, zap.String("course_id", id.String())))
	}

	s.logger.Info("Course permanently deleted", zap.String("course_id", id.String()))
	return response.Deleted()
}

func (s *courseServiceImpl) ensureSkillExists(ctx context.Context, skillID *uuid.UUID) *response.AppError {
	if skillID == nil {
		return nil
	}
	if _, err := s.repos.Skills.FindByID(ctx, *skillID); err != nil {
		return lookupFailure(s.logger, "Skill", *skillID, err)
	}
	return nil
}
