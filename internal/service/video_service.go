package service

import (
	"context"

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

// UploadTokenIssuer issues delegated upload tokens for the media provider
type UploadTokenIssuer interface {
	GenerateUploadToken(ctx context.Context) (*client.UploadToken, error)
}

// VideoService defines the interface for video business logic
type VideoService interface {
	GetVideo(ctx context.Context, id uuid.UUID) response.Result[*dto.VideoResponse]
	GetVideosByCourse(ctx context.Context, courseID uuid.UUID, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.VideoResponse]]
	CreateVideo(ctx context.Context, courseID uuid.UUID, req *dto.CreateVideoRequest) response.Result[*dto.VideoResponse]
	UpdateVideo(ctx context.Context, id uuid.UUID, req *dto.UpdateVideoRequest) response.Result[response.Empty]
	SoftDeleteVideo(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	MakeVideoPaid(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	MakeVideoFree(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	MakeVideoPrivate(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	MakeVideoPublic(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	DeleteVideo(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	GenerateUploadToken(ctx context.Context) response.Result[*dto.UploadTokenResponse]
}

type videoServiceImpl struct {
	videos  repository.VideoRepository
	courses repository.CourseRepository
	uow     repository.UnitOfWork
	media   client.MediaChecker
	tokens  UploadTokenIssuer
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewVideoService creates a new instance of VideoService
func NewVideoService(repos repository.Repositories, uow repository.UnitOfWork, media client.MediaChecker, tokens UploadTokenIssuer, m *metrics.Metrics, logger *zap.Logger) VideoService {
	return &videoServiceImpl{
		videos:  repos.Videos,
		courses: repos.Courses,
		uow:     uow,
		media:   media,
		tokens:  tokens,
		metrics: m,
		logger:  logger,
	}
}

func (s *videoServiceImpl) GetVideo(ctx context.Context, id uuid.UUID) response.Result[*dto.VideoResponse] {
	video, err := s.findLive(ctx, id)
	if err != nil {
		return response.Fail[*dto.VideoResponse](err)
	}
	resp := toVideoResponse(video)
	return response.Ok(&resp)
}

func (s *videoServiceImpl) GetVideosByCourse(ctx context.Context, courseID uuid.UUID, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.VideoResponse]] {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		return response.Fail[*dto.PagedResponse[dto.VideoResponse]](lookupFailure(s.logger, "Course", courseID, err))
	}

	videos, total, err := s.videos.FindPageByCourseID(ctx, courseID, toPage(q))
	if err != nil {
		return response.Fail[*dto.PagedResponse[dto.VideoResponse]](internalFailure(s.logger, "Failed to list videos", err))
	}
	return response.Ok(newPagedResponse(toVideoResponses(videos), q, total))
}

// CreateVideo adds a video to an existing course. The video inherits the course's creator.
func (s *videoServiceImpl) CreateVideo(ctx context.Context, courseID uuid.UUID, req *dto.CreateVideoRequest) response.Result[*dto.VideoResponse] {
	if req == nil {
		return response.Fail[*dto.VideoResponse](response.NewArgumentNullError("Video"))
	}

	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return response.Fail[*dto.VideoResponse](lookupFailure(s.logger, "Course", courseID, err))
	}
	if course.IsSoftDeleted {
		return response.Fail[*dto.VideoResponse](response.NewNotFoundError("Course", courseID))
	}

	if appErr := ensureMediaReady(ctx, s.media, s.logger, []string{req.ProviderVideoID}); appErr != nil {
		return response.Fail[*dto.VideoResponse](appErr)
	}

	video := newVideo(req.VideoDescriptor)
	video.ID = uuid.New()
	course.AddVideo(video)

	if err := s.videos.Create(ctx, video); err != nil {
		return response.Fail[*dto.VideoResponse](writeFailure(s.logger, "Video", err))
	}

	resp := toVideoResponse(video)
	return response.Created(&resp)
}

func (s *videoServiceImpl) UpdateVideo(ctx context.Context, id uuid.UUID, req *dto.UpdateVideoRequest) response.Result[response.Empty] {
	if req == nil {
		return response.Fail[response.Empty](response.NewArgumentNullError("Video"))
	}

	video, appErr := s.findLive(ctx, id)
	if appErr != nil {
		return response.Fail[response.Empty](appErr)
	}

	if video.Title != req.Title {
		video.Title = req.Title
		video.Slug = slug.Make(req.Title)
	}
	video.Description = req.Description
	video.ThumbnailTime = req.ThumbnailTime
	video.Touch()

	if err := s.videos.Update(ctx, video); err != nil {
		return response.Fail[response.Empty](writeFailure(s.logger, "Video", err))
	}
	return response.Updated()
}

func (s *videoServiceImpl) SoftDeleteVideo(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.transition(ctx, id, "soft_delete", false, (*domain.Video).SoftDelete, response.Deleted)
}

func (s *videoServiceImpl) MakeVideoPaid(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.transition(ctx, id, "make_paid", true, (*domain.Video).MakePaid, response.Updated)
}

func (s *videoServiceImpl) MakeVideoFree(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.transition(ctx, id, "make_free", true, (*domain.Video).MakeFree, response.Updated)
}

func (s *videoServiceImpl) MakeVideoPrivate(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.transition(ctx, id, "make_private", true, (*domain.Video).MakePrivate, response.Updated)
}

func (s *videoServiceImpl) MakeVideoPublic(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.transition(ctx, id, "make_public", true, (*domain.Video).MakePublic, response.Updated)
}

// transition applies one axis change. With liveOnly set a soft-deleted video is reported as missing.
func (s *videoServiceImpl) transition(ctx context.Context, id uuid.UUID, name string, liveOnly bool, apply func(*domain.Video) bool, done func() response.Result[response.Empty]) response.Result[response.Empty] {
	video, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Video", id, err))
	}
	if liveOnly && video.IsSoftDeleted {
		return response.Fail[response.Empty](response.NewNotFoundError("Video", id))
	}

	if !apply(video) {
		s.metrics.RecordLifecycleTransition("video", name, "not_modified")
		return response.NotModified()
	}

	if err := s.videos.Update(ctx, video); err != nil {
		s.metrics.RecordLifecycleTransition("video", name, "error")
		return response.Fail[response.Empty](writeFailure(s.logger, "Video", err))
	}
	s.metrics.RecordLifecycleTransition("video", name, "changed")
	return done()
}

// DeleteVideo physically removes the video together with its reviews
func (s *videoServiceImpl) DeleteVideo(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	if _, err := s.videos.FindByID(ctx, id); err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Video", id, err))
	}
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		if err := tx.Reviews.DeleteByVideoID(ctx, id); err != nil {
			return err
		}
		return tx.Videos.Delete(ctx, id)
	})
	if err != nil {
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to delete video", err, zap.String("video_id", id.String())))
	}
	return response.Deleted()
}

func (s *videoServiceImpl) GenerateUploadToken(ctx context.Context) response.Result[*dto.UploadTokenResponse] {
	if s.tokens == nil {
		return response.Fail[*dto.UploadTokenResponse](internalFailure(s.logger, "Cannot issue upload token", errMediaCheckerMissing))
	}
	token, err := s.tokens.GenerateUploadToken(ctx)
	if err != nil {
		return response.Fail[*dto.UploadTokenResponse](internalFailure(s.logger, "Failed to issue upload token", err))
	}
	return response.Ok(&dto.UploadTokenResponse{
		Token:     token.Token,
		TTL:       int(token.TTL.Seconds()),
		ExpiresAt: token.ExpiresAt,
	})
}

func (s *videoServiceImpl) findLive(ctx context.Context, id uuid.UUID) (*domain.Video, *response.AppError) {
	video, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(s.logger, "Video", id, err)
	}
	if video.IsSoftDeleted {
		return nil, response.NewNotFoundError("Video", id)
	}
	return video, nil
}
