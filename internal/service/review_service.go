package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-marketplace-api/internal/domain"
	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/repository"
	"course-marketplace-api/internal/response"
)

const ratingOutOfRangeMessage = "Rating must be between 0 and 5."

// ReviewService defines the interface for review business logic
type ReviewService interface {
	CreateReview(ctx context.Context, userID uuid.UUID, req *dto.CreateReviewRequest) response.Result[*dto.ReviewResponse]
	UpdateReview(ctx context.Context, id uuid.UUID, req *dto.UpdateReviewRequest) response.Result[response.Empty]
	SoftDeleteReview(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	DeleteReview(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	GetReviewsByCourse(ctx context.Context, courseID uuid.UUID, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.ReviewResponse]]
	GetReviewsByVideo(ctx context.Context, videoID uuid.UUID, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.ReviewResponse]]
}

type reviewServiceImpl struct {
	reviews repository.ReviewRepository
	courses repository.CourseRepository
	videos  repository.VideoRepository
	logger  *zap.Logger
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(repos repository.Repositories, logger *zap.Logger) ReviewService {
	return &reviewServiceImpl{
		reviews: repos.Reviews,
		courses: repos.Courses,
		videos:  repos.Videos,
		logger:  logger,
	}
}

// CreateReview records a review by userID on a course, optionally scoped to one of its videos
func (s *reviewServiceImpl) CreateReview(ctx context.Context, userID uuid.UUID, req *dto.CreateReviewRequest) response.Result[*dto.ReviewResponse] {
	if req == nil {
		return response.Fail[*dto.ReviewResponse](response.NewArgumentNullError("Review"))
	}
	if !domain.ValidRating(req.Rating) {
		return response.Fail[*dto.ReviewResponse](fieldError("rating", ratingOutOfRangeMessage))
	}

	course, err := s.courses.FindByID(ctx, req.CourseID)
	if err != nil {
		return response.Fail[*dto.ReviewResponse](lookupFailure(s.logger, "Course", req.CourseID, err))
	}
	if course.IsSoftDeleted {
		return response.Fail[*dto.ReviewResponse](response.NewNotFoundError("Course", req.CourseID))
	}

	if req.VideoID != nil {
		video, err := s.videos.FindByID(ctx, *req.VideoID)
		if err != nil {
			return response.Fail[*dto.ReviewResponse](lookupFailure(s.logger, "Video", *req.VideoID, err))
		}
		if video.CourseID != course.ID {
			return response.Fail[*dto.ReviewResponse](fieldError("videoId", "Video does not belong to the reviewed course."))
		}
	}

	review := &domain.Review{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Status:    domain.NewStatus(),
		Content:   req.Content,
		Rating:    req.Rating,
		CourseID:  course.ID,
		VideoID:   req.VideoID,
		UserID:    userID,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return response.Fail[*dto.ReviewResponse](writeFailure(s.logger, "Review", err))
	}

	resp := toReviewResponse(review)
	return response.Created(&resp)
}

func (s *reviewServiceImpl) UpdateReview(ctx context.Context, id uuid.UUID, req *dto.UpdateReviewRequest) response.Result[response.Empty] {
	if req == nil {
		return response.Fail[response.Empty](response.NewArgumentNullError("Review"))
	}
	if !domain.ValidRating(req.Rating) {
		return response.Fail[response.Empty](fieldError("rating", ratingOutOfRangeMessage))
	}

	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Review", id, err))
	}
	if review.IsSoftDeleted {
		return response.Fail[response.Empty](response.NewNotFoundError("Review", id))
	}

	review.Content = req.Content
	review.Rating = req.Rating
	review.Touch()

	if err := s.reviews.Update(ctx, review); err != nil {
		return response.Fail[response.Empty](writeFailure(s.logger, "Review", err))
	}
	return response.Updated()
}

func (s *reviewServiceImpl) SoftDeleteReview(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Review", id, err))
	}
	if !review.SoftDelete() {
		return response.NotModified()
	}
	if err := s.reviews.Update(ctx, review); err != nil {
		return response.Fail[response.Empty](writeFailure(s.logger, "Review", err))
	}
	return response.Deleted()
}

func (s *reviewServiceImpl) DeleteReview(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	if _, err := s.reviews.FindByID(ctx, id); err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Review", id, err))
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to delete review", err))
	}
	return response.Deleted()
}

func (s *reviewServiceImpl) GetReviewsByCourse(ctx context.Context, courseID uuid.UUID, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.ReviewResponse]] {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		return response.Fail[*dto.PagedResponse[dto.ReviewResponse]](lookupFailure(s.logger, "Course", courseID, err))
	}
	reviews, total, err := s.reviews.FindByCourseID(ctx, courseID, toPage(q))
	if err != nil {
		return response.Fail[*dto.PagedResponse[dto.ReviewResponse]](internalFailure(s.logger, "Failed to list reviews", err))
	}
	return response.Ok(newPagedResponse(toReviewResponses(reviews), q, total))
}

func (s *reviewServiceImpl) GetReviewsByVideo(ctx context.Context, videoID uuid.UUID, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.ReviewResponse]] {
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return response.Fail[*dto.PagedResponse[dto.ReviewResponse]](lookupFailure(s.logger, "Video", videoID, err))
	}
	reviews, total, err := s.reviews.FindByVideoID(ctx, videoID, toPage(q))
	if err != nil {
		return response.Fail[*dto.PagedResponse[dto.ReviewResponse]](internalFailure(s.logger, "Failed to list reviews", err))
	}
	return response.Ok(newPagedResponse(toReviewResponses(reviews), q, total))
}

func toReviewResponses(reviews []*domain.Review) []dto.ReviewResponse {
	out := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	return out
}
