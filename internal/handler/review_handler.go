package handler

import (
	"github.com/gin-gonic/gin"

	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/middleware"
	"course-marketplace-api/internal/response"
	"course-marketplace-api/internal/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	results       *ResultWriter
}

func NewReviewHandler(reviewService service.ReviewService, results *ResultWriter) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		results:       results,
	}
}

// CreateReview records a review authored by the caller
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		h.results.Fail(c, response.NewUnauthorizedError("Authentication required"))
		return
	}
	var req dto.CreateReviewRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.reviewService.CreateReview(c.Request.Context(), userID, &req))
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, ok := h.results.pathID(c, "reviewId")
	if !ok {
		return
	}
	var req dto.UpdateReviewRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.reviewService.UpdateReview(c.Request.Context(), id, &req))
}

func (h *ReviewHandler) SoftDeleteReview(c *gin.Context) {
	id, ok := h.results.pathID(c, "reviewId")
	if !ok {
		return
	}
	h.results.Command(c, h.reviewService.SoftDeleteReview(c.Request.Context(), id))
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := h.results.pathID(c, "reviewId")
	if !ok {
		return
	}
	h.results.Command(c, h.reviewService.DeleteReview(c.Request.Context(), id))
}

func (h *ReviewHandler) GetReviewsByCourse(c *gin.Context) {
	courseID, ok := h.results.pathID(c, "courseId")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !h.results.bindPage(c, &q) {
		return
	}
	h.results.Query(c, h.reviewService.GetReviewsByCourse(c.Request.Context(), courseID, q))
}

func (h *ReviewHandler) GetReviewsByVideo(c *gin.Context) {
	videoID, ok := h.results.pathID(c, "videoId")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !h.results.bindPage(c, &q) {
		return
	}
	h.results.Query(c, h.reviewService.GetReviewsByVideo(c.Request.Context(), videoID, q))
}
