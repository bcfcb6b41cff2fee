package handler

import (
	"github.com/gin-gonic/gin"

	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/service"
)

type VideoHandler struct {
	videoService service.VideoService
	results      *ResultWriter
}

func NewVideoHandler(videoService service.VideoService, results *ResultWriter) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
		results:      results,
	}
}

func (h *VideoHandler) GetVideo(c *gin.Context) {
	id, ok := h.results.pathID(c, "videoId")
	if !ok {
		return
	}
	h.results.Query(c, h.videoService.GetVideo(c.Request.Context(), id))
}

func (h *VideoHandler) GetVideosByCourse(c *gin.Context) {
	courseID, ok := h.results.pathID(c, "courseId")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !h.results.bindPage(c, &q) {
		return
	}
	h.results.Query(c, h.videoService.GetVideosByCourse(c.Request.Context(), courseID, q))
}

// CreateVideo attaches a new video to the course in the path
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	courseID, ok := h.results.pathID(c, "courseId")
	if !ok {
		return
	}
	var req dto.CreateVideoRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.videoService.CreateVideo(c.Request.Context(), courseID, &req))
}

func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	id, ok := h.results.pathID(c, "videoId")
	if !ok {
		return
	}
	var req dto.UpdateVideoRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.videoService.UpdateVideo(c.Request.Context(), id, &req))
}

func (h *VideoHandler) SoftDeleteVideo(c *gin.Context) {
	h.transition(c, h.videoService.SoftDeleteVideo)
}

func (h *VideoHandler) MakeVideoPaid(c *gin.Context) {
	h.transition(c, h.videoService.MakeVideoPaid)
}

func (h *VideoHandler) MakeVideoFree(c *gin.Context) {
	h.transition(c, h.videoService.MakeVideoFree)
}

func (h *VideoHandler) MakeVideoPrivate(c *gin.Context) {
	h.transition(c, h.videoService.MakeVideoPrivate)
}

func (h *VideoHandler) MakeVideoPublic(c *gin.Context) {
	h.transition(c, h.videoService.MakeVideoPublic)
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	h.transition(c, h.videoService.DeleteVideo)
}

// GenerateUploadToken issues a delegated upload token from the media provider
func (h *VideoHandler) GenerateUploadToken(c *gin.Context) {
	h.results.Query(c, h.videoService.GenerateUploadToken(c.Request.Context()))
}

func (h *VideoHandler) transition(c *gin.Context, op idCommand) {
	id, ok := h.results.pathID(c, "videoId")
	if !ok {
		return
	}
	h.results.Command(c, op(c.Request.Context(), id))
}
