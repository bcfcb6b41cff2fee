package handler

import (
	"github.com/gin-gonic/gin"

	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/middleware"
	"course-marketplace-api/internal/response"
	"course-marketplace-api/internal/service"
)

type CourseHandler struct {
	courseService service.CourseService
	results       *ResultWriter
}

func NewCourseHandler(courseService service.CourseService, results *ResultWriter) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		results:       results,
	}
}

// GetCourse returns a course with all of its videos
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := h.results.pathID(c, "courseId")
	if !ok {
		return
	}
	h.results.Query(c, h.courseService.GetCourseWithVideos(c.Request.Context(), id))
}

// GetCourseWithPagedVideos returns a course with one page of its videos
func (h *CourseHandler) GetCourseWithPagedVideos(c *gin.Context) {
	id, ok := h.results.pathID(c, "courseId")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !h.results.bindPage(c, &q) {
		return
	}
	h.results.Query(c, h.courseService.GetCourseWithPaginatedVideos(c.Request.Context(), id, q))
}

func (h *CourseHandler) GetCoursesBySkill(c *gin.Context) {
	skillID, ok := h.results.pathID(c, "skillId")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !h.results.bindPage(c, &q) {
		return
	}
	h.results.Query(c, h.courseService.GetCoursesBySkill(c.Request.Context(), skillID, q))
}

func (h *CourseHandler) GetCoursesByCreator(c *gin.Context) {
	creatorID, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !h.results.bindPage(c, &q) {
		return
	}
	h.results.Query(c, h.courseService.GetCoursesByCreator(c.Request.Context(), creatorID, q))
}

// CreateCourse creates a course owned by the caller
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	creatorID, ok := middleware.UserIDFrom(c)
	if !ok {
		h.results.Fail(c, response.NewUnauthorizedError("Authentication required"))
		return
	}
	var req dto.CreateCourseRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.courseService.CreateCourse(c.Request.Context(), &req, creatorID))
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := h.results.pathID(c, "courseId")
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.courseService.UpdateCourse(c.Request.Context(), id, &req))
}

// DeleteCourse soft-deletes the course and its videos
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	h.transition(c, h.courseService.DeleteCourse)
}

func (h *CourseHandler) MakeCoursePaid(c *gin.Context) {
	h.transition(c, h.courseService.MakeCoursePaid)
}

func (h *CourseHandler) MakeCourseFree(c *gin.Context) {
	h.transition(c, h.courseService.MakeCourseFree)
}

func (h *CourseHandler) MakeCoursePrivate(c *gin.Context) {
	h.transition(c, h.courseService.MakeCoursePrivate)
}

func (h *CourseHandler) MakeCoursePublic(c *gin.Context) {
	h.transition(c, h.courseService.MakeCoursePublic)
}

// HardDeleteCourse physically removes the course and its videos
func (h *CourseHandler) HardDeleteCourse(c *gin.Context) {
	h.transition(c, h.courseService.HardDeleteCourse)
}

func (h *CourseHandler) transition(c *gin.Context, op idCommand) {
	id, ok := h.results.pathID(c, "courseId")
	if !ok {
		return
	}
	h.results.Command(c, op(c.Request.Context(), id))
}
