package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/service"
)

type SkillHandler struct {
	skillService service.SkillService
	results      *ResultWriter
}

func NewSkillHandler(skillService service.SkillService, results *ResultWriter) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
		results:      results,
	}
}

// ListSkills returns a page of skills, or every skill with its courses when includeCourses=true
func (h *SkillHandler) ListSkills(c *gin.Context) {
	if withCourses, _ := strconv.ParseBool(c.Query("includeCourses")); withCourses {
		h.results.Query(c, h.skillService.ListSkillsWithCourses(c.Request.Context()))
		return
	}
	var q dto.PageQuery
	if !h.results.bindPage(c, &q) {
		return
	}
	h.results.Query(c, h.skillService.ListSkills(c.Request.Context(), q))
}

func (h *SkillHandler) GetSkill(c *gin.Context) {
	id, ok := h.results.pathID(c, "skillId")
	if !ok {
		return
	}
	h.results.Query(c, h.skillService.GetSkillWithCourses(c.Request.Context(), id))
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req dto.SkillRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.skillService.CreateSkill(c.Request.Context(), &req))
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, ok := h.results.pathID(c, "skillId")
	if !ok {
		return
	}
	var req dto.SkillRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.skillService.UpdateSkill(c.Request.Context(), id, &req))
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, ok := h.results.pathID(c, "skillId")
	if !ok {
		return
	}
	h.results.Command(c, h.skillService.SoftDeleteSkill(c.Request.Context(), id))
}

// AddCreatorSkills tags the user in the path with skills
func (h *SkillHandler) AddCreatorSkills(c *gin.Context) {
	userID, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	var req dto.AddCreatorSkillsRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.skillService.AddCreatorToSkills(c.Request.Context(), userID, req.SkillIDs))
}

func (h *SkillHandler) GetCreatorSkills(c *gin.Context) {
	userID, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	h.results.Query(c, h.skillService.GetCreatorSkills(c.Request.Context(), userID))
}
