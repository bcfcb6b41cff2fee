package handler

import (
	"github.com/gin-gonic/gin"

	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/service"
)

type RoleHandler struct {
	roleService service.RoleService
	results     *ResultWriter
}

func NewRoleHandler(roleService service.RoleService, results *ResultWriter) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
		results:     results,
	}
}

func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req dto.RoleRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.roleService.CreateRole(c.Request.Context(), &req))
}

func (h *RoleHandler) GetRoles(c *gin.Context) {
	h.results.Query(c, h.roleService.GetRoles(c.Request.Context()))
}

func (h *RoleHandler) GetRole(c *gin.Context) {
	id, ok := h.results.pathID(c, "roleId")
	if !ok {
		return
	}
	h.results.Query(c, h.roleService.GetRole(c.Request.Context(), id))
}

func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, ok := h.results.pathID(c, "roleId")
	if !ok {
		return
	}
	var req dto.RoleRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.roleService.UpdateRole(c.Request.Context(), id, &req))
}

func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, ok := h.results.pathID(c, "roleId")
	if !ok {
		return
	}
	h.results.Command(c, h.roleService.DeleteRole(c.Request.Context(), id))
}
