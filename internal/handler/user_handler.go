package handler

import (
	"github.com/gin-gonic/gin"

	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/service"
)

type UserHandler struct {
	userService service.UserService
	results     *ResultWriter
}

func NewUserHandler(userService service.UserService, results *ResultWriter) *UserHandler {
	return &UserHandler{
		userService: userService,
		results:     results,
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.userService.CreateUser(c.Request.Context(), &req))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	h.results.Query(c, h.userService.GetUser(c.Request.Context(), id))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var q dto.PageQuery
	if !h.results.bindPage(c, &q) {
		return
	}
	h.results.Query(c, h.userService.ListUsers(c.Request.Context(), q))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.userService.UpdateProfile(c.Request.Context(), id, &req))
}

func (h *UserHandler) ActivateUser(c *gin.Context) {
	h.byID(c, h.userService.ActivateUser)
}

func (h *UserHandler) DeactivateUser(c *gin.Context) {
	h.byID(c, h.userService.DeactivateUser)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	h.byID(c, h.userService.DeleteUser)
}

func (h *UserHandler) GetUserRoles(c *gin.Context) {
	id, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	h.results.Query(c, h.userService.GetUserRoles(c.Request.Context(), id))
}

// AssignRoles adds roles to the user, keeping the ones already held
func (h *UserHandler) AssignRoles(c *gin.Context) {
	id, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	var req dto.RolesRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.userService.AssignRoles(c.Request.Context(), id, req.Roles))
}

// ReplaceRoles sets the user's roles to exactly the given set
func (h *UserHandler) ReplaceRoles(c *gin.Context) {
	id, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	var req dto.RolesRequest
	if !h.results.bindJSON(c, &req) {
		return
	}
	h.results.Command(c, h.userService.ReplaceRoles(c.Request.Context(), id, req.Roles))
}

func (h *UserHandler) RemoveRole(c *gin.Context) {
	id, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	h.results.Command(c, h.userService.RemoveRole(c.Request.Context(), id, c.Param("roleName")))
}

func (h *UserHandler) byID(c *gin.Context, op idCommand) {
	id, ok := h.results.pathID(c, "userId")
	if !ok {
		return
	}
	h.results.Command(c, op(c.Request.Context(), id))
}
