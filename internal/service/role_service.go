package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-marketplace-api/internal/domain"
	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/repository"
	"course-marketplace-api/internal/response"
)

// RoleService defines the interface for role management
type RoleService interface {
	CreateRole(ctx context.Context, req *dto.RoleRequest) response.Result[*dto.RoleResponse]
	GetRoles(ctx context.Context) response.Result[[]dto.RoleResponse]
	GetRole(ctx context.Context, id uuid.UUID) response.Result[*dto.RoleResponse]
	UpdateRole(ctx context.Context, id uuid.UUID, req *dto.RoleRequest) response.Result[response.Empty]
	DeleteRole(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
}

type roleServiceImpl struct {
	roles  repository.RoleRepository
	logger *zap.Logger
}

// NewRoleService creates a new instance of RoleService
func NewRoleService(repos repository.Repositories, logger *zap.Logger) RoleService {
	return &roleServiceImpl{roles: repos.Roles, logger: logger}
}

func (s *roleServiceImpl) CreateRole(ctx context.Context, req *dto.RoleRequest) response.Result[*dto.RoleResponse] {
	if req == nil {
		return response.Fail[*dto.RoleResponse](response.NewArgumentNullError("Role"))
	}
	if appErr := s.ensureNameFree(ctx, req.Name, uuid.Nil); appErr != nil {
		return response.Fail[*dto.RoleResponse](appErr)
	}

	role := &domain.Role{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: req.Name}
	if err := s.roles.Create(ctx, role); err != nil {
		return response.Fail[*dto.RoleResponse](writeFailure(s.logger, "Role", err))
	}
	resp := toRoleResponse(role)
	return response.Created(&resp)
}

func (s *roleServiceImpl) GetRoles(ctx context.Context) response.Result[[]dto.RoleResponse] {
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		return response.Fail[[]dto.RoleResponse](internalFailure(s.logger, "Failed to list roles", err))
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleResponse(r))
	}
	return response.Ok(out)
}

func (s *roleServiceImpl) GetRole(ctx context.Context, id uuid.UUID) response.Result[*dto.RoleResponse] {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return response.Fail[*dto.RoleResponse](lookupFailure(s.logger, "Role", id, err))
	}
	resp := toRoleResponse(role)
	return response.Ok(&resp)
}

func (s *roleServiceImpl) UpdateRole(ctx context.Context, id uuid.UUID, req *dto.RoleRequest) response.Result[response.Empty] {
	if req == nil {
		return response.Fail[response.Empty](response.NewArgumentNullError("Role"))
	}
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Role", id, err))
	}
	if role.Name == req.Name {
		return response.NotModified()
	}
	if appErr := s.ensureNameFree(ctx, req.Name, id); appErr != nil {
		return response.Fail[response.Empty](appErr)
	}

	role.Name = req.Name
	if err := s.roles.Update(ctx, role); err != nil {
		return response.Fail[response.Empty](writeFailure(s.logger, "Role", err))
	}
	return response.Updated()
}

func (s *roleServiceImpl) DeleteRole(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	if _, err := s.roles.FindByID(ctx, id); err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Role", id, err))
	}
	if err := s.roles.Delete(ctx, id); err != nil {
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to delete role", err))
	}
	return response.Deleted()
}

func (s *roleServiceImpl) ensureNameFree(ctx context.Context, name string, self uuid.UUID) *response.AppError {
	existing, err := s.roles.FindByName(ctx, name)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return internalFailure(s.logger, "Failed to load role", err)
	case existing.ID != self:
		return response.NewConflictError(fmt.Sprintf("Role %s already exists.", name))
	}
	return nil
}

// lookupFailureByName classifies a lookup by name
func lookupFailureByName(logger *zap.Logger, resource, name string, err error) *response.AppError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewAppError(response.ErrCodeNotFound, fmt.Sprintf("%s %s was not found.", resource, name), "")
	}
	return internalFailure(logger, fmt.Sprintf("Failed to load %s", resource), err, zap.String("name", name))
}
