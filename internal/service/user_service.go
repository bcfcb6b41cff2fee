package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-marketplace-api/internal/authz"
	"course-marketplace-api/internal/domain"
	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/repository"
	"course-marketplace-api/internal/response"
)

// UserService defines the interface for user and role-membership logic
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) response.Result[*dto.UserResponse]
	GetUser(ctx context.Context, id uuid.UUID) response.Result[*dto.UserResponse]
	ListUsers(ctx context.Context, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.UserResponse]]
	UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) response.Result[response.Empty]
	ActivateUser(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	DeactivateUser(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	DeleteUser(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	GetUserRoles(ctx context.Context, id uuid.UUID) response.Result[[]string]
	AssignRoles(ctx context.Context, id uuid.UUID, roles []string) response.Result[response.Empty]
	ReplaceRoles(ctx context.Context, id uuid.UUID, roles []string) response.Result[response.Empty]
	RemoveRole(ctx context.Context, id uuid.UUID, role string) response.Result[response.Empty]
}

type userServiceImpl struct {
	repos  repository.Repositories
	uow    repository.UnitOfWork
	logger *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(repos repository.Repositories, uow repository.UnitOfWork, logger *zap.Logger) UserService {
	return &userServiceImpl{repos: repos, uow: uow, logger: logger}
}

// CreateUser registers a user with one initial role, student when none is given
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) response.Result[*dto.UserResponse] {
	if req == nil {
		return response.Fail[*dto.UserResponse](response.NewArgumentNullError("User"))
	}
	roleName := req.Role
	if roleName == "" {
		roleName = authz.RoleStudent
	}
	roles, appErr := s.resolveRoles(ctx, []string{roleName})
	if appErr != nil {
		return response.Fail[*dto.UserResponse](appErr)
	}

	user := &domain.User{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Status:    domain.NewStatus(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Bio:       req.Bio,
		IsActive:  true,
	}
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		if err := tx.Users.Create(ctx, user); err != nil {
			return err
		}
		return tx.Users.AddRoles(ctx, user.ID, roleIDs(roles))
	})
	if err != nil {
		return response.Fail[*dto.UserResponse](writeFailure(s.logger, "User", err))
	}

	resp := toUserResponse(user, []string{roleName})
	return response.Created(&resp)
}

func (s *userServiceImpl) GetUser(ctx context.Context, id uuid.UUID) response.Result[*dto.UserResponse] {
	user, err := s.repos.Users.FindByID(ctx, id)
	if err != nil {
		return response.Fail[*dto.UserResponse](lookupFailure(s.logger, "User", id, err))
	}
	roles, err := s.repos.Users.FindRoleNames(ctx, id)
	if err != nil {
		return response.Fail[*dto.UserResponse](internalFailure(s.logger, "Failed to load user roles", err))
	}
	resp := toUserResponse(user, roles)
	return response.Ok(&resp)
}

func (s *userServiceImpl) ListUsers(ctx context.Context, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.UserResponse]] {
	users, total, err := s.repos.Users.FindPage(ctx, toPage(q))
	if err != nil {
		return response.Fail[*dto.PagedResponse[dto.UserResponse]](internalFailure(s.logger, "Failed to list users", err))
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u, nil))
	}
	return response.Ok(newPagedResponse(items, q, total))
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) response.Result[response.Empty] {
	if req == nil {
		return response.Fail[response.Empty](response.NewArgumentNullError("User"))
	}
	user, err := s.repos.Users.FindByID(ctx, id)
	if err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "User", id, err))
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Bio = req.Bio
	user.Touch()

	if err := s.repos.Users.Update(ctx, user); err != nil {
		return response.Fail[response.Empty](writeFailure(s.logger, "User", err))
	}
	return response.Updated()
}

func (s *userServiceImpl) ActivateUser(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.toggle(ctx, id, (*domain.User).Activate)
}

func (s *userServiceImpl) DeactivateUser(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	return s.toggle(ctx, id, (*domain.User).Deactivate)
}

func (s *userServiceImpl) toggle(ctx context.Context, id uuid.UUID, apply func(*domain.User) bool) response.Result[response.Empty] {
	user, err := s.repos.Users.FindByID(ctx, id)
	if err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "User", id, err))
	}
	if !apply(user) {
		return response.NotModified()
	}
	if err := s.repos.Users.Update(ctx, user); err != nil {
		return response.Fail[response.Empty](writeFailure(s.logger, "User", err))
	}
	return response.Updated()
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	if _, err := s.repos.Users.FindByID(ctx, id); err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "User", id, err))
	}
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		return tx.Users.Delete(ctx, id)
	})
	if err != nil {
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to delete user", err, zap.String("user_id", id.String())))
	}
	return response.Deleted()
}

func (s *userServiceImpl) GetUserRoles(ctx context.Context, id uuid.UUID) response.Result[[]string] {
	if _, err := s.repos.Users.FindByID(ctx, id); err != nil {
		return response.Fail[[]string](lookupFailure(s.logger, "User", id, err))
	}
	roles, err := s.repos.Users.FindRoleNames(ctx, id)
	if err != nil {
		return response.Fail[[]string](internalFailure(s.logger, "Failed to load user roles", err))
	}
	if roles == nil {
		roles = []string{}
	}
	return response.Ok(roles)
}

func (s *userServiceImpl) AssignRoles(ctx context.Context, id uuid.UUID, names []string) response.Result[response.Empty] {
	return s.writeRoles(ctx, id, names, false)
}

func (s *userServiceImpl) ReplaceRoles(ctx context.Context, id uuid.UUID, names []string) response.Result[response.Empty] {
	return s.writeRoles(ctx, id, names, true)
}

func (s *userServiceImpl) writeRoles(ctx context.Context, id uuid.UUID, names []string, replace bool) response.Result[response.Empty] {
	if len(names) == 0 {
		return response.Fail[response.Empty](fieldError("roles", "At least one role is required."))
	}
	if _, err := s.repos.Users.FindByID(ctx, id); err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "User", id, err))
	}
	roles, appErr := s.resolveRoles(ctx, names)
	if appErr != nil {
		return response.Fail[response.Empty](appErr)
	}

	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		if replace {
			if err := tx.Users.ClearRoles(ctx, id); err != nil {
				return err
			}
		}
		return tx.Users.AddRoles(ctx, id, roleIDs(roles))
	})
	if err != nil {
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to update user roles", err, zap.String("user_id", id.String())))
	}
	return response.Updated()
}

func (s *userServiceImpl) RemoveRole(ctx context.Context, id uuid.UUID, name string) response.Result[response.Empty] {
	if _, err := s.repos.Users.FindByID(ctx, id); err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "User", id, err))
	}
	role, err := s.repos.Roles.FindByName(ctx, name)
	if err != nil {
		return response.Fail[response.Empty](lookupFailureByName(s.logger, "Role", name, err))
	}
	if err := s.repos.Users.RemoveRole(ctx, id, role.ID); err != nil {
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to remove user role", err))
	}
	return response.Deleted()
}

// resolveRoles maps role names to roles. Unknown names are a validation failure.
func (s *userServiceImpl) resolveRoles(ctx context.Context, names []string) ([]*domain.Role, *response.AppError) {
	roles, err := s.repos.Roles.FindByNames(ctx, names)
	if err != nil {
		return nil, internalFailure(s.logger, "Failed to load roles", err)
	}
	known := make(map[string]bool, len(roles))
	for _, r := range roles {
		known[r.Name] = true
	}
	var messages []string
	for _, name := range names {
		if !known[name] {
			messages = append(messages, fmt.Sprintf("Role %s does not exist.", name))
		}
	}
	if len(messages) > 0 {
		return nil, response.NewValidationError(validationFailedMessage, map[string][]string{"roles": messages})
	}
	return roles, nil
}

func roleIDs(roles []*domain.Role) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.ID)
	}
	return ids
}
