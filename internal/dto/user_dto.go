package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest represents the request to register a user with an initial role
type CreateUserRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Bio       string `json:"bio" binding:"max=500"`
	Role      string `json:"role,omitempty" binding:"omitempty,max=50"`
}

// UpdateProfileRequest represents the request to update a user's profile
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Bio       string `json:"bio" binding:"max=500"`
}

// RolesRequest represents a set of role names
type RolesRequest struct {
	Roles []string `json:"roles" binding:"required,min=1,dive,required,max=50"`
}

// UserResponse represents the user response
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Bio       string     `json:"bio,omitempty"`
	IsActive  bool       `json:"isActive"`
	Roles     []string   `json:"roles,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// RoleRequest represents the request to create or rename a role
type RoleRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// RoleResponse represents the role response
type RoleResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
