package domain

import "github.com/google/uuid"

// User is a marketplace account. Role memberships live in the user_roles table.
type User struct {
	BaseModel
	Status
	FirstName string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(100);not null" json:"lastName"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	Bio       string `gorm:"type:varchar(500)" json:"bio,omitempty"`
	IsActive  bool   `gorm:"not null;default:true" json:"isActive"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Activate re-enables the account
func (u *User) Activate() bool {
	if u.IsActive {
		return false
	}
	u.IsActive = true
	u.Touch()
	return true
}

// Deactivate disables the account
func (u *User) Deactivate() bool {
	if !u.IsActive {
		return false
	}
	u.IsActive = false
	u.Touch()
	return true
}

// Role is a named group of permissions
type Role struct {
	BaseModel
	Name string `gorm:"type:varchar(50);not null;uniqueIndex:uq_roles_name" json:"name"`
}

// TableName specifies the table name for Role
func (Role) TableName() string {
	return "roles"
}

// UserRole is the membership of a user in a role
type UserRole struct {
	UserID uuid.UUID `gorm:"type:char(36);primaryKey" json:"userId"`
	RoleID uuid.UUID `gorm:"type:char(36);primaryKey;index:idx_user_roles_role_id" json:"roleId"`
}

// TableName specifies the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}
