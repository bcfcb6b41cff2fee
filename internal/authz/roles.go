// Package authz decides whether an authenticated caller may act on a resource.
package authz

// Role names known to the identity provider
const (
	RoleAdmin     = "admin"
	RoleStudent   = "student"
	RoleCreator   = "creator"
	RoleModerator = "moderator"
)

// Principal is the authenticated caller
type Principal struct {
	SubjectID string
	Roles     []string
}

// HasRole reports whether the principal holds role
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the principal holds at least one of roles
func (p Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal holds the administrative role
func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}
