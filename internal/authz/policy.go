package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Policy names a fixed authorization rule
type Policy string

const (
	CanManageCourses             Policy = "CanManageCourses"
	CanManageVideos              Policy = "CanManageVideos"
	CanManageReviews             Policy = "CanManageReviews"
	CanManageSkills              Policy = "CanManageSkills"
	CanManageUser                Policy = "CanManageUser"
	CanManageUsersRoles          Policy = "CanManageUsersRoles"
	CanSeeUserPrivateInformation Policy = "CanSeeUserPrivateInformation"
	CanSeeUserPayments           Policy = "CanSeeUserPayments"
	CanCreateNewPaymentsForUser  Policy = "CanCreateNewPaymentsForUser"
)

// ResourceType identifies a family of owned resources
type ResourceType string

const (
	ResourceCourse ResourceType = "course"
	ResourceVideo  ResourceType = "video"
	ResourceReview ResourceType = "review"
	ResourceUser   ResourceType = "user"
)

// ErrUnknownPolicy is returned for a policy outside the closed set
var ErrUnknownPolicy = errors.New("unknown authorization policy")

// OwnerResolver looks up the identity owning a resource.
// A missing resource is reported with found=false and a nil error.
type OwnerResolver interface {
	ResolveOwner(ctx context.Context, id uuid.UUID) (ownerID string, found bool, err error)
}

// OwnerResolverFunc adapts a function to OwnerResolver
type OwnerResolverFunc func(ctx context.Context, id uuid.UUID) (string, bool, error)

// ResolveOwner calls f
func (f OwnerResolverFunc) ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error) {
	return f(ctx, id)
}

// OwnerOrAdmin is the ownership predicate behind every owner-scoped policy:
// admins are allowed, otherwise only a caller matching a resolved owner is allowed.
func OwnerOrAdmin(p Principal, ownerID string, found bool) bool {
	if p.IsAdmin() {
		return true
	}
	return found && p.SubjectID != "" && p.SubjectID == ownerID
}

type rule struct {
	resource ResourceType
	roles    []string
}

// rules maps each policy either to an owned resource family or to a role set
var rules = map[Policy]rule{
	CanManageCourses:             {resource: ResourceCourse},
	CanManageVideos:              {resource: ResourceVideo},
	CanManageReviews:             {resource: ResourceReview},
	CanManageUser:                {resource: ResourceUser},
	CanSeeUserPrivateInformation: {resource: ResourceUser},
	CanSeeUserPayments:           {resource: ResourceUser},
	CanCreateNewPaymentsForUser:  {resource: ResourceUser},
	CanManageSkills:              {roles: []string{RoleAdmin}},
	CanManageUsersRoles:          {roles: []string{RoleAdmin}},
}

// RequiresResource reports whether policy is evaluated against a resource owner
func RequiresResource(policy Policy) bool {
	r, ok := rules[policy]
	return ok && r.resource != ""
}

// Authorizer evaluates policies using one owner resolver per resource family
type Authorizer struct {
	resolvers map[ResourceType]OwnerResolver
}

// NewAuthorizer creates an Authorizer
func NewAuthorizer(resolvers map[ResourceType]OwnerResolver) *Authorizer {
	return &Authorizer{resolvers: resolvers}
}

// Authorize decides whether p may act under policy on the resource with resourceID.
// Role-only policies ignore resourceID. An error is returned only for an unknown policy,
// a missing resolver, or a resolver failure; a missing resource is a denial.
func (a *Authorizer) Authorize(ctx context.Context, p Principal, policy Policy, resourceID uuid.UUID) (bool, error) {
	r, ok := rules[policy]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownPolicy, policy)
	}

	if r.resource == "" {
		return p.HasAnyRole(r.roles...), nil
	}

	if p.IsAdmin() {
		return true, nil
	}

	resolver, ok := a.resolvers[r.resource]
	if !ok {
		return false, fmt.Errorf("no owner resolver registered for %s", r.resource)
	}

	ownerID, found, err := resolver.ResolveOwner(ctx, resourceID)
	if err != nil {
		return false, fmt.Errorf("resolve %s owner: %w", r.resource, err)
	}
	return OwnerOrAdmin(p, ownerID, found), nil
}
