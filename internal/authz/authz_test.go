package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func principal(subject string, roles ...string) Principal {
	return Principal{SubjectID: subject, Roles: roles}
}

func TestOwnerOrAdmin_Table(t *testing.T) {
	owner := uuid.NewString()
	other := uuid.NewString()

	tests := []struct {
		name    string
		p       Principal
		ownerID string
		found   bool
		want    bool
	}{
		{"admin owner", principal(owner, RoleAdmin), owner, true, true},
		{"admin not owner", principal(other, RoleAdmin), owner, true, true},
		{"admin with missing resource", principal(other, RoleAdmin), "", false, true},
		{"owner", principal(owner, RoleCreator), owner, true, true},
		{"not owner", principal(other, RoleCreator), owner, true, false},
		{"missing resource denies non-admin", principal(other, RoleCreator), "", false, false},
		{"missing resource with stale owner id denies", principal(owner), owner, false, false},
		{"empty subject never matches", principal(""), "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OwnerOrAdmin(tt.p, tt.ownerID, tt.found))
		})
	}
}

// Property: the decision is defined for every admin x owner x resolution combination
func TestProperty_OwnerOrAdminTotality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("allow iff admin, or resolved owner equals caller", prop.ForAll(
		func(isAdmin, isOwner, absent bool) bool {
			caller := uuid.NewString()
			ownerID := uuid.NewString()
			if isOwner {
				ownerID = caller
			}
			p := principal(caller, RoleStudent)
			if isAdmin {
				p.Roles = append(p.Roles, RoleAdmin)
			}

			got := OwnerOrAdmin(p, ownerID, !absent)

			want := isAdmin || (!absent && isOwner)
			return got == want
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

type stubResolver struct {
	owner string
	found bool
	err   error
	calls int
}

func (s *stubResolver) ResolveOwner(ctx context.Context, id uuid.UUID) (string, bool, error) {
	s.calls++
	return s.owner, s.found, s.err
}

func TestAuthorizer_OwnershipPolicies(t *testing.T) {
	u1 := uuid.NewString()
	u2 := uuid.NewString()
	u3 := uuid.NewString()
	courses := &stubResolver{owner: u1, found: true}
	authorizer := NewAuthorizer(map[ResourceType]OwnerResolver{ResourceCourse: courses})
	ctx := context.Background()
	courseID := uuid.New()

	allowed, err := authorizer.Authorize(ctx, principal(u1, RoleCreator), CanManageCourses, courseID)
	require.NoError(t, err)
	assert.True(t, allowed, "owner is allowed")

	allowed, err = authorizer.Authorize(ctx, principal(u2, RoleCreator), CanManageCourses, courseID)
	require.NoError(t, err)
	assert.False(t, allowed, "non-owner is denied")

	callsBefore := courses.calls
	allowed, err = authorizer.Authorize(ctx, principal(u3, RoleAdmin), CanManageCourses, courseID)
	require.NoError(t, err)
	assert.True(t, allowed, "admin is allowed regardless of ownership")
	assert.Equal(t, callsBefore, courses.calls, "admin bypass skips owner resolution")
}

func TestAuthorizer_MissingResource(t *testing.T) {
	reviews := &stubResolver{found: false}
	authorizer := NewAuthorizer(map[ResourceType]OwnerResolver{ResourceReview: reviews})

	allowed, err := authorizer.Authorize(context.Background(), principal(uuid.NewString()), CanManageReviews, uuid.New())
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = authorizer.Authorize(context.Background(), principal(uuid.NewString(), RoleAdmin), CanManageReviews, uuid.New())
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAuthorizer_ResolverFailure(t *testing.T) {
	storeErr := errors.New("connection reset")
	videos := &stubResolver{err: storeErr}
	authorizer := NewAuthorizer(map[ResourceType]OwnerResolver{ResourceVideo: videos})

	allowed, err := authorizer.Authorize(context.Background(), principal(uuid.NewString()), CanManageVideos, uuid.New())
	assert.False(t, allowed)
	assert.ErrorIs(t, err, storeErr)
}

func TestAuthorizer_RoleOnlyPolicies(t *testing.T) {
	authorizer := NewAuthorizer(nil)
	ctx := context.Background()

	allowed, err := authorizer.Authorize(ctx, principal(uuid.NewString(), RoleAdmin), CanManageSkills, uuid.Nil)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = authorizer.Authorize(ctx, principal(uuid.NewString(), RoleCreator, RoleModerator), CanManageUsersRoles, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, allowed, "role-only gate denies anyone lacking the role")
}

func TestAuthorizer_UnknownPolicy(t *testing.T) {
	authorizer := NewAuthorizer(nil)

	allowed, err := authorizer.Authorize(context.Background(), principal("x", RoleAdmin), Policy("CanDoAnything"), uuid.New())
	assert.False(t, allowed)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestAuthorizer_UserPoliciesUseUserResolver(t *testing.T) {
	userID := uuid.New()
	users := OwnerResolverFunc(func(ctx context.Context, id uuid.UUID) (string, bool, error) {
		return id.String(), id == userID, nil
	})
	authorizer := NewAuthorizer(map[ResourceType]OwnerResolver{ResourceUser: users})

	for _, policy := range []Policy{CanManageUser, CanSeeUserPrivateInformation, CanSeeUserPayments, CanCreateNewPaymentsForUser} {
		allowed, err := authorizer.Authorize(context.Background(), principal(userID.String()), policy, userID)
		require.NoError(t, err)
		assert.True(t, allowed, "%s allows the user themself", policy)

		allowed, err = authorizer.Authorize(context.Background(), principal(uuid.NewString()), policy, userID)
		require.NoError(t, err)
		assert.False(t, allowed, "%s denies other users", policy)
	}
}

func TestRequiresResource(t *testing.T) {
	assert.True(t, RequiresResource(CanManageCourses))
	assert.False(t, RequiresResource(CanManageSkills))
	assert.False(t, RequiresResource(Policy("nope")))
}
