package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-marketplace-api/internal/authz"
)

const testSecret = "test-secret"

type fakeIdentity struct {
	roles  map[uuid.UUID][]string
	active map[uuid.UUID]bool
	err    error
}

func (f *fakeIdentity) Identity(ctx context.Context, id uuid.UUID) ([]string, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	roles, ok := f.roles[id]
	if !ok {
		return nil, false, gorm.ErrRecordNotFound
	}
	return roles, f.active[id], nil
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{roles: map[uuid.UUID][]string{}, active: map[uuid.UUID]bool{}}
}

func (f *fakeIdentity) add(id uuid.UUID, active bool, roles ...string) {
	f.roles[id] = roles
	f.active[id] = active
}

func signToken(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func tokenFor(t *testing.T, claim string, subject string) string {
	return signToken(t, jwt.MapClaims{
		claim: subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256, []byte(testSecret))
}

func setupAuthRouter(identity IdentityProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(testSecret, identity, zap.NewNop()))
	router.GET("/me", func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		id, _ := UserIDFrom(c)
		c.JSON(http.StatusOK, gin.H{"subject": p.SubjectID, "roles": p.Roles, "user_id": id.String()})
	})
	return router
}

func doGet(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	return doRequest(router, http.MethodGet, path, token)
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidTokenLoadsPrincipal(t *testing.T) {
	identity := newFakeIdentity()
	userID := uuid.New()
	identity.add(userID, true, authz.RoleCreator)
	router := setupAuthRouter(identity)

	for _, claim := range []string{"user_id", "sub", "uid"} {
		t.Run(claim, func(t *testing.T) {
			w := doGet(router, "/me", tokenFor(t, claim, userID.String()))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), userID.String())
			assert.Contains(t, w.Body.String(), authz.RoleCreator)
		})
	}
}

func TestAuth_Rejections(t *testing.T) {
	identity := newFakeIdentity()
	active := uuid.New()
	inactive := uuid.New()
	identity.add(active, true)
	identity.add(inactive, false)
	router := setupAuthRouter(identity)

	expired := signToken(t, jwt.MapClaims{
		"user_id": active.String(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}, jwt.SigningMethodHS256, []byte(testSecret))
	wrongKey := signToken(t, jwt.MapClaims{"user_id": active.String()}, jwt.SigningMethodHS256, []byte("other"))
	noSubject := signToken(t, jwt.MapClaims{"name": "x"}, jwt.SigningMethodHS256, []byte(testSecret))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + wrongKey, http.StatusUnauthorized},
		{"no subject claim", "Bearer " + noSubject, http.StatusUnauthorized},
		{"subject is not a uuid", "Bearer " + tokenFor(t, "sub", "google-1234"), http.StatusUnauthorized},
		{"unknown user", "Bearer " + tokenFor(t, "user_id", uuid.NewString()), http.StatusUnauthorized},
		{"inactive user", "Bearer " + tokenFor(t, "user_id", inactive.String()), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAuth_IdentityStoreFailure(t *testing.T) {
	identity := newFakeIdentity()
	identity.err = errors.New("connection refused")
	router := setupAuthRouter(identity)

	w := doGet(router, "/me", tokenFor(t, "user_id", uuid.NewString()))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestAuth_IssuerOption(t *testing.T) {
	identity := newFakeIdentity()
	userID := uuid.New()
	identity.add(userID, true)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(testSecret, identity, zap.NewNop(), jwt.WithIssuer("course-marketplace")))
	router.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

	good := signToken(t, jwt.MapClaims{"sub": userID.String(), "iss": "course-marketplace"}, jwt.SigningMethodHS256, []byte(testSecret))
	bad := signToken(t, jwt.MapClaims{"sub": userID.String(), "iss": "someone-else"}, jwt.SigningMethodHS256, []byte(testSecret))

	assert.Equal(t, http.StatusOK, doGet(router, "/me", good).Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "/me", bad).Code)
}
