package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-marketplace-api/internal/authz"
	"course-marketplace-api/internal/response"
)

const (
	contextKeyUserID    = "user_id"
	contextKeyPrincipal = "principal"
	contextKeyToken     = "jwtToken"
)

// IdentityProvider supplies the role set and activation state of a subject.
// An unknown subject is reported with gorm.ErrRecordNotFound.
type IdentityProvider interface {
	Identity(ctx context.Context, id uuid.UUID) (roles []string, active bool, err error)
}

// Auth returns a middleware that validates the bearer token and loads the caller's identity.
// opts tighten token validation, e.g. jwt.WithIssuer.
func Auth(jwtSecret string, identity IdentityProvider, logger *zap.Logger, opts ...jwt.ParserOption) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Invalid authorization header format")
			return
		}
		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		}, opts...)
		if err != nil || !token.Valid {
			unauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "Invalid token claims")
			return
		}

		userIDStr, ok := subjectFromClaims(claims)
		if !ok {
			unauthorized(c, "User ID not found in token")
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			unauthorized(c, "Invalid user ID format")
			return
		}

		roles, active, err := identity.Identity(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				unauthorized(c, "Unknown user")
				return
			}
			logger.Error("Failed to load caller identity", zap.String("user_id", userID.String()), zap.Error(err))
			response.SendAppError(c, http.StatusInternalServerError, response.NewInternalError(err.Error()))
			c.Abort()
			return
		}
		if !active {
			response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "User account is inactive")
			c.Abort()
			return
		}

		c.Set(contextKeyUserID, userID)
		c.Set(contextKeyToken, tokenString)
		c.Set(contextKeyPrincipal, authz.Principal{SubjectID: userID.String(), Roles: roles})

		c.Next()
	}
}

// subjectFromClaims supports the user_id, sub and uid claim names
func subjectFromClaims(claims jwt.MapClaims) (string, bool) {
	for _, key := range []string{"user_id", "sub", "uid"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func unauthorized(c *gin.Context, message string) {
	response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, message)
	c.Abort()
}

// PrincipalFrom returns the authenticated caller stored by Auth
func PrincipalFrom(c *gin.Context) (authz.Principal, bool) {
	v, exists := c.Get(contextKeyPrincipal)
	if !exists {
		return authz.Principal{}, false
	}
	p, ok := v.(authz.Principal)
	return p, ok
}

// UserIDFrom returns the authenticated caller's id stored by Auth
func UserIDFrom(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(contextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
