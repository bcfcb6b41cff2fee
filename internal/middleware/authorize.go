package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-marketplace-api/internal/authz"
	"course-marketplace-api/internal/response"
)

// RequireRoles rejects callers holding none of roles. Must run after Auth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			unauthorized(c, "Authentication required")
			return
		}
		if !p.HasAnyRole(roles...) {
			response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "Insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePolicy evaluates policy for the resource whose id is in the path parameter param.
// Role-only policies ignore param. Must run after Auth.
func RequirePolicy(authorizer *authz.Authorizer, policy authz.Policy, param string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			unauthorized(c, "Authentication required")
			return
		}

		resourceID := uuid.Nil
		if authz.RequiresResource(policy) {
			id, err := uuid.Parse(c.Param(param))
			if err != nil {
				response.SendError(c, http.StatusBadRequest, response.ErrCodeBadRequest, "Invalid "+param)
				c.Abort()
				return
			}
			resourceID = id
		}

		allowed, err := authorizer.Authorize(c.Request.Context(), p, policy, resourceID)
		if err != nil {
			logger.Error("Authorization check failed",
				zap.String("policy", string(policy)),
				zap.String("resource_id", resourceID.String()),
				zap.Error(err))
			response.SendAppError(c, http.StatusInternalServerError, response.NewInternalError(err.Error()))
			c.Abort()
			return
		}
		if !allowed {
			response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "You are not allowed to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}
