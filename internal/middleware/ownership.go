package middleware

import (
	"net/http"

	"github.com/caffeine-junky/jobconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SelfOrAdmin lets admins through and otherwise requires the caller to have
// role and the id found in the path parameter param.
func SelfOrAdmin(role, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		target, err := uuid.Parse(c.Param(param))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+param)
			c.Abort()
			return
		}

		if !EnsureSelfOrAdmin(c, role, target) {
			c.Abort()
			return
		}
		c.Next()
	}
}

// IsSelfOrAdmin reports whether the caller is an admin or is the user id
// acting under role.
func IsSelfOrAdmin(c *gin.Context, role string, id uuid.UUID) bool {
	callerRole := CurrentRole(c)
	if callerRole == "admin" {
		return true
	}
	userID, ok := CurrentUserID(c)
	return ok && callerRole == role && userID == id
}

// EnsureSelfOrAdmin writes a 403 and returns false when IsSelfOrAdmin fails.
func EnsureSelfOrAdmin(c *gin.Context, role string, id uuid.UUID) bool {
	if IsSelfOrAdmin(c, role, id) {
		return true
	}
	response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only manage your own "+role+" data")
	return false
}
