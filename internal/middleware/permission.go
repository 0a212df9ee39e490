package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekawan/membership-backend/internal/common"
	"github.com/sekawan/membership-backend/internal/service"
	"github.com/sekawan/membership-backend/pkg/logger"
)

// RequirePermission gates an endpoint behind a named permission. Must run
// after JWTAuth.
func RequirePermission(permissions *service.PermissionService, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == 0 {
			common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}

		ok, err := permissions.Has(c.Request.Context(), userID, permission)
		if err != nil {
			logger.Get().Error().Err(err).Uint64("user_id", userID).Str("permission", permission).Msg("permission check failed")
			common.ErrorResponse(c, http.StatusInternalServerError, "Permission check failed", err)
			c.Abort()
			return
		}
		if !ok {
			common.ErrorResponse(c, http.StatusForbidden, "Forbidden", common.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
