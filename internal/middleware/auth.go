package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sekawan/membership-backend/internal/common"
	"github.com/sekawan/membership-backend/pkg/jwt"
)

const (
	ctxUserID   = "userID"
	ctxUsername = "username"
)

// JWTAuth verifies the Bearer token and stores the authenticated user's
// identity in the request context
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Missing authorization header", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		claims, err := jwtManager.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, http.StatusUnauthorized, "Token expired", err)
			} else {
				common.ErrorResponse(c, http.StatusUnauthorized, "Invalid token", err)
			}
			c.Abort()
			return
		}

		userID, err := strconv.ParseUint(claims.UserID, 10, 64)
		if err != nil {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid token subject", err)
			c.Abort()
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxUsername, claims.Username)

		c.Next()
	}
}

// GetUserID extracts the authenticated user's ID from the context. Returns 0
// when the request is unauthenticated.
func GetUserID(c *gin.Context) uint64 {
	v, exists := c.Get(ctxUserID)
	if !exists {
		return 0
	}
	if id, ok := v.(uint64); ok {
		return id
	}
	return 0
}

// GetUsername extracts the authenticated username from the context
func GetUsername(c *gin.Context) string {
	v, exists := c.Get(ctxUsername)
	if !exists {
		return ""
	}
	if name, ok := v.(string); ok {
		return name
	}
	return ""
}
