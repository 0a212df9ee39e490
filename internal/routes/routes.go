package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sekawan/membership-backend/internal/handler"
	"github.com/sekawan/membership-backend/internal/middleware"
	"github.com/sekawan/membership-backend/internal/service"
	"github.com/sekawan/membership-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	memberHandler *handler.MemberHandler,
	userHandler *handler.UserHandler,
	articleHandler *handler.ArticleHandler,
	dashboardHandler *handler.DashboardHandler,
	referenceHandler *handler.ReferenceHandler,
	jwtManager *jwt.Manager,
	permissions *service.PermissionService,
) {
	api := router.Group("/api/v1")

	// Authentication endpoints (no auth required)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Everything below requires a valid token
	authed := api.Group("", middleware.JWTAuth(jwtManager))

	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/auth/me", authHandler.Me)

	// Member registry. Listings are additionally narrowed server-side by
	// the acting user's branch or region role.
	members := authed.Group("/members")
	members.GET("", middleware.RequirePermission(permissions, "members-list"), memberHandler.List)
	members.GET("/retiring", middleware.RequirePermission(permissions, "members-list"), memberHandler.Retiring)
	members.GET("/:id", middleware.RequirePermission(permissions, "members-list"), memberHandler.Get)
	members.POST("", middleware.RequirePermission(permissions, "members-create"), memberHandler.Create)
	members.PUT("/:id", middleware.RequirePermission(permissions, "members-edit"), memberHandler.Update)
	members.DELETE("/:id", middleware.RequirePermission(permissions, "members-delete"), memberHandler.Delete)

	// Account management (admin)
	users := authed.Group("/users")
	users.GET("", middleware.RequirePermission(permissions, "users-list"), userHandler.List)
	users.GET("/:id", middleware.RequirePermission(permissions, "users-list"), userHandler.Get)
	users.POST("", middleware.RequirePermission(permissions, "users-create"), userHandler.Create)
	users.PUT("/:id", middleware.RequirePermission(permissions, "users-edit"), userHandler.Update)
	users.DELETE("/:id", middleware.RequirePermission(permissions, "users-delete"), userHandler.Delete)

	authed.GET("/roles", middleware.RequirePermission(permissions, "roles-list"), userHandler.Roles)

	// Articles
	articles := authed.Group("/articles")
	articles.GET("", articleHandler.List)
	articles.GET("/:id", articleHandler.Get)
	articles.POST("", middleware.RequirePermission(permissions, "articles-create"), articleHandler.Create)
	articles.PUT("/:id", middleware.RequirePermission(permissions, "articles-edit"), articleHandler.Update)
	articles.DELETE("/:id", middleware.RequirePermission(permissions, "articles-delete"), articleHandler.Delete)

	// Dashboard
	authed.GET("/dashboard", dashboardHandler.Stats)

	// Form dropdown options
	authed.GET("/branches/options", referenceHandler.BranchOptions)
	authed.GET("/regions/options", referenceHandler.RegionOptions)
	authed.GET("/retirement-ages/options", referenceHandler.RetirementAgeOptions)
}
