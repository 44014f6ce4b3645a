package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	adminHandlers "helpdesk/internal/interfaces/http/handlers/admin"
	"helpdesk/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	DashboardHandler *adminHandlers.AdminDashboardHandler
	UserHandler      *handlers.UserHandler
	ProfileHandler   *handlers.ProfileHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupAdminRoutes configures the admin area. Account management beyond the
// listing is reserved for super admins.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("", cfg.DashboardHandler.GetDashboard)

		admin.GET("/profile", cfg.ProfileHandler.GetProfile)
		admin.POST("/profile", cfg.ProfileHandler.UpdateProfile)
		admin.POST("/profile/password", cfg.ProfileHandler.ChangePassword)
	}

	users := admin.Group("/users")
	{
		users.GET("", cfg.UserHandler.ListUsers)

		superAdmin := cfg.AuthMiddleware.RequireSuperAdmin()
		users.POST("", superAdmin, cfg.UserHandler.CreateUser)
		users.GET("/:id", superAdmin, cfg.UserHandler.GetUser)
		users.POST("/:id/edit", superAdmin, cfg.UserHandler.UpdateUser)
		users.POST("/:id/delete", superAdmin, cfg.UserHandler.DeleteUser)
	}
}
