package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
)

// PublicRouteConfig holds dependencies for the anonymous ticket routes.
type PublicRouteConfig struct {
	PublicHandler *tickethandlers.PublicHandler
}

// SetupPublicRoutes configures the routes that need no session.
func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	engine.POST("/submit", cfg.PublicHandler.Submit)
	engine.POST("/status", cfg.PublicHandler.CheckStatus)
}
