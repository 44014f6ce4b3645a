package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireStaff())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		tickets.GET("", config.TicketHandler.Dashboard)
		tickets.GET("/list", config.TicketHandler.ListTickets)

		tickets.POST("/:id/update",
			config.TicketHandler.UpdateTicket)
		tickets.POST("/:id/comment",
			config.TicketHandler.AddComment)
		tickets.POST("/:id/status",
			config.TicketHandler.ChangeStatus)

		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.DELETE("/:id",
			config.AuthMiddleware.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}
}
