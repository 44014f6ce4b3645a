package http

import (
	"helpdesk/internal/interfaces/http/handlers"
	adminHandlers "helpdesk/internal/interfaces/http/handlers/admin"
	ticketHandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler *handlers.HealthHandler

	// User & Auth
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	profileHandler *handlers.ProfileHandler

	// Ticket
	publicHandler *ticketHandlers.PublicHandler
	ticketHandler *ticketHandlers.TicketHandler

	// Admin
	adminDashboardHandler *adminHandlers.AdminDashboardHandler
}

// ============================================================
// Section 3: Handlers and middlewares
// ============================================================

func (c *Container) initHandlers() {
	log := c.log
	userSvc := c.svcs.userService
	ticketSvc := c.svcs.ticketService

	c.authMiddleware = middleware.NewAuthMiddleware(userSvc, c.enforcer, c.sessions, log.Named("auth"))

	c.hdlrs = &allHandlers{
		healthHandler:         handlers.NewHealthHandler(c.store, log),
		authHandler:           handlers.NewAuthHandler(userSvc, c.sessions, log),
		userHandler:           handlers.NewUserHandler(userSvc, c.sessions, log),
		profileHandler:        handlers.NewProfileHandler(userSvc, c.sessions, log),
		publicHandler:         ticketHandlers.NewPublicHandler(ticketSvc, log),
		ticketHandler:         ticketHandlers.NewTicketHandler(ticketSvc, userSvc, c.sessions, log),
		adminDashboardHandler: adminHandlers.NewAdminDashboardHandler(userSvc, ticketSvc, log),
	}
}
