package http

import (
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
)

// SetupRoutes installs the global middleware chain and every route group.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.CustomLogger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log.Named("http")))
	c.engine.Use(c.sessions.Load())
	c.engine.Use(c.authMiddleware.CurrentUser())

	c.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	c.setupPublicRoutes()
	c.setupAuthRoutes()
	c.setupTicketRoutes()
	c.setupAdminRoutes()
}

func (c *Container) setupPublicRoutes() {
	routes.SetupPublicRoutes(c.engine, &routes.PublicRouteConfig{
		PublicHandler: c.hdlrs.publicHandler,
	})
}

func (c *Container) setupAuthRoutes() {
	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
	})
}

func (c *Container) setupTicketRoutes() {
	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:  c.hdlrs.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})
}

func (c *Container) setupAdminRoutes() {
	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		DashboardHandler: c.hdlrs.adminDashboardHandler,
		UserHandler:      c.hdlrs.userHandler,
		ProfileHandler:   c.hdlrs.profileHandler,
		AuthMiddleware:   c.authMiddleware,
	})
}
