package http

import (
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo   user.Repository
	ticketRepo ticket.Repository
}

func newRepositories(store database.Store, log logger.Interface) *repositories {
	return &repositories{
		userRepo:   repository.NewUserRepository(store, log),
		ticketRepo: repository.NewTicketRepository(store, log),
	}
}
