package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, request dto.ListTicketsRequest) ([]*dto.TicketDTO, error) {
	filter := ticket.Filter{
		Status:   vo.Status(request.Status),
		Priority: vo.Priority(request.Priority),
		Category: request.Category,
	}
	if request.Assigned > 0 {
		assigned := request.Assigned
		filter.AssignedTo = &assigned
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return dto.ToTicketDTOs(tickets), nil
}

// GetDashboardUseCase returns the counters and the most recent tickets.
type GetDashboardUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetDashboardUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*dto.DashboardDTO, error) {
	stats, err := uc.ticketRepo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load ticket stats", "error", err)
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	tickets, err := uc.ticketRepo.List(ctx, ticket.Filter{})
	if err != nil {
		uc.logger.Errorw("failed to load recent tickets", "error", err)
		return nil, fmt.Errorf("failed to load recent tickets: %w", err)
	}
	if len(tickets) > constants.RecentTicketsLimit {
		tickets = tickets[:constants.RecentTicketsLimit]
	}

	return &dto.DashboardDTO{
		Stats:         dto.ToStatsDTO(stats),
		RecentTickets: dto.ToTicketDTOs(tickets),
	}, nil
}
