package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	renderer   TextSanitizer
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, renderer TextSanitizer, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, renderer: renderer, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, id int64) (*dto.TicketDetailDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	comments, err := uc.ticketRepo.GetComments(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get ticket comments", "ticket_id", id, "error", err)
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	html, err := uc.renderer.ToSafeHTML(t.Description())
	if err != nil {
		// plain text still reads fine
		uc.logger.Warnw("failed to render ticket description", "ticket_id", id, "error", err)
		html = ""
	}

	return &dto.TicketDetailDTO{
		Ticket:          dto.ToTicketDTO(t),
		DescriptionHTML: html,
		Comments:        dto.ToCommentDTOs(comments),
	}, nil
}
