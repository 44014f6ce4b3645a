package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const errMsgTicketLookup = "Ticket not found or email does not match"

// CheckStatusUseCase lets a submitter look up their ticket by id and
// email. A wrong email and a missing ticket look the same.
type CheckStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCheckStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CheckStatusUseCase {
	return &CheckStatusUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *CheckStatusUseCase) Execute(ctx context.Context, request dto.CheckStatusRequest) (*dto.PublicTicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, request.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket for status check", "ticket_id", request.TicketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil || !t.SubmittedBy(request.Email) {
		return nil, errors.NewNotFoundError(errMsgTicketLookup)
	}
	return dto.ToPublicTicketDTO(t), nil
}
