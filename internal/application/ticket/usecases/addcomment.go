package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddCommentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddCommentUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AddCommentUseCase {
	return &AddCommentUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, ticketID, userID int64, request dto.AddCommentRequest) (int64, error) {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return 0, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return 0, errors.NewNotFoundError("Ticket not found")
	}

	c, err := ticket.NewComment(ticketID, userID, request.Comment)
	if err != nil {
		return 0, errors.NewValidationError("Comment is required")
	}

	if err := uc.ticketRepo.AddComment(ctx, c); err != nil {
		uc.logger.Errorw("failed to add comment", "ticket_id", ticketID, "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to add comment: %w", err)
	}

	uc.logger.Infow("comment added", "ticket_id", ticketID, "comment_id", c.ID(), "user_id", userID)
	return c.ID(), nil
}
