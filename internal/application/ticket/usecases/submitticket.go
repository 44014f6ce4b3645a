package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

type SubmitTicketResult struct {
	TicketID int64  `json:"ticket_id"`
	Message  string `json:"message"`
}

// SubmitTicketUseCase files a ticket from the public form. Submitted text
// is stripped of markup before it is stored.
type SubmitTicketUseCase struct {
	ticketRepo ticket.Repository
	sanitizer  TextSanitizer
	notifier   SubmitterNotifier
	logger     logger.Interface
}

func NewSubmitTicketUseCase(
	ticketRepo ticket.Repository,
	sanitizer TextSanitizer,
	notifier SubmitterNotifier,
	logger logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ticketRepo: ticketRepo,
		sanitizer:  sanitizer,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, request dto.SubmitTicketRequest) (*SubmitTicketResult, error) {
	priority, err := vo.NewPriority(request.Priority)
	if err != nil {
		return nil, errors.NewValidationError("Valid priority is required")
	}

	newTicket, err := ticket.NewTicket(
		uc.sanitizer.PlainText(request.Title),
		uc.sanitizer.PlainText(request.Description),
		uc.sanitizer.PlainText(request.SubmitterName),
		request.SubmitterEmail,
		priority,
		uc.sanitizer.PlainText(request.Category),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	if uc.notifier != nil {
		goroutine.SafeGo(uc.logger, "notify-ticket-received", func() {
			if err := uc.notifier.TicketReceived(context.WithoutCancel(ctx), newTicket); err != nil {
				uc.logger.Warnw("failed to send ticket confirmation", "ticket_id", newTicket.ID(), "error", err)
			}
		})
	}

	return &SubmitTicketResult{
		TicketID: newTicket.ID(),
		Message:  fmt.Sprintf("Ticket submitted successfully! Your ticket ID is #%d. Please save this number for reference.", newTicket.ID()),
	}, nil
}
