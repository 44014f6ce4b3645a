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

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	users      UserLookup
	notifier   SubmitterNotifier
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, users UserLookup, notifier SubmitterNotifier, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{ticketRepo: ticketRepo, users: users, notifier: notifier, logger: logger}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, id int64, request dto.UpdateTicketRequest) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", id)

	t, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	priority, err := vo.NewPriority(request.Priority)
	if err != nil {
		return nil, errors.NewValidationError("Valid priority is required")
	}
	status, err := vo.NewStatus(request.Status)
	if err != nil {
		return nil, errors.NewValidationError("Valid status is required")
	}
	assignedTo := normalizeAssignee(request.AssignedTo)
	if err := ensureAssignable(ctx, uc.users, assignedTo); err != nil {
		return nil, err
	}

	previous := t.Status()
	if err := t.Update(request.Title, request.Description, priority, request.Category, status, assignedTo); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update ticket", "ticket_id", id, "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	notifyStatusChange(ctx, uc.notifier, uc.logger, t, previous)
	return dto.ToTicketDTO(t), nil
}

func notifyStatusChange(ctx context.Context, notifier SubmitterNotifier, log logger.Interface, t *ticket.Ticket, previous vo.Status) {
	if notifier == nil || t.Status() == previous {
		return
	}
	goroutine.SafeGo(log, "notify-status-changed", func() {
		if err := notifier.StatusChanged(context.WithoutCancel(ctx), t, previous); err != nil {
			log.Warnw("failed to send status notification", "ticket_id", t.ID(), "error", err)
		}
	})
}
