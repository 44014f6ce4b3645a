package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ChangeStatusUseCase is the quick status update; it may (re)assign the
// ticket in the same call.
type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	users      UserLookup
	notifier   SubmitterNotifier
	logger     logger.Interface
}

func NewChangeStatusUseCase(ticketRepo ticket.Repository, users UserLookup, notifier SubmitterNotifier, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{ticketRepo: ticketRepo, users: users, notifier: notifier, logger: logger}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, id int64, request dto.UpdateStatusRequest) error {
	status, err := vo.NewStatus(request.Status)
	if err != nil {
		return errors.NewValidationError("Valid status is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return errors.NewNotFoundError("Ticket not found")
	}

	assignedTo := normalizeAssignee(request.AssignedTo)
	if err := ensureAssignable(ctx, uc.users, assignedTo); err != nil {
		return err
	}

	previous := t.Status()
	if err := t.ChangeStatus(status, assignedTo); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.UpdateStatus(ctx, id, status, assignedTo); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to update ticket status", "ticket_id", id, "error", err)
		return fmt.Errorf("failed to update status: %w", err)
	}

	uc.logger.Infow("ticket status changed", "ticket_id", id, "from", previous, "to", status)
	notifyStatusChange(ctx, uc.notifier, uc.logger, t, previous)
	return nil
}
