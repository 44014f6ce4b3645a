package ticket

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	domainTicket "helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

// Service orchestrates the ticket use cases for the public and staff
// handlers.
type Service struct {
	submitUC       *usecases.SubmitTicketUseCase
	checkStatusUC  *usecases.CheckStatusUseCase
	getUC          *usecases.GetTicketUseCase
	listUC         *usecases.ListTicketsUseCase
	dashboardUC    *usecases.GetDashboardUseCase
	updateUC       *usecases.UpdateTicketUseCase
	changeStatusUC *usecases.ChangeStatusUseCase
	addCommentUC   *usecases.AddCommentUseCase
	deleteUC       *usecases.DeleteTicketUseCase
}

func NewService(
	ticketRepo domainTicket.Repository,
	users usecases.UserLookup,
	sanitizer usecases.TextSanitizer,
	notifier usecases.SubmitterNotifier,
	logger logger.Interface,
) *Service {
	return &Service{
		submitUC:       usecases.NewSubmitTicketUseCase(ticketRepo, sanitizer, notifier, logger),
		checkStatusUC:  usecases.NewCheckStatusUseCase(ticketRepo, logger),
		getUC:          usecases.NewGetTicketUseCase(ticketRepo, sanitizer, logger),
		listUC:         usecases.NewListTicketsUseCase(ticketRepo, logger),
		dashboardUC:    usecases.NewGetDashboardUseCase(ticketRepo, logger),
		updateUC:       usecases.NewUpdateTicketUseCase(ticketRepo, users, notifier, logger),
		changeStatusUC: usecases.NewChangeStatusUseCase(ticketRepo, users, notifier, logger),
		addCommentUC:   usecases.NewAddCommentUseCase(ticketRepo, logger),
		deleteUC:       usecases.NewDeleteTicketUseCase(ticketRepo, logger),
	}
}

func (s *Service) Submit(ctx context.Context, request dto.SubmitTicketRequest) (*usecases.SubmitTicketResult, error) {
	return s.submitUC.Execute(ctx, request)
}

func (s *Service) CheckStatus(ctx context.Context, request dto.CheckStatusRequest) (*dto.PublicTicketDTO, error) {
	return s.checkStatusUC.Execute(ctx, request)
}

func (s *Service) Get(ctx context.Context, id int64) (*dto.TicketDetailDTO, error) {
	return s.getUC.Execute(ctx, id)
}

func (s *Service) List(ctx context.Context, request dto.ListTicketsRequest) ([]*dto.TicketDTO, error) {
	return s.listUC.Execute(ctx, request)
}

func (s *Service) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	return s.dashboardUC.Execute(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, request dto.UpdateTicketRequest) (*dto.TicketDTO, error) {
	return s.updateUC.Execute(ctx, id, request)
}

func (s *Service) ChangeStatus(ctx context.Context, id int64, request dto.UpdateStatusRequest) error {
	return s.changeStatusUC.Execute(ctx, id, request)
}

func (s *Service) AddComment(ctx context.Context, ticketID, userID int64, request dto.AddCommentRequest) (int64, error) {
	return s.addCommentUC.Execute(ctx, ticketID, userID, request)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.deleteUC.Execute(ctx, id)
}
