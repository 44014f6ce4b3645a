package ticket

import (
	"context"

	ticketdto "helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	userdto "helpdesk/internal/application/user/dto"
)

// Service interfaces for the ticket handlers - enables unit testing with
// mocks.

type publicTicketService interface {
	Submit(ctx context.Context, request ticketdto.SubmitTicketRequest) (*usecases.SubmitTicketResult, error)
	CheckStatus(ctx context.Context, request ticketdto.CheckStatusRequest) (*ticketdto.PublicTicketDTO, error)
}

type ticketService interface {
	Get(ctx context.Context, id int64) (*ticketdto.TicketDetailDTO, error)
	List(ctx context.Context, request ticketdto.ListTicketsRequest) ([]*ticketdto.TicketDTO, error)
	Dashboard(ctx context.Context) (*ticketdto.DashboardDTO, error)
	Update(ctx context.Context, id int64, request ticketdto.UpdateTicketRequest) (*ticketdto.TicketDTO, error)
	ChangeStatus(ctx context.Context, id int64, request ticketdto.UpdateStatusRequest) error
	AddComment(ctx context.Context, ticketID, userID int64, request ticketdto.AddCommentRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type staffDirectory interface {
	ListStaff(ctx context.Context) ([]*userdto.UserResponse, error)
}
