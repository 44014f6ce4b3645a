package ticket

import (
	ticketdto "helpdesk/internal/application/ticket/dto"
	userdto "helpdesk/internal/application/user/dto"
	"helpdesk/internal/infrastructure/session"
)

type DashboardResponse struct {
	*ticketdto.DashboardDTO
	Flash *session.Flash `json:"flash,omitempty"`
}

// TicketListResponse echoes the applied filters so the page can keep them
// selected.
type TicketListResponse struct {
	Tickets []*ticketdto.TicketDTO       `json:"tickets"`
	Staff   []*userdto.UserResponse      `json:"staff"`
	Filters ticketdto.ListTicketsRequest `json:"filters"`
}

type TicketDetailResponse struct {
	*ticketdto.TicketDetailDTO
	Staff []*userdto.UserResponse `json:"staff"`
	Flash *session.Flash          `json:"flash,omitempty"`
}

type CommentCreatedResponse struct {
	ID int64 `json:"id"`
}
