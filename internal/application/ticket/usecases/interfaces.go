package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
)

// SubmitterNotifier tells anonymous submitters about their ticket. Calls
// run off the request goroutine.
type SubmitterNotifier interface {
	TicketReceived(ctx context.Context, t *ticket.Ticket) error
	StatusChanged(ctx context.Context, t *ticket.Ticket, previous vo.Status) error
}

// UserLookup resolves assignees; only active users are returned.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// TextSanitizer strips markup from anonymous input and renders stored
// descriptions for staff.
type TextSanitizer interface {
	PlainText(input string) string
	ToSafeHTML(markdown string) (string, error)
}
