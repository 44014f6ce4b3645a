package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Filter narrows List. Zero-value fields are not applied; the rest are
// combined with AND.
type Filter struct {
	Status     vo.Status
	Priority   vo.Priority
	Category   string
	AssignedTo *int64
}

// Stats counts tickets by status, and open work by priority.
type Stats struct {
	ByStatus   map[vo.Status]int64
	ByPriority map[vo.Priority]int64
}

type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	// GetByID returns (nil, nil) when the ticket does not exist.
	GetByID(ctx context.Context, id int64) (*Ticket, error)
	// List returns matching tickets, newest first.
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
	Update(ctx context.Context, t *Ticket) error
	UpdateStatus(ctx context.Context, id int64, status vo.Status, assignedTo *int64) error
	// Delete removes the ticket and its comments.
	Delete(ctx context.Context, id int64) error

	AddComment(ctx context.Context, c *Comment) error
	// GetComments returns the ticket's comments, oldest first.
	GetComments(ctx context.Context, ticketID int64) ([]*Comment, error)
	// Stats counts by status over all tickets and by priority over tickets
	// that are not closed.
	Stats(ctx context.Context) (*Stats, error)
}
