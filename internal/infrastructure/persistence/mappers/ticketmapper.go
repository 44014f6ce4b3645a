package mappers

import (
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/database"
)

// TicketSelect loads tickets with the assignee's display name.
const TicketSelect = `SELECT t.id, t.title, t.description, t.submitter_name, t.submitter_email,
	t.priority, t.category, t.status, t.assigned_to, t.created_at, t.updated_at,
	u.username AS assigned_username, u.first_name AS assigned_first_name, u.last_name AS assigned_last_name
	FROM tickets t
	LEFT JOIN users u ON t.assigned_to = u.id`

// CommentSelect loads comments with the author's display name.
const CommentSelect = `SELECT tc.id, tc.ticket_id, tc.user_id, tc.comment, tc.created_at,
	u.username, u.first_name, u.last_name
	FROM ticket_comments tc
	LEFT JOIN users u ON tc.user_id = u.id`

type TicketMapper interface {
	ToEntity(row database.Row) (*ticket.Ticket, error)
	ToEntities(rows []database.Row) ([]*ticket.Ticket, error)
	ToComment(row database.Row) (*ticket.Comment, error)
	ToComments(rows []database.Row) ([]*ticket.Comment, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToEntity(row database.Row) (*ticket.Ticket, error) {
	if row == nil {
		return nil, nil
	}

	var assignee *ticket.Person
	if row["assigned_username"] != nil {
		assignee = &ticket.Person{
			Username:  row.String("assigned_username"),
			FirstName: row.String("assigned_first_name"),
			LastName:  row.String("assigned_last_name"),
		}
	}

	t, err := ticket.ReconstructTicket(ticket.TicketData{
		ID:             row.Int64("id"),
		Title:          row.String("title"),
		Description:    row.String("description"),
		SubmitterName:  row.String("submitter_name"),
		SubmitterEmail: row.String("submitter_email"),
		Priority:       vo.Priority(row.String("priority")),
		Category:       row.String("category"),
		Status:         vo.Status(row.String("status")),
		AssignedTo:     row.NullInt64("assigned_to"),
		Assignee:       assignee,
		CreatedAt:      row.Time("created_at"),
		UpdatedAt:      row.Time("updated_at"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket row: %w", err)
	}
	return t, nil
}

func (m *ticketMapper) ToEntities(rows []database.Row) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(rows))
	for _, row := range rows {
		t, err := m.ToEntity(row)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (m *ticketMapper) ToComment(row database.Row) (*ticket.Comment, error) {
	var author *ticket.Person
	if row["username"] != nil {
		author = &ticket.Person{
			Username:  row.String("username"),
			FirstName: row.String("first_name"),
			LastName:  row.String("last_name"),
		}
	}

	c, err := ticket.ReconstructComment(
		row.Int64("id"),
		row.Int64("ticket_id"),
		row.Int64("user_id"),
		row.String("comment"),
		author,
		row.Time("created_at"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map comment row: %w", err)
	}
	return c, nil
}

func (m *ticketMapper) ToComments(rows []database.Row) ([]*ticket.Comment, error) {
	comments := make([]*ticket.Comment, 0, len(rows))
	for _, row := range rows {
		c, err := m.ToComment(row)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}
