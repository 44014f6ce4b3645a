package repository

import (
	"context"
	"fmt"
	"strings"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// TicketRepository stores tickets and their comments through the
// backend-neutral Store.
type TicketRepository struct {
	store  database.Store
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(store database.Store, logger logger.Interface) ticket.Repository {
	return &TicketRepository{
		store:  store,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	res, err := r.store.Run(ctx,
		`INSERT INTO tickets (title, description, submitter_name, submitter_email, priority, category, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Title(), t.Description(), t.SubmitterName(), t.SubmitterEmail(),
		t.Priority().String(), t.Category(), t.Status().String(),
	)
	if err != nil {
		r.logger.Errorw("failed to create ticket in database", "submitter_email", t.SubmitterEmail(), "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	if res.LastInsertID == nil {
		return fmt.Errorf("failed to create ticket: no id returned")
	}
	if err := t.SetID(*res.LastInsertID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	r.logger.Infow("ticket created", "id", t.ID(), "priority", t.Priority(), "category", t.Category())
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	row, err := r.store.Get(ctx, mappers.TicketSelect+" WHERE t.id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToEntity(row)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		conds = append(conds, "t.status = ?")
		args = append(args, filter.Status.String())
	}
	if filter.Priority != "" {
		conds = append(conds, "t.priority = ?")
		args = append(args, filter.Priority.String())
	}
	if filter.Category != "" {
		conds = append(conds, "t.category = ?")
		args = append(args, filter.Category)
	}
	if filter.AssignedTo != nil {
		conds = append(conds, "t.assigned_to = ?")
		args = append(args, *filter.AssignedTo)
	}

	query := mappers.TicketSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY t.created_at DESC, t.id DESC"

	rows, err := r.store.All(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	res, err := r.store.Run(ctx,
		`UPDATE tickets
		SET title = ?, description = ?, priority = ?, category = ?, status = ?,
			assigned_to = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		t.Title(), t.Description(), t.Priority().String(), t.Category(), t.Status().String(),
		nullableID(t.AssignedTo()), t.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	if res.RowsAffected == 0 {
		return errors.NewNotFoundError("Ticket not found")
	}
	return nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, id int64, status vo.Status, assignedTo *int64) error {
	res, err := r.store.Run(ctx,
		"UPDATE tickets SET status = ?, assigned_to = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status.String(), nullableID(assignedTo), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update ticket status: %w", err)
	}
	if res.RowsAffected == 0 {
		return errors.NewNotFoundError("Ticket not found")
	}
	return nil
}

// Delete removes the comments before the ticket so backends without
// cascading foreign keys behave the same.
func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.store.Run(ctx, "DELETE FROM ticket_comments WHERE ticket_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete ticket comments: %w", err)
	}

	res, err := r.store.Run(ctx, "DELETE FROM tickets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	if res.RowsAffected == 0 {
		return errors.NewNotFoundError("Ticket not found")
	}

	r.logger.Infow("ticket deleted", "id", id)
	return nil
}

func (r *TicketRepository) AddComment(ctx context.Context, c *ticket.Comment) error {
	res, err := r.store.Run(ctx,
		"INSERT INTO ticket_comments (ticket_id, user_id, comment) VALUES (?, ?, ?)",
		c.TicketID(), c.UserID(), c.Body(),
	)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	if res.LastInsertID == nil {
		return fmt.Errorf("failed to add comment: no id returned")
	}
	if err := c.SetID(*res.LastInsertID); err != nil {
		return fmt.Errorf("failed to set comment ID: %w", err)
	}

	// keep the ticket's updated_at moving with activity
	if _, err := r.store.Run(ctx,
		"UPDATE tickets SET updated_at = CURRENT_TIMESTAMP WHERE id = ?", c.TicketID(),
	); err != nil {
		r.logger.Warnw("failed to touch ticket after comment", "ticket_id", c.TicketID(), "error", err)
	}
	return nil
}

func (r *TicketRepository) GetComments(ctx context.Context, ticketID int64) ([]*ticket.Comment, error) {
	rows, err := r.store.All(ctx,
		mappers.CommentSelect+" WHERE tc.ticket_id = ? ORDER BY tc.created_at ASC, tc.id ASC",
		ticketID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return r.mapper.ToComments(rows)
}

func (r *TicketRepository) Stats(ctx context.Context) (*ticket.Stats, error) {
	stats := &ticket.Stats{
		ByStatus:   make(map[vo.Status]int64),
		ByPriority: make(map[vo.Priority]int64),
	}
	for _, s := range vo.Statuses() {
		stats.ByStatus[s] = 0
	}
	for _, p := range vo.Priorities() {
		stats.ByPriority[p] = 0
	}

	rows, err := r.store.All(ctx, "SELECT status, COUNT(*) AS count FROM tickets GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	for _, row := range rows {
		stats.ByStatus[vo.Status(row.String("status"))] = row.Int64("count")
	}

	rows, err = r.store.All(ctx,
		"SELECT priority, COUNT(*) AS count FROM tickets WHERE status <> ? GROUP BY priority",
		vo.StatusClosed.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by priority: %w", err)
	}
	for _, row := range rows {
		stats.ByPriority[vo.Priority(row.String("priority"))] = row.Int64("count")
	}

	return stats, nil
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
