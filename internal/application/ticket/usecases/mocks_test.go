package usecases

import (
	"context"
	"sync"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
)

type mockTicketRepository struct {
	CreateFunc       func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc      func(ctx context.Context, id int64) (*ticket.Ticket, error)
	ListFunc         func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
	UpdateFunc       func(ctx context.Context, t *ticket.Ticket) error
	UpdateStatusFunc func(ctx context.Context, id int64, status vo.Status, assignedTo *int64) error
	DeleteFunc       func(ctx context.Context, id int64) error
	AddCommentFunc   func(ctx context.Context, c *ticket.Comment) error
	GetCommentsFunc  func(ctx context.Context, ticketID int64) ([]*ticket.Comment, error)
	StatsFunc        func(ctx context.Context) (*ticket.Stats, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return []*ticket.Ticket{}, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, id int64, status vo.Status, assignedTo *int64) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, assignedTo)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) AddComment(ctx context.Context, c *ticket.Comment) error {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockTicketRepository) GetComments(ctx context.Context, ticketID int64) ([]*ticket.Comment, error) {
	if m.GetCommentsFunc != nil {
		return m.GetCommentsFunc(ctx, ticketID)
	}
	return []*ticket.Comment{}, nil
}

func (m *mockTicketRepository) Stats(ctx context.Context) (*ticket.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &ticket.Stats{ByStatus: map[vo.Status]int64{}, ByPriority: map[vo.Priority]int64{}}, nil
}

type mockUserLookup struct {
	users map[int64]*user.User
}

func (m *mockUserLookup) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return m.users[id], nil
}

// recordingNotifier signals each notification on a channel so tests can
// wait for the background send.
type recordingNotifier struct {
	mu       sync.Mutex
	received []int64
	changed  []vo.Status
	done     chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, 4)}
}

func (n *recordingNotifier) TicketReceived(ctx context.Context, t *ticket.Ticket) error {
	n.mu.Lock()
	n.received = append(n.received, t.ID())
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

func (n *recordingNotifier) StatusChanged(ctx context.Context, t *ticket.Ticket, previous vo.Status) error {
	n.mu.Lock()
	n.changed = append(n.changed, previous)
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

// passthroughSanitizer leaves text as is.
type passthroughSanitizer struct{}

func (passthroughSanitizer) PlainText(s string) string { return s }

func (passthroughSanitizer) ToSafeHTML(s string) (string, error) { return "<p>" + s + "</p>", nil }
