package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket("Printer down", "Floor 3 printer jams", "Alice", "a@x.com", vo.PriorityHigh, "hardware")
	require.NoError(t, err)

	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Nil(t, tk.AssignedTo())
	assert.Equal(t, int64(0), tk.ID())
	assert.True(t, tk.SubmittedBy("A@X.COM"))
	assert.False(t, tk.SubmittedBy("b@x.com"))
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		desc     string
		email    string
		priority vo.Priority
		category string
		wantErr  string
	}{
		{"missing title", "", "d", "a@x.com", vo.PriorityLow, "hw", "title is required"},
		{"missing description", "t", "  ", "a@x.com", vo.PriorityLow, "hw", "description is required"},
		{"bad email", "t", "d", "nope", vo.PriorityLow, "hw", "valid email is required"},
		{"bad priority", "t", "d", "a@x.com", vo.Priority("critical"), "hw", "invalid priority: critical"},
		{"missing category", "t", "d", "a@x.com", vo.PriorityLow, "", "category is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.title, tt.desc, "Alice", tt.email, tt.priority, tt.category)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk, err := ReconstructTicket(TicketData{
		ID:         1,
		Title:      "VPN",
		Status:     vo.StatusOpen,
		AssignedTo: int64Ptr(2),
		Assignee:   &Person{Username: "jdoe"},
	})
	require.NoError(t, err)

	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress, int64Ptr(2)))
	assert.NotNil(t, tk.Assignee())

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved, int64Ptr(5)))
	assert.Equal(t, int64(5), *tk.AssignedTo())
	assert.Nil(t, tk.Assignee())

	require.NoError(t, tk.ChangeStatus(vo.StatusClosed, nil))
	assert.Nil(t, tk.AssignedTo())

	assert.Error(t, tk.ChangeStatus(vo.Status("pending"), nil))
	assert.Error(t, tk.ChangeStatus(vo.StatusOpen, int64Ptr(0)))
}

func TestNewComment(t *testing.T) {
	c, err := NewComment(1, 2, "  rebooted the spooler ")
	require.NoError(t, err)
	assert.Equal(t, "rebooted the spooler", c.Body())

	_, err = NewComment(1, 2, " ")
	assert.EqualError(t, err, "comment is required")
	_, err = NewComment(0, 2, "x")
	assert.Error(t, err)
}

func int64Ptr(v int64) *int64 {
	return &v
}
