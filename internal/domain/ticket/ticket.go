package ticket

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Person is the display name of a user joined onto a ticket or comment.
type Person struct {
	Username  string
	FirstName string
	LastName  string
}

// Ticket is a support request. Tickets are submitted anonymously; the
// submitter is identified only by name and email.
type Ticket struct {
	id             int64
	title          string
	description    string
	submitterName  string
	submitterEmail string
	priority       vo.Priority
	category       string
	status         vo.Status
	assignedTo     *int64
	assignee       *Person
	createdAt      time.Time
	updatedAt      time.Time
}

// NewTicket builds an open, unassigned ticket.
func NewTicket(title, description, submitterName, submitterEmail string, priority vo.Priority, category string) (*Ticket, error) {
	submitterName = strings.TrimSpace(submitterName)
	submitterEmail = strings.TrimSpace(submitterEmail)

	if submitterName == "" {
		return nil, fmt.Errorf("name is required")
	}
	if _, err := mail.ParseAddress(submitterEmail); err != nil {
		return nil, fmt.Errorf("valid email is required")
	}

	now := time.Now().UTC()
	t := &Ticket{
		submitterName:  submitterName,
		submitterEmail: submitterEmail,
		status:         vo.StatusOpen,
		createdAt:      now,
		updatedAt:      now,
	}
	if err := t.setContent(title, description, priority, category); err != nil {
		return nil, err
	}
	return t, nil
}

type TicketData struct {
	ID             int64
	Title          string
	Description    string
	SubmitterName  string
	SubmitterEmail string
	Priority       vo.Priority
	Category       string
	Status         vo.Status
	AssignedTo     *int64
	Assignee       *Person
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructTicket(d TicketData) (*Ticket, error) {
	if d.ID == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	return &Ticket{
		id:             d.ID,
		title:          d.Title,
		description:    d.Description,
		submitterName:  d.SubmitterName,
		submitterEmail: d.SubmitterEmail,
		priority:       d.Priority,
		category:       d.Category,
		status:         d.Status,
		assignedTo:     d.AssignedTo,
		assignee:       d.Assignee,
		createdAt:      d.CreatedAt,
		updatedAt:      d.UpdatedAt,
	}, nil
}

func (t *Ticket) ID() int64 {
	return t.id
}

func (t *Ticket) SetID(id int64) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) SubmitterName() string {
	return t.submitterName
}

func (t *Ticket) SubmitterEmail() string {
	return t.submitterEmail
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) AssignedTo() *int64 {
	return t.assignedTo
}

// Assignee is only populated on tickets loaded from the repository.
func (t *Ticket) Assignee() *Person {
	return t.assignee
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// SubmittedBy compares the submitter email case-insensitively.
func (t *Ticket) SubmittedBy(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), t.submitterEmail)
}

// Update replaces the staff-editable fields.
func (t *Ticket) Update(title, description string, priority vo.Priority, category string, status vo.Status, assignedTo *int64) error {
	if err := t.setContent(title, description, priority, category); err != nil {
		return err
	}
	return t.ChangeStatus(status, assignedTo)
}

// ChangeStatus sets the status and replaces the assignee; nil unassigns.
func (t *Ticket) ChangeStatus(status vo.Status, assignedTo *int64) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	if assignedTo != nil && *assignedTo <= 0 {
		return fmt.Errorf("invalid assignee: %d", *assignedTo)
	}
	if !sameAssignee(t.assignedTo, assignedTo) {
		t.assignee = nil
	}
	t.status = status
	t.assignedTo = assignedTo
	t.updatedAt = time.Now().UTC()
	return nil
}

func (t *Ticket) setContent(title, description string, priority vo.Priority, category string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)

	if title == "" {
		return fmt.Errorf("title is required")
	}
	if description == "" {
		return fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	if category == "" {
		return fmt.Errorf("category is required")
	}

	t.title = title
	t.description = description
	t.priority = priority
	t.category = category
	return nil
}

func sameAssignee(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
