package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Comment is a staff note on a ticket. Comments are append-only and are
// removed together with their ticket.
type Comment struct {
	id        int64
	ticketID  int64
	userID    int64
	body      string
	author    *Person
	createdAt time.Time
}

func NewComment(ticketID, userID int64, body string) (*Comment, error) {
	if ticketID <= 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID <= 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("comment is required")
	}

	return &Comment{
		ticketID:  ticketID,
		userID:    userID,
		body:      body,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructComment(id, ticketID, userID int64, body string, author *Person, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		body:      body,
		author:    author,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() int64 {
	return c.id
}

func (c *Comment) SetID(id int64) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	c.id = id
	return nil
}

func (c *Comment) TicketID() int64 {
	return c.ticketID
}

func (c *Comment) UserID() int64 {
	return c.userID
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) Author() *Person {
	return c.author
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}
