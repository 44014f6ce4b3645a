package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/mapper"
)

type SubmitTicketRequest struct {
	SubmitterName  string `json:"submitter_name" form:"submitter_name" binding:"required,max=100"`
	SubmitterEmail string `json:"submitter_email" form:"submitter_email" binding:"required,email"`
	Title          string `json:"title" form:"title" binding:"required,max=200"`
	Description    string `json:"description" form:"description" binding:"required"`
	Priority       string `json:"priority" form:"priority" binding:"required,oneof=low medium high urgent"`
	Category       string `json:"category" form:"category" binding:"required,max=50"`
}

type CheckStatusRequest struct {
	TicketID int64  `json:"ticket_id" form:"ticket_id" binding:"required,gt=0"`
	Email    string `json:"email" form:"email" binding:"required,email"`
}

// ListTicketsRequest carries the optional list filters. Assigned is a user
// id.
type ListTicketsRequest struct {
	Status   string `json:"status,omitempty" form:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority string `json:"priority,omitempty" form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Category string `json:"category,omitempty" form:"category"`
	Assigned int64  `json:"assigned,omitempty" form:"assigned" binding:"omitempty,gt=0"`
}

type UpdateTicketRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Description string `json:"description" form:"description" binding:"required"`
	Priority    string `json:"priority" form:"priority" binding:"required,oneof=low medium high urgent"`
	Category    string `json:"category" form:"category" binding:"required,max=50"`
	Status      string `json:"status" form:"status" binding:"required,oneof=open in_progress resolved closed"`
	AssignedTo  *int64 `json:"assigned_to" form:"assigned_to"`
}

type UpdateStatusRequest struct {
	Status     string `json:"status" form:"status" binding:"required,oneof=open in_progress resolved closed"`
	AssignedTo *int64 `json:"assigned_to" form:"assigned_to"`
}

type AddCommentRequest struct {
	Comment string `json:"comment" form:"comment" binding:"required"`
}

type PersonDTO struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TicketDTO struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	SubmitterName  string     `json:"submitter_name"`
	SubmitterEmail string     `json:"submitter_email"`
	Priority       string     `json:"priority"`
	Category       string     `json:"category"`
	Status         string     `json:"status"`
	AssignedTo     *int64     `json:"assigned_to"`
	Assignee       *PersonDTO `json:"assignee,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CommentDTO struct {
	ID        int64      `json:"id"`
	TicketID  int64      `json:"ticket_id"`
	UserID    int64      `json:"user_id"`
	Comment   string     `json:"comment"`
	Author    *PersonDTO `json:"author,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TicketDetailDTO is the staff view of one ticket.
type TicketDetailDTO struct {
	Ticket          *TicketDTO    `json:"ticket"`
	DescriptionHTML string        `json:"description_html"`
	Comments        []*CommentDTO `json:"comments"`
}

// PublicTicketDTO is what an anonymous submitter may see about their
// ticket.
type PublicTicketDTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Priority  string    `json:"priority"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Assignee  string    `json:"assignee,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StatsDTO struct {
	ByStatus   map[string]int64 `json:"by_status"`
	ByPriority map[string]int64 `json:"by_priority"`
	Total      int64            `json:"total"`
}

type DashboardDTO struct {
	Stats         *StatsDTO    `json:"stats"`
	RecentTickets []*TicketDTO `json:"recent_tickets"`
}

func toPersonDTO(p *ticket.Person) *PersonDTO {
	if p == nil {
		return nil
	}
	return &PersonDTO{Username: p.Username, FirstName: p.FirstName, LastName: p.LastName}
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:             t.ID(),
		Title:          t.Title(),
		Description:    t.Description(),
		SubmitterName:  t.SubmitterName(),
		SubmitterEmail: t.SubmitterEmail(),
		Priority:       t.Priority().String(),
		Category:       t.Category(),
		Status:         t.Status().String(),
		AssignedTo:     t.AssignedTo(),
		Assignee:       toPersonDTO(t.Assignee()),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	return mapper.MapSlice(tickets, ToTicketDTO)
}

func ToCommentDTOs(comments []*ticket.Comment) []*CommentDTO {
	out := make([]*CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, &CommentDTO{
			ID:        c.ID(),
			TicketID:  c.TicketID(),
			UserID:    c.UserID(),
			Comment:   c.Body(),
			Author:    toPersonDTO(c.Author()),
			CreatedAt: c.CreatedAt(),
		})
	}
	return out
}

func ToPublicTicketDTO(t *ticket.Ticket) *PublicTicketDTO {
	p := &PublicTicketDTO{
		ID:        t.ID(),
		Title:     t.Title(),
		Priority:  t.Priority().String(),
		Category:  t.Category(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
	if a := t.Assignee(); a != nil {
		p.Assignee = a.FirstName + " " + a.LastName
	}
	return p
}

func ToStatsDTO(s *ticket.Stats) *StatsDTO {
	out := &StatsDTO{
		ByStatus:   make(map[string]int64, len(s.ByStatus)),
		ByPriority: make(map[string]int64, len(s.ByPriority)),
	}
	for _, st := range vo.Statuses() {
		n := s.ByStatus[st]
		out.ByStatus[st.String()] = n
		out.Total += n
	}
	for _, p := range vo.Priorities() {
		out.ByPriority[p.String()] = s.ByPriority[p]
	}
	return out
}
