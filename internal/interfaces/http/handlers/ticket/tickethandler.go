package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketdto "helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// TicketHandler is the staff console under /tickets.
type TicketHandler struct {
	tickets  ticketService
	staff    staffDirectory
	sessions *middleware.SessionManager
	logger   logger.Interface
}

func NewTicketHandler(
	tickets ticketService,
	staff staffDirectory,
	sessions *middleware.SessionManager,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		tickets:  tickets,
		staff:    staff,
		sessions: sessions,
		logger:   logger,
	}
}

// Dashboard handles GET /tickets
func (h *TicketHandler) Dashboard(c *gin.Context) {
	overview, err := h.tickets.Dashboard(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to load ticket dashboard", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", &DashboardResponse{
		DashboardDTO: overview,
		Flash:        h.sessions.TakeFlash(c),
	})
}

// ListTickets handles GET /tickets/list
func (h *TicketHandler) ListTickets(c *gin.Context) {
	var req ticketdto.ListTicketsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}

	tickets, err := h.tickets.List(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to list tickets", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	staff, err := h.staff.ListStaff(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list staff", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", &TicketListResponse{
		Tickets: tickets,
		Staff:   staff,
		Filters: req,
	})
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.tickets.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	staff, err := h.staff.ListStaff(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list staff", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", &TicketDetailResponse{
		TicketDetailDTO: detail,
		Staff:           staff,
		Flash:           h.sessions.TakeFlash(c),
	})
}

// UpdateTicket handles POST /tickets/:id/update
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ticketdto.UpdateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		verr := utils.ValidationError(err)
		h.sessions.SetFlash(c, "error", utils.ClientMessage(verr, "Error updating ticket"))
		utils.ErrorResponseWithError(c, verr)
		return
	}

	updated, err := h.tickets.Update(c.Request.Context(), id, req)
	if err != nil {
		h.logger.Warnw("ticket update failed", "ticket_id", id, "error", err)
		h.sessions.SetFlash(c, "error", utils.ClientMessage(err, "Error updating ticket"))
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.sessions.SetFlash(c, "success", "Ticket updated successfully")
	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", updated)
}

// AddComment handles POST /tickets/:id/comment
func (h *TicketHandler) AddComment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req ticketdto.AddCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		verr := utils.ValidationError(err)
		h.sessions.SetFlash(c, "error", utils.ClientMessage(verr, "Error adding comment"))
		utils.ErrorResponseWithError(c, verr)
		return
	}

	commentID, err := h.tickets.AddComment(c.Request.Context(), id, userID, req)
	if err != nil {
		h.logger.Warnw("adding comment failed", "ticket_id", id, "user_id", userID, "error", err)
		h.sessions.SetFlash(c, "error", utils.ClientMessage(err, "Error adding comment"))
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.sessions.SetFlash(c, "success", "Comment added successfully")
	utils.CreatedResponse(c, &CommentCreatedResponse{ID: commentID}, "Comment added successfully")
}

// ChangeStatus handles POST /tickets/:id/status. An assignee may be set in
// the same call.
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ticketdto.UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}

	if err := h.tickets.ChangeStatus(c.Request.Context(), id, req); err != nil {
		h.logger.Warnw("status update failed", "ticket_id", id, "status", req.Status, "error", err)
		h.sessions.SetFlash(c, "error", utils.ClientMessage(err, "Error updating status"))
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.sessions.SetFlash(c, "success", "Ticket status updated")
	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", nil)
}

// DeleteTicket handles DELETE /tickets/:id. Comments go with the ticket.
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.tickets.Delete(c.Request.Context(), id); err != nil {
		h.logger.Warnw("ticket deletion failed", "ticket_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.GetUserID(c)
	h.logger.Infow("ticket deleted", "ticket_id", id, "deleted_by", userID)
	h.sessions.SetFlash(c, "success", "Ticket deleted successfully")
	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}
