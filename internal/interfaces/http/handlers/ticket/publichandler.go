package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketdto "helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
	"helpdesk/internal/shared/utils/logutil"
)

// PublicHandler serves the anonymous submission and status pages.
type PublicHandler struct {
	tickets publicTicketService
	logger  logger.Interface
}

func NewPublicHandler(tickets publicTicketService, logger logger.Interface) *PublicHandler {
	return &PublicHandler{tickets: tickets, logger: logger}
}

// Submit handles POST /submit
func (h *PublicHandler) Submit(c *gin.Context) {
	var req ticketdto.SubmitTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}

	result, err := h.tickets.Submit(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("ticket submission failed",
			"submitter", utils.MaskEmail(req.SubmitterEmail),
			"title", logutil.TruncateForLog(req.Title, 60),
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("ticket submitted",
		"ticket_id", result.TicketID,
		"submitter", utils.MaskEmail(req.SubmitterEmail),
		"ip", c.ClientIP())
	utils.CreatedResponse(c, result, result.Message)
}

// CheckStatus handles POST /status. The email must match the submitter's,
// ignoring case.
func (h *PublicHandler) CheckStatus(c *gin.Context) {
	var req ticketdto.CheckStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}

	status, err := h.tickets.CheckStatus(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}
