package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	ticketdto "helpdesk/internal/application/ticket/dto"
	userdto "helpdesk/internal/application/user/dto"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type userLister interface {
	ListUsers(ctx context.Context) ([]*userdto.UserResponse, error)
}

type ticketOverview interface {
	Dashboard(ctx context.Context) (*ticketdto.DashboardDTO, error)
}

// DashboardResponse is the admin landing page: every account plus the
// ticket counters.
type DashboardResponse struct {
	Users         []*userdto.UserResponse `json:"users"`
	ActiveUsers   int                     `json:"active_users"`
	Stats         *ticketdto.StatsDTO     `json:"stats"`
	RecentTickets []*ticketdto.TicketDTO  `json:"recent_tickets"`
}

// AdminDashboardHandler handles the admin dashboard endpoint.
type AdminDashboardHandler struct {
	users   userLister
	tickets ticketOverview
	logger  logger.Interface
}

func NewAdminDashboardHandler(users userLister, tickets ticketOverview, log logger.Interface) *AdminDashboardHandler {
	return &AdminDashboardHandler{
		users:   users,
		tickets: tickets,
		logger:  log,
	}
}

// GetDashboard handles GET /admin
func (h *AdminDashboardHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.users.ListUsers(ctx)
	if err != nil {
		h.logger.Errorw("failed to load users for admin dashboard", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	overview, err := h.tickets.Dashboard(ctx)
	if err != nil {
		h.logger.Errorw("failed to load ticket stats for admin dashboard", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	active := 0
	for _, u := range users {
		if u.Active {
			active++
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", &DashboardResponse{
		Users:         users,
		ActiveUsers:   active,
		Stats:         overview.Stats,
		RecentTickets: overview.RecentTickets,
	})
}
