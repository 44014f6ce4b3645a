package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "helpdesk/internal/application/ticket/dto"
	userdto "helpdesk/internal/application/user/dto"
	"helpdesk/internal/interfaces/http/handlers/testutil"
)

type stubUsers struct {
	users []*userdto.UserResponse
	err   error
}

func (s *stubUsers) ListUsers(ctx context.Context) ([]*userdto.UserResponse, error) {
	return s.users, s.err
}

type stubTickets struct {
	dashboard *ticketdto.DashboardDTO
	err       error
}

func (s *stubTickets) Dashboard(ctx context.Context) (*ticketdto.DashboardDTO, error) {
	return s.dashboard, s.err
}

func TestGetDashboard(t *testing.T) {
	users := &stubUsers{users: []*userdto.UserResponse{
		{ID: 1, Username: "admin", Active: true},
		{ID: 2, Username: "gone", Active: false},
	}}
	tickets := &stubTickets{dashboard: &ticketdto.DashboardDTO{
		Stats:         &ticketdto.StatsDTO{ByStatus: map[string]int64{"open": 3}, Total: 3},
		RecentTickets: []*ticketdto.TicketDTO{{ID: 9, Title: "Printer down"}},
	}}
	h := NewAdminDashboardHandler(users, tickets, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/admin", nil)
	h.GetDashboard(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data DashboardResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Len(t, data.Users, 2)
	assert.Equal(t, 1, data.ActiveUsers)
	assert.Equal(t, int64(3), data.Stats.Total)
	assert.Equal(t, "Printer down", data.RecentTickets[0].Title)
}

func TestGetDashboard_StatsFailure(t *testing.T) {
	h := NewAdminDashboardHandler(&stubUsers{}, &stubTickets{err: fmt.Errorf("failed to get ticket stats: boom")}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/admin", nil)
	h.GetDashboard(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}
