package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// UserHandler is the account administration surface under /admin/users.
type UserHandler struct {
	users    userManager
	sessions *middleware.SessionManager
	logger   logger.Interface
}

func NewUserHandler(users userManager, sessions *middleware.SessionManager, logger logger.Interface) *UserHandler {
	return &UserHandler{
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list users", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", &UserListResponse{
		Users: users,
		Flash: h.sessions.TakeFlash(c),
	})
}

// CreateUser handles POST /admin/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}

	created, err := h.users.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.logger.Warnw("user creation failed", "username", req.Username, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("user created", "user_id", created.ID, "role", created.Role)
	h.sessions.SetFlash(c, "success", "User created successfully")
	utils.CreatedResponse(c, created, "User created successfully")
}

// GetUser handles GET /admin/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "User")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	found, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", found)
}

// UpdateUser handles POST /admin/users/:id/edit
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "User")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}

	updated, err := h.users.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		h.logger.Warnw("user update failed", "user_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.sessions.SetFlash(c, "success", "User updated successfully")
	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", updated)
}

// DeleteUser handles POST /admin/users/:id/delete. Accounts are
// deactivated, never removed.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "User")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		h.logger.Warnw("user deletion failed", "user_id", id, "error", err)
		h.sessions.SetFlash(c, "error", utils.ClientMessage(err, "Error deleting user"))
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("user deactivated", "user_id", id)
	h.sessions.SetFlash(c, "success", "User deleted successfully")
	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}
