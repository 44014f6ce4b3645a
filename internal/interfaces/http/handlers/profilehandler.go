package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// ProfileHandler serves the signed-in admin's own account.
type ProfileHandler struct {
	users    profileManager
	sessions *middleware.SessionManager
	logger   logger.Interface
}

func NewProfileHandler(users profileManager, sessions *middleware.SessionManager, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

// GetProfile handles GET /admin/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", &ProfileResponse{
		User:  profile,
		Flash: h.sessions.TakeFlash(c),
	})
}

// UpdateProfile handles POST /admin/profile. Role and active flag are not
// editable here.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}

	profile, err := h.users.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Warnw("profile update failed", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.sessions.SetFlash(c, "success", "Profile updated successfully")
	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", profile)
}

// ChangePassword handles POST /admin/profile/password
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.logger.Warnw("password change failed", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("password changed", "user_id", userID)
	h.sessions.SetFlash(c, "success", "Password changed successfully")
	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
