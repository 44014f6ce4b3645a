package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/infrastructure/session"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	auth     authenticator
	sessions *middleware.SessionManager
	logger   logger.Interface
}

func NewAuthHandler(auth authenticator, sessions *middleware.SessionManager, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		logger:   logger,
	}
}

// LoginPage handles GET /auth/login. Signed-in users are sent to the
// ticket dashboard.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if middleware.GetSession(c).Authenticated() {
		c.Redirect(http.StatusFound, constants.DefaultLandingPath)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", &LoginPageResponse{
		Redirect: utils.LocalRedirect(c.Query("redirect"), constants.DefaultLandingPath),
		Flash:    h.sessions.TakeFlash(c),
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.ValidationError(err))
		return
	}
	if req.Redirect == "" {
		req.Redirect = c.Query("redirect")
	}

	u, err := h.auth.Login(c.Request.Context(), req.Username, req.Password, c.ClientIP())
	if err != nil {
		if errors.ShouldLogAuthError(err) {
			h.logger.Warnw("login rejected", "username", req.Username, "ip", c.ClientIP(), "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.sessions.Regenerate(c, &session.Data{UserID: u.ID(), Role: u.Role()}); err != nil {
		h.logger.Errorw("failed to start session", "user_id", u.ID(), "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("Login failed"))
		return
	}

	h.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role(), "ip", c.ClientIP())
	utils.SuccessResponse(c, http.StatusOK, "Login successful", &LoginResponse{
		User:     dto.ToUserResponse(u),
		Redirect: utils.LocalRedirect(req.Redirect, constants.DefaultLandingPath),
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.GetSession(c).UserID
	h.sessions.Destroy(c)
	if userID > 0 {
		h.logger.Infow("user logged out", "user_id", userID)
	}
	utils.SuccessResponse(c, http.StatusOK, "Logged out", &LogoutResponse{Redirect: "/"})
}
