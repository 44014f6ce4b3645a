package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// UserFinder loads active users by id.
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
}

// AccessChecker decides whether a role may enter an area.
type AccessChecker interface {
	CanAccess(role user.Role, area permission.Area) (bool, error)
}

// AuthMiddleware is the session authorization gate.
type AuthMiddleware struct {
	users    UserFinder
	access   AccessChecker
	sessions *SessionManager
	logger   logger.Interface
}

func NewAuthMiddleware(users UserFinder, access AccessChecker, sessions *SessionManager, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		users:    users,
		access:   access,
		sessions: sessions,
		logger:   logger,
	}
}

// CurrentUser attaches the signed-in user, if any. Lookup failures are
// logged and the request continues; gates decide what to do.
func (m *AuthMiddleware) CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		data := GetSession(c)
		if data.Authenticated() {
			u, err := m.users.FindByID(c.Request.Context(), data.UserID)
			if err != nil {
				m.logger.Warnw("failed to load current user", "user_id", data.UserID, "error", err)
			} else if u != nil {
				c.Set(constants.ContextKeyCurrentUser, u)
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return m.requireArea(permission.AreaTickets)
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.requireArea(permission.AreaAdmin)
}

func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return m.requireArea(permission.AreaUserAdmin)
}

// requireArea admits the request when the session's user is active and
// their current role may enter area. The role is read from the user
// record, not the session, so demotions apply immediately.
func (m *AuthMiddleware) requireArea(area permission.Area) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := GetSession(c)
		if !data.Authenticated() {
			redirectToLogin(c)
			return
		}

		u := GetCurrentUser(c)
		if u == nil {
			found, err := m.users.FindByID(c.Request.Context(), data.UserID)
			if err != nil {
				m.logger.Errorw("authorization lookup failed", "user_id", data.UserID, "error", err)
				utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgAuthorization)
				c.Abort()
				return
			}
			u = found
		}
		if u == nil {
			m.logger.Warnw("session references missing or inactive user", "user_id", data.UserID)
			m.sessions.Destroy(c)
			redirectToLogin(c)
			return
		}

		allowed, err := m.access.CanAccess(u.Role(), area)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgAuthorization)
			c.Abort()
			return
		}
		if !allowed {
			m.logger.Warnw("access denied", "user_id", u.ID(), "role", u.Role(), "area", area, "path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, errors.NewForbiddenError(constants.ErrMsgAccessDenied))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCurrentUser, u)
		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyUserRole, string(u.Role()))
		c.Next()
	}
}

// GetCurrentUser returns the user attached by CurrentUser or a gate.
func GetCurrentUser(c *gin.Context) *user.User {
	if v, ok := c.Get(constants.ContextKeyCurrentUser); ok {
		if u, ok := v.(*user.User); ok {
			return u
		}
	}
	return nil
}

// GetUserID returns the authenticated user's id set by the session loader
// or a gate.
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}
