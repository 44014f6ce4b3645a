package middleware

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/session"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// SessionManager binds server-side session data to the request and writes
// the session cookie.
type SessionManager struct {
	store      session.Store
	cookie     config.CookieConfig
	cookieName string
	ttl        time.Duration
	logger     logger.Interface
}

func NewSessionManager(store session.Store, cfg config.AuthConfig, logger logger.Interface) *SessionManager {
	name := cfg.Session.CookieName
	if name == "" {
		name = "helpdesk_session"
	}
	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{
		store:      store,
		cookie:     cfg.Cookie,
		cookieName: name,
		ttl:        ttl,
		logger:     logger,
	}
}

// Load attaches the session named by the cookie, or an empty anonymous one.
// Store failures are logged and the request continues anonymously.
func (m *SessionManager) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := utils.GetSessionCookie(c, m.cookieName)

		var data *session.Data
		if id != "" {
			d, err := m.store.Get(c.Request.Context(), id)
			if err != nil {
				m.logger.Warnw("failed to load session", "error", err)
			}
			data = d
		}
		if data == nil {
			id = ""
			data = &session.Data{}
		}

		m.bind(c, id, data)
		c.Next()
	}
}

func (m *SessionManager) bind(c *gin.Context, id string, data *session.Data) {
	c.Set(constants.ContextKeySession, data)
	c.Set(constants.ContextKeySessionID, id)
	if data.Authenticated() {
		c.Set(constants.ContextKeyUserID, data.UserID)
		c.Set(constants.ContextKeyUserRole, string(data.Role))
	}
}

// GetSession returns the request's session data; never nil once Load ran.
func GetSession(c *gin.Context) *session.Data {
	if v, ok := c.Get(constants.ContextKeySession); ok {
		if d, ok := v.(*session.Data); ok {
			return d
		}
	}
	d := &session.Data{}
	c.Set(constants.ContextKeySession, d)
	return d
}

// Save persists the current session, issuing an id and cookie on first
// write.
func (m *SessionManager) Save(c *gin.Context) error {
	data := GetSession(c)
	id := c.GetString(constants.ContextKeySessionID)
	if id == "" {
		newID, err := session.NewID()
		if err != nil {
			return err
		}
		id = newID
		if data.CreatedAt.IsZero() {
			data.CreatedAt = time.Now().UTC()
		}
	}

	if err := m.store.Save(c.Request.Context(), id, data); err != nil {
		return err
	}
	utils.SetSessionCookie(c, m.cookie, m.cookieName, id, int(m.ttl.Seconds()))
	m.bind(c, id, data)
	return nil
}

// Regenerate replaces the session id while keeping data, so an id fixed
// before login cannot be reused after it.
func (m *SessionManager) Regenerate(c *gin.Context, data *session.Data) error {
	if old := c.GetString(constants.ContextKeySessionID); old != "" {
		if err := m.store.Delete(c.Request.Context(), old); err != nil {
			m.logger.Warnw("failed to delete previous session", "error", err)
		}
	}
	data.CreatedAt = time.Now().UTC()
	c.Set(constants.ContextKeySession, data)
	c.Set(constants.ContextKeySessionID, "")
	return m.Save(c)
}

// Destroy removes the session and its cookie.
func (m *SessionManager) Destroy(c *gin.Context) {
	if id := c.GetString(constants.ContextKeySessionID); id != "" {
		if err := m.store.Delete(c.Request.Context(), id); err != nil {
			m.logger.Warnw("failed to delete session", "error", err)
		}
	}
	utils.ClearSessionCookie(c, m.cookie, m.cookieName)
	c.Set(constants.ContextKeySession, &session.Data{})
	c.Set(constants.ContextKeySessionID, "")
	c.Set(constants.ContextKeyUserID, int64(0))
	c.Set(constants.ContextKeyUserRole, "")
}

// SetFlash stores a one-shot message for the next page.
func (m *SessionManager) SetFlash(c *gin.Context, kind, message string) {
	GetSession(c).Flash = &session.Flash{Type: kind, Message: message}
	if err := m.Save(c); err != nil {
		m.logger.Warnw("failed to save flash message", "error", err)
	}
}

// TakeFlash pops the pending flash, if any.
func (m *SessionManager) TakeFlash(c *gin.Context) *session.Flash {
	data := GetSession(c)
	if data.Flash == nil {
		return nil
	}
	f := data.TakeFlash()
	if c.GetString(constants.ContextKeySessionID) != "" {
		if err := m.Save(c); err != nil {
			m.logger.Warnw("failed to clear flash message", "error", err)
		}
	}
	return f
}

// redirectToLogin sends the browser to the login page, remembering where it
// was going.
func redirectToLogin(c *gin.Context) {
	target := constants.LoginPath + "?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}
