package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Gin context keys
	ContextKeyRequestID   = "request_id"
	ContextKeySession     = "session"
	ContextKeySessionID   = "session_id"
	ContextKeyCurrentUser = "current_user"
	ContextKeyUserID      = "user_id"
	ContextKeyUserRole    = "user_role"

	TableUsers          = "users"
	TableTickets        = "tickets"
	TableTicketComments = "ticket_comments"

	LoginPath          = "/auth/login"
	DefaultLandingPath = "/tickets"

	RecentTicketsLimit = 10

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgAccessDenied        = "Access denied. Insufficient permissions."
	ErrMsgAuthorization       = "Authorization error"
)
