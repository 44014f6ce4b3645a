package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/scheduler"
	"helpdesk/internal/infrastructure/session"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
)

const (
	sessionCleanupInterval = 10 * time.Minute
	dbHealthCheckInterval  = time.Minute
)

// Container holds the infrastructure, repositories, services and handlers of
// the help desk, wires them together and tears them down in Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	store  database.Store
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	svcs  *services
	hdlrs *allHandlers

	// Auth
	hasher         *auth.BcryptPasswordHasher
	enforcer       *permission.Enforcer
	sessionStore   session.Store
	sessions       *middleware.SessionManager
	authMiddleware *middleware.AuthMiddleware

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires every component on top of an open store. The store is
// owned by the caller and is not closed by Shutdown.
func NewContainer(store database.Store, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		store:  store,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - sessions, hashing, access rules
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Repositories and application services
	c.initServices()

	// Section 3: Handlers and middlewares
	c.initHandlers()

	// Section 4: Background jobs
	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// StartScheduler starts the background jobs.
func (c *Container) StartScheduler() {
	c.schedulerManager.Start()
}

// Shutdown stops the background jobs and releases the Redis client.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
