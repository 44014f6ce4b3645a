package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	ticketApp "helpdesk/internal/application/ticket"
	userApp "helpdesk/internal/application/user"
	domainUser "helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/scheduler"
	"helpdesk/internal/infrastructure/session"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

const (
	sessionStoreMemory = "memory"
	sessionStoreRedis  = "redis"

	redisPingTimeout = 3 * time.Second
)

// services holds the application services shared by handlers and middleware.
type services struct {
	userService   *userApp.Service
	ticketService *ticketApp.Service
}

// ============================================================
// Section 1: Infrastructure - sessions, hashing, access rules
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	enforcer, err := permission.NewEnforcer(log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to build access rules: %w", err)
	}
	c.enforcer = enforcer

	c.sessionStore = c.newSessionStore()
	c.sessions = middleware.NewSessionManager(c.sessionStore, cfg.Auth, log.Named("session"))

	return nil
}

// newSessionStore picks the configured session backend. An unreachable Redis
// falls back to the in-process store so the desk stays usable.
func (c *Container) newSessionStore() session.Store {
	cfg := c.cfg
	ttl := cfg.Auth.Session.TTL

	switch cfg.Auth.Session.Store {
	case sessionStoreRedis:
		client, err := initRedis(cfg, c.log)
		if err != nil {
			c.log.Warnw("redis unavailable, using in-memory sessions",
				"addr", cfg.Redis.GetAddr(),
				"error", err,
			)
			return session.NewMemoryStore(ttl)
		}
		c.redis = client
		return session.NewRedisStore(client, cfg.Redis.KeyPrefix, ttl)
	case sessionStoreMemory, "":
		return session.NewMemoryStore(ttl)
	default:
		c.log.Warnw("unknown session store, using in-memory sessions", "store", cfg.Auth.Session.Store)
		return session.NewMemoryStore(ttl)
	}
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, err
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// ============================================================
// Section 2: Repositories and application services
// ============================================================

func (c *Container) initServices() {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories(c.store, log.Named("repository"))

	policy := domainUser.DefaultSecurityPolicy()
	if cfg.Auth.Lockout.MaxLoginAttempts > 0 {
		policy.MaxLoginAttempts = cfg.Auth.Lockout.MaxLoginAttempts
	}
	if cfg.Auth.Lockout.Duration > 0 {
		policy.LockoutDuration = cfg.Auth.Lockout.Duration
	}

	notifier := email.NewNotifier(cfg.Email, cfg.Server.BaseURL, log.Named("email"))

	c.svcs = &services{
		userService: userApp.NewService(c.repos.userRepo, c.hasher, policy, log.Named("user")),
		ticketService: ticketApp.NewService(
			c.repos.ticketRepo,
			c.repos.userRepo,
			markdown.NewRenderer(),
			notifier,
			log.Named("ticket"),
		),
	}
}

// ============================================================
// Section 4: Background jobs
// ============================================================

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	// Redis expires keys on its own; only the in-process store needs sweeping.
	if purger, ok := c.sessionStore.(scheduler.SessionPurger); ok {
		if err := manager.RegisterSessionCleanup(purger, sessionCleanupInterval); err != nil {
			return err
		}
	}
	if err := manager.RegisterDatabaseHealthCheck(c.store, dbHealthCheckInterval); err != nil {
		return err
	}

	c.schedulerManager = manager
	return nil
}
