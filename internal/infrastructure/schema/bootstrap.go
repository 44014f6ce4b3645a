// Package schema creates the help-desk tables and seeds the first super
// admin. It is safe to run on every start.
package schema

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

const generatedPasswordBytes = 16

type passwordHasher interface {
	Hash(password string) (string, error)
}

// FailedStatement records a bootstrap step that was skipped.
type FailedStatement struct {
	Name string
	Err  error
}

// Report describes what a bootstrap run did. Failures never abort the run.
type Report struct {
	Failed       []FailedStatement
	AdminCreated bool
	// GeneratedPassword is set only when the admin was seeded with a
	// random password.
	GeneratedPassword string
}

func (r *Report) OK() bool {
	return len(r.Failed) == 0
}

type Bootstrapper struct {
	store  database.Store
	hasher passwordHasher
	cfg    config.BootstrapConfig
	logger logger.Interface
}

func NewBootstrapper(store database.Store, hasher passwordHasher, cfg config.BootstrapConfig, log logger.Interface) *Bootstrapper {
	return &Bootstrapper{
		store:  store,
		hasher: hasher,
		cfg:    cfg,
		logger: log,
	}
}

// Run creates missing tables and indexes, then seeds a super admin when
// none exists.
func (b *Bootstrapper) Run(ctx context.Context) *Report {
	report := &Report{}

	backend := b.store.Backend()
	for _, st := range statementsFor(backend) {
		if _, err := b.store.Run(ctx, st.SQL); err != nil {
			b.logger.Errorw("schema statement failed, skipping",
				"statement", st.Name,
				"backend", backend,
				"error", err,
			)
			report.Failed = append(report.Failed, FailedStatement{Name: st.Name, Err: err})
		}
	}

	if err := b.seedAdmin(ctx, report); err != nil {
		b.logger.Errorw("failed to seed default admin, skipping", "error", err)
		report.Failed = append(report.Failed, FailedStatement{Name: "seed_admin", Err: err})
	}

	b.logger.Infow("schema bootstrap finished",
		"backend", backend,
		"failed_statements", len(report.Failed),
		"admin_created", report.AdminCreated,
	)
	return report
}

func (b *Bootstrapper) seedAdmin(ctx context.Context, report *Report) error {
	row, err := b.store.Get(ctx, "SELECT COUNT(*) AS count FROM users WHERE role = ?", user.RoleSuperAdmin.String())
	if err != nil {
		return fmt.Errorf("failed to check for existing super admin: %w", err)
	}
	if row != nil && row.Int64("count") > 0 {
		b.logger.Debugw("super admin already exists, skipping seed")
		return nil
	}

	password := b.cfg.AdminPassword
	generated := password == ""
	if generated {
		password, err = generatePassword()
		if err != nil {
			return err
		}
	}

	hash, err := b.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	username := b.cfg.AdminUsername
	if username == "" {
		username = "admin"
	}
	email := b.cfg.AdminEmail
	if email == "" {
		email = "admin@company.com"
	}

	_, err = b.store.Run(ctx,
		`INSERT INTO users (username, email, password, role, first_name, last_name)
		VALUES (?, ?, ?, ?, ?, ?)`,
		username, email, hash, user.RoleSuperAdmin.String(), "System", "Administrator",
	)
	if err != nil {
		return fmt.Errorf("failed to insert default admin: %w", err)
	}

	report.AdminCreated = true
	if generated {
		report.GeneratedPassword = password
		b.logger.Warnw("default super admin created with a generated password, change it after first login",
			"username", username,
			"password", password,
		)
	} else {
		b.logger.Warnw("default super admin created with the configured password, change it after first login",
			"username", username,
		)
	}
	return nil
}

func generatePassword() (string, error) {
	buf := make([]byte, generatedPasswordBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate admin password: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
