package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// timingEqualizer burns a password comparison for logins that name no
// usable account.
type timingEqualizer interface {
	CompareDummy(password string)
}

type LoginWithPasswordCommand struct {
	Username  string
	Password  string
	IPAddress string
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	policy         *user.SecurityPolicy
	now            func() time.Time
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	policy *user.SecurityPolicy,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	if policy == nil {
		policy = user.DefaultSecurityPolicy()
	}
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		policy:         policy,
		now:            time.Now,
		logger:         logger,
	}
}

// Execute authenticates a staff account. Locked accounts are rejected
// before the password is looked at.
func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*user.User, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if existingUser == nil {
		if eq, ok := uc.passwordHasher.(timingEqualizer); ok {
			eq.CompareDummy(cmd.Password)
		}
		uc.logger.Warnw("login attempt for unknown user", "username", cmd.Username, "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}

	now := uc.now()
	if existingUser.IsLocked(now) {
		uc.logger.Warnw("login attempt for locked account",
			"user_id", existingUser.ID(),
			"locked_until", existingUser.LockedUntil(),
			"ip", cmd.IPAddress,
		)
		return nil, errors.NewAccountLockedError()
	}

	if !uc.passwordHasher.Verify(cmd.Password, existingUser.PasswordHash()) {
		uc.recordFailure(ctx, existingUser, now, cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}

	if existingUser.FailedLoginAttempts() > 0 || existingUser.LockedUntil() != nil {
		if err := uc.userRepo.ResetFailedLogins(ctx, existingUser.ID()); err != nil {
			uc.logger.Warnw("failed to reset failed login counter", "user_id", existingUser.ID(), "error", err)
		}
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID(), "role", existingUser.Role())
	return existingUser, nil
}

// recordFailure bumps the counter and locks the account once it reaches the
// threshold. Storage errors are logged; the caller still gets invalid
// credentials.
func (uc *LoginWithPasswordUseCase) recordFailure(ctx context.Context, u *user.User, now time.Time, ip string) {
	attempts, err := uc.userRepo.IncrementFailedLogins(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to record failed login", "user_id", u.ID(), "error", err)
		return
	}

	uc.logger.Warnw("failed login attempt", "user_id", u.ID(), "attempts", attempts, "ip", ip)

	if !uc.policy.ShouldLock(attempts) {
		return
	}

	until := uc.policy.LockedUntil(now)
	if err := uc.userRepo.Lock(ctx, u.ID(), until); err != nil {
		uc.logger.Errorw("failed to lock account", "user_id", u.ID(), "error", err)
		return
	}
	uc.logger.Warnw("account locked after repeated failed logins", "user_id", u.ID(), "locked_until", until)
}
