package user

import "time"

// SecurityPolicy holds the login lockout rules.
type SecurityPolicy struct {
	MaxLoginAttempts int
	LockoutDuration  time.Duration
}

func DefaultSecurityPolicy() *SecurityPolicy {
	return &SecurityPolicy{
		MaxLoginAttempts: 5,
		LockoutDuration:  15 * time.Minute,
	}
}

// ShouldLock reports whether failedAttempts consecutive failures reach the
// lockout threshold.
func (p *SecurityPolicy) ShouldLock(failedAttempts int) bool {
	return p.MaxLoginAttempts > 0 && failedAttempts >= p.MaxLoginAttempts
}

func (p *SecurityPolicy) LockedUntil(now time.Time) time.Time {
	return now.Add(p.LockoutDuration).UTC()
}
