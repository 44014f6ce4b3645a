// Package session keeps server-side login state keyed by an opaque cookie
// value.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"helpdesk/internal/domain/user"
)

const idBytes = 32

// Flash is a one-shot message shown by the next page that reads it.
type Flash struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Data is what the server remembers about a browser session. A zero UserID
// is an anonymous session that only carries a flash.
type Data struct {
	UserID    int64     `json:"user_id"`
	Role      user.Role `json:"role"`
	Flash     *Flash    `json:"flash,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (d *Data) Authenticated() bool {
	return d != nil && d.UserID > 0
}

// TakeFlash returns the pending flash and clears it.
func (d *Data) TakeFlash() *Flash {
	f := d.Flash
	d.Flash = nil
	return f
}

// Store persists session data with a sliding TTL.
type Store interface {
	// Get returns (nil, nil) for unknown or expired ids.
	Get(ctx context.Context, id string) (*Data, error)
	// Save writes data and restarts its TTL.
	Save(ctx context.Context, id string, data *Data) error
	Delete(ctx context.Context, id string) error
}

// NewID returns a random 64-character hex session id.
func NewID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
