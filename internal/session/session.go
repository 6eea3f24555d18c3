// Package session manages authenticated sessions. A session is created at
// login and destroyed at logout or expiry; it lives in redis under a random
// id with a configurable TTL, and the cookie carries a signed token wrapping
// that id. No other package constructs a Principal.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campussync/internal/apperr"
)

// Role identifies which routing table a principal may use.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

// Principal is the authenticated identity behind one request.
type Principal struct {
	Role Role  `json:"role"`
	ID   int64 `json:"id"`
}

// KV is the key-value store sessions live in. store.Redis satisfies it;
// tests use a map.
type KV interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Del(ctx context.Context, key string) error
}

// Manager creates, resolves and destroys sessions.
type Manager struct {
	kv         KV
	issuer     string
	signingKey string
	ttl        time.Duration
}

// NewManager builds a manager. ttl is the session expiry; it applies to both
// the redis entry and the token embedded in the cookie.
func NewManager(kv KV, issuer, signingKey string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Manager{kv: kv, issuer: issuer, signingKey: signingKey, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Create stores a new session for p and returns the signed cookie value.
func (m *Manager) Create(ctx context.Context, p Principal) (string, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	if err := m.kv.Set(ctx, sessionKey(id), string(payload), m.ttl); err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}
	return signToken(id, m.issuer, m.signingKey, m.ttl)
}

// Lookup resolves a cookie value to its principal. A bad signature, a
// missing redis entry, or an expired session all come back as
// ErrAuthRequired; only a redis outage is reported as ErrStorage.
func (m *Manager) Lookup(ctx context.Context, cookie string) (Principal, error) {
	id, err := parseToken(cookie, m.issuer, m.signingKey)
	if err != nil {
		return Principal{}, apperr.ErrAuthRequired
	}
	payload, ok, err := m.kv.Get(ctx, sessionKey(id))
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}
	if !ok {
		return Principal{}, apperr.ErrAuthRequired
	}
	var p Principal
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return Principal{}, apperr.ErrAuthRequired
	}
	return p, nil
}

// Authorize resolves a cookie value and checks the principal's role. A
// principal with a different role comes back as ErrAuthDenied.
func (m *Manager) Authorize(ctx context.Context, cookie string, role Role) (Principal, error) {
	p, err := m.Lookup(ctx, cookie)
	if err != nil {
		return Principal{}, err
	}
	if p.Role != role {
		return Principal{}, apperr.ErrAuthDenied
	}
	return p, nil
}

// Destroy removes the session behind the cookie. Destroying an already
// expired or unknown session is not an error.
func (m *Manager) Destroy(ctx context.Context, cookie string) error {
	id, err := parseToken(cookie, m.issuer, m.signingKey)
	if err != nil {
		return nil
	}
	if err := m.kv.Del(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}
	return nil
}

func sessionKey(id string) string { return "session:" + id }
