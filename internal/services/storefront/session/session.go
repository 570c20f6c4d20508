// Package session keeps signed-in visitors' backend tokens server-side,
// keyed by an opaque id carried in the session cookie.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/burjmall/storefront/internal/platform/logging"
	"github.com/burjmall/storefront/internal/services/storefront/identity"
	"github.com/burjmall/storefront/internal/services/storefront/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTTL bounds sessions whose token carries no expiry.
const DefaultTTL = 30 * 24 * time.Hour

// Session is a signed-in visitor.
type Session struct {
	ID        string
	Token     string
	User      identity.User
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store is the session subset of the storefront store.
type Store interface {
	PutSession(ctx context.Context, record storage.SessionRecord) error
	GetSession(ctx context.Context, id string) (storage.SessionRecord, bool, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// Manager creates, resolves and destroys sessions.
type Manager struct {
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewManager builds a manager. A non-positive ttl uses DefaultTTL.
func NewManager(store Store, ttl time.Duration, logger *zap.Logger) (*Manager, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, ttl: ttl, now: time.Now, logger: logger}, nil
}

// Create persists a session for user. The session expires with the token's
// exp claim when it has one, else after the manager TTL.
func (m *Manager) Create(ctx context.Context, user identity.User, token string) (Session, error) {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return Session{}, fmt.Errorf("encode session user: %w", err)
	}
	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)
	if exp, ok := identity.TokenExpiry(token); ok {
		expiresAt = exp.UTC()
	}
	sess := Session{
		ID:        uuid.NewString(),
		Token:     strings.TrimSpace(token),
		User:      user,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := m.store.PutSession(ctx, storage.SessionRecord{
		ID:        sess.ID,
		Token:     sess.Token,
		UserJSON:  userJSON,
		CreatedAt: sess.CreatedAt,
		ExpiresAt: sess.ExpiresAt,
	}); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// Resolve loads the live session for id. Expired sessions and sessions
// whose stored user cannot be decoded are deleted and reported as absent.
func (m *Manager) Resolve(ctx context.Context, id string) (Session, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Session{}, false, nil
	}
	record, ok, err := m.store.GetSession(ctx, id)
	if err != nil {
		return Session{}, false, fmt.Errorf("resolve session: %w", err)
	}
	if !ok {
		return Session{}, false, nil
	}
	if !record.ExpiresAt.After(m.now()) {
		m.drop(ctx, id, "expired")
		return Session{}, false, nil
	}
	var user identity.User
	if err := json.Unmarshal(record.UserJSON, &user); err != nil {
		m.drop(ctx, id, "corrupt user")
		return Session{}, false, nil
	}
	return Session{
		ID:        record.ID,
		Token:     record.Token,
		User:      user,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}, true, nil
}

// Destroy deletes the session for id.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	if err := m.store.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// Sweep deletes every expired session and reports how many were removed.
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	n, err := m.store.DeleteExpiredSessions(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	return n, nil
}

// RunSweeper sweeps expired sessions every interval until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := m.Sweep(ctx)
			if err != nil {
				m.logger.Warn("session sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				m.logger.Debug("expired sessions removed", zap.Int64("count", n))
			}
		}
	}
}

func (m *Manager) drop(ctx context.Context, id, reason string) {
	if err := m.store.DeleteSession(ctx, id); err != nil {
		logging.FromContext(ctx, m.logger).Warn("drop session",
			zap.String("reason", reason),
			zap.Error(err),
		)
	}
}
