package storage

import (
	"context"
	"time"
)

// SessionRecord is one persisted sign-in. UserJSON holds the backend user
// as received.
type SessionRecord struct {
	ID        string
	Token     string
	UserJSON  []byte
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store is the persistence contract for sessions and settings.
type Store interface {
	Close() error
	PutSession(ctx context.Context, record SessionRecord) error
	GetSession(ctx context.Context, id string) (SessionRecord, bool, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
	GetSetting(ctx context.Context, key string) (string, bool, error)
	PutSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}
