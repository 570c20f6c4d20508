// Package module defines the feature contract used by storefront composition.
package module

import (
	"context"
	"net/http"

	"github.com/burjmall/storefront/internal/services/storefront/aggregator"
	"github.com/burjmall/storefront/internal/services/storefront/identity"
	"github.com/burjmall/storefront/internal/services/storefront/platform/requestmeta"
	"github.com/burjmall/storefront/internal/services/storefront/session"
	"go.uber.org/zap"
)

// Viewer is the signed-in state shown in the header.
type Viewer struct {
	SignedIn  bool
	FirstName string
	Email     string
}

// ResolveViewer resolves header viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSession returns the live session for a request, if any.
type ResolveSession func(*http.Request) (session.Session, bool)

// FeedLoader loads batches of the merged product feed.
type FeedLoader interface {
	Load(ctx context.Context, cursor aggregator.Cursor) (aggregator.Batch, error)
}

// AuthClient talks to the remote auth backend.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (identity.AuthResult, error)
	Signup(ctx context.Context, input identity.SignupInput) (identity.AuthResult, error)
	Logout(ctx context.Context, token string)
}

// SessionManager persists signed-in sessions.
type SessionManager interface {
	Create(ctx context.Context, user identity.User, token string) (session.Session, error)
	Destroy(ctx context.Context, id string) error
}

// Dependencies carries shared services handed to every module.
type Dependencies struct {
	Feed           FeedLoader
	Auth           AuthClient
	Sessions       SessionManager
	ResolveViewer  ResolveViewer
	ResolveSession ResolveSession
	SchemePolicy   requestmeta.SchemePolicy
	Logger         *zap.Logger
}

// Mount describes a module route mount. Prefix claims a subtree; Paths
// claim exact paths outside it.
type Mount struct {
	Prefix  string
	Paths   []string
	Handler http.Handler
}

// Module declares the minimum contract required by storefront composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
