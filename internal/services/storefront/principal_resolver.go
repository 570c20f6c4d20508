package storefront

import (
	"context"
	"net/http"
	"sync"

	"github.com/burjmall/storefront/internal/platform/logging"
	module "github.com/burjmall/storefront/internal/services/storefront/module"
	"github.com/burjmall/storefront/internal/services/storefront/platform/sessioncookie"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
	"github.com/burjmall/storefront/internal/services/storefront/session"
	"go.uber.org/zap"
)

type requestPrincipalState struct {
	sessionOnce sync.Once
	session     session.Session
	signedIn    bool
	viewerOnce  sync.Once
	viewer      module.Viewer
}

type requestPrincipalStateKey struct{}

// SessionResolver loads a live session by id.
type SessionResolver interface {
	Resolve(ctx context.Context, id string) (session.Session, bool, error)
}

type principalResolver struct {
	sessions SessionResolver
	logger   *zap.Logger
}

func newPrincipalResolver(cfg Config) principalResolver {
	return principalResolver{sessions: cfg.Sessions, logger: cfg.Logger}
}

func (r principalResolver) resolveSessionUncached(req *http.Request) (session.Session, bool) {
	if req == nil || r.sessions == nil {
		return session.Session{}, false
	}
	sessionID, ok := sessioncookie.Read(req)
	if !ok {
		return session.Session{}, false
	}
	sess, ok, err := r.sessions.Resolve(req.Context(), sessionID)
	if err != nil {
		logging.FromContext(req.Context(), r.logger).Warn("resolve session failed", zap.Error(err))
		return session.Session{}, false
	}
	return sess, ok
}

func (r principalResolver) resolveSession(req *http.Request) (session.Session, bool) {
	if state := requestPrincipalStateFromRequest(req); state != nil {
		state.sessionOnce.Do(func() {
			state.session, state.signedIn = r.resolveSessionUncached(req)
		})
		return state.session, state.signedIn
	}
	return r.resolveSessionUncached(req)
}

func (r principalResolver) resolveViewerUncached(req *http.Request) module.Viewer {
	sess, ok := r.resolveSession(req)
	if !ok {
		return module.Viewer{}
	}
	return module.Viewer{
		SignedIn:  true,
		FirstName: sess.User.FirstName(),
		Email:     sess.User.Email,
	}
}

func (r principalResolver) resolveViewer(req *http.Request) module.Viewer {
	if state := requestPrincipalStateFromRequest(req); state != nil {
		state.viewerOnce.Do(func() {
			state.viewer = r.resolveViewerUncached(req)
		})
		return state.viewer
	}
	return r.resolveViewerUncached(req)
}

// requiresOriginProof gates same-origin checks on mutations. A stale
// session cookie still counts so forged logouts are rejected without a store
// lookup. Credential posts are always checked so another site cannot sign a
// visitor into a different account.
func requiresOriginProof(req *http.Request) bool {
	if req == nil {
		return false
	}
	if _, ok := sessioncookie.Read(req); ok {
		return true
	}
	switch req.URL.Path {
	case routepath.Login, routepath.Signup:
		return true
	default:
		return false
	}
}
