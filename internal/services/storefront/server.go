// Package storefront hosts the BurjMall browser-facing service.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/burjmall/storefront/internal/platform/telemetry/metrics"
	"github.com/burjmall/storefront/internal/platform/timeouts"
	storefrontapp "github.com/burjmall/storefront/internal/services/storefront/app"
	module "github.com/burjmall/storefront/internal/services/storefront/module"
	"github.com/burjmall/storefront/internal/services/storefront/modules"
	"github.com/burjmall/storefront/internal/services/storefront/platform/httpx"
	"github.com/burjmall/storefront/internal/services/storefront/platform/observability"
	"github.com/burjmall/storefront/internal/services/storefront/platform/requestmeta"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
	storefrontstatic "github.com/burjmall/storefront/internal/services/storefront/static"
	"go.uber.org/zap"
)

// Sessions creates, resolves and destroys shopper sessions.
type Sessions interface {
	module.SessionManager
	SessionResolver
}

// Config defines startup inputs for the storefront service.
type Config struct {
	HTTPAddr     string
	Feed         module.FeedLoader
	Auth         module.AuthClient
	Sessions     Sessions
	SchemePolicy requestmeta.SchemePolicy
	Logger       *zap.Logger
	// Modules overrides the default module set.
	Modules []module.Module
	// Static overrides the embedded asset filesystem.
	Static fs.FS
}

// Server hosts the storefront HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.Logger = logger
	principal := newPrincipalResolver(cfg)
	deps := module.Dependencies{
		Feed:           cfg.Feed,
		Auth:           cfg.Auth,
		Sessions:       cfg.Sessions,
		ResolveViewer:  principal.resolveViewer,
		ResolveSession: principal.resolveSession,
		SchemePolicy:   cfg.SchemePolicy,
		Logger:         logger,
	}
	features := cfg.Modules
	if len(features) == 0 {
		features = modules.DefaultModules()
	}
	h, err := storefrontapp.Composer{}.Compose(storefrontapp.ComposeInput{
		Dependencies: deps,
		Modules:      features,
	})
	if err != nil {
		return nil, err
	}

	staticFS := cfg.Static
	if staticFS == nil {
		staticFS = storefrontstatic.FS
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS))))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	rootMux.Handle(http.MethodGet+" "+routepath.Metrics, metrics.Handler())
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		withRequestPrincipalState(),
		observability.RequestLogger(logger),
		httpx.RequireSameOrigin(requiresOriginProof, cfg.SchemePolicy),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func withRequestPrincipalState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			state := &requestPrincipalState{}
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	state, _ := r.Context().Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}

// NewServer validates config and constructs a storefront server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose storefront handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("storefront server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown storefront http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve storefront http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
