package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/burjmall/storefront/internal/platform/logging"
	"github.com/burjmall/storefront/internal/platform/telemetry/metrics"
	"github.com/burjmall/storefront/internal/platform/timeouts"
	"go.uber.org/zap"
)

// APIBaseSettingKey is the settings key holding the last working API base.
const APIBaseSettingKey = "api_base_url"

// probePath is requested on a candidate base to check that it serves the API.
const probePath = "/public/products?page=1"

const (
	resolvedViaMemory   = "memory"
	resolvedViaStored   = "stored"
	resolvedViaProbe    = "probe"
	resolvedViaFallback = "fallback"
)

// DefaultCandidateBases lists the known BurjMall API bases in probe order.
func DefaultCandidateBases() []string {
	return []string{
		"https://admin.burjmall.com/api/public/api/public",
		"https://api.burjmall.com/public/api/public",
		"https://api.burjmall.com/public/api",
		"https://api.burjmall.com/api/public",
		"https://admin.burjmall.com/api/public/api",
		"https://admin.burjmall.com/api/public",
	}
}

// SettingsStore persists small key/value settings.
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	PutSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// HTTPDoer is the subset of *http.Client used by this package.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Resolver picks the API base the auth client talks to.
type Resolver struct {
	candidates   []string
	settings     SettingsStore
	client       HTTPDoer
	probeTimeout time.Duration
	logger       *zap.Logger

	mu       sync.Mutex
	resolved string
}

// ResolverConfig configures a Resolver.
type ResolverConfig struct {
	Candidates   []string
	Settings     SettingsStore
	Client       HTTPDoer
	ProbeTimeout time.Duration
	Logger       *zap.Logger
}

// NewResolver validates cfg and builds a resolver.
func NewResolver(cfg ResolverConfig) (*Resolver, error) {
	candidates := make([]string, 0, len(cfg.Candidates))
	for _, candidate := range cfg.Candidates {
		candidate = strings.TrimRight(strings.TrimSpace(candidate), "/")
		if candidate == "" {
			continue
		}
		parsed, err := url.Parse(candidate)
		if err != nil || parsed.Host == "" {
			return nil, fmt.Errorf("invalid api base %q", candidate)
		}
		candidates = append(candidates, candidate)
	}
	if len(candidates) == 0 {
		return nil, errors.New("at least one api base candidate is required")
	}
	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	probeTimeout := cfg.ProbeTimeout
	if probeTimeout <= 0 {
		probeTimeout = timeouts.BaseProbe
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		candidates:   candidates,
		settings:     cfg.Settings,
		client:       client,
		probeTimeout: probeTimeout,
		logger:       logger,
	}, nil
}

// Candidates returns the configured bases in probe order.
func (r *Resolver) Candidates() []string {
	return append([]string(nil), r.candidates...)
}

// Resolve returns the API base. A base already resolved in this process is
// reused; otherwise the stored base is re-verified, then the candidates are
// probed in order, and finally the first candidate is used without being
// stored. Concurrent callers share one resolution. A caller whose context
// ends mid-probe gets the first candidate and leaves nothing resolved.
func (r *Resolver) Resolve(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.resolved != "" {
		metrics.ObserveAPIBaseResolution(resolvedViaMemory)
		return r.resolved
	}
	logger := logging.FromContext(ctx, r.logger)

	if stored, ok := r.storedBase(ctx, logger); ok {
		if r.probe(ctx, stored) {
			r.resolved = stored
			metrics.ObserveAPIBaseResolution(resolvedViaStored)
			return stored
		}
		if ctx.Err() != nil {
			return r.candidates[0]
		}
		if r.settings != nil {
			if err := r.settings.DeleteSetting(ctx, APIBaseSettingKey); err != nil {
				logger.Warn("forget stale api base", zap.String("base", stored), zap.Error(err))
			}
		}
	}

	for _, candidate := range r.candidates {
		if !r.probe(ctx, candidate) {
			continue
		}
		r.resolved = candidate
		if r.settings != nil {
			if err := r.settings.PutSetting(ctx, APIBaseSettingKey, candidate); err != nil {
				logger.Warn("persist api base", zap.String("base", candidate), zap.Error(err))
			}
		}
		logger.Info("api base resolved", zap.String("base", candidate))
		metrics.ObserveAPIBaseResolution(resolvedViaProbe)
		return candidate
	}

	// A cancelled caller proves nothing about the candidates, so the
	// fallback is not cached for later requests.
	if ctx.Err() != nil {
		return r.candidates[0]
	}
	r.resolved = r.candidates[0]
	logger.Warn("no api base answered, using first candidate", zap.String("base", r.resolved))
	metrics.ObserveAPIBaseResolution(resolvedViaFallback)
	return r.resolved
}

// Reset forgets the in-process base so the next Resolve probes again.
func (r *Resolver) Reset() {
	r.mu.Lock()
	r.resolved = ""
	r.mu.Unlock()
}

func (r *Resolver) storedBase(ctx context.Context, logger *zap.Logger) (string, bool) {
	if r.settings == nil {
		return "", false
	}
	value, ok, err := r.settings.GetSetting(ctx, APIBaseSettingKey)
	if err != nil {
		logger.Warn("read stored api base", zap.Error(err))
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func (r *Resolver) probe(ctx context.Context, base string) bool {
	ctx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+probePath, nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
