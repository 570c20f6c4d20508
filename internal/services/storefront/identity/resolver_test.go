package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type memorySettings struct {
	mu      sync.Mutex
	values  map[string]string
	getErr  error
	deletes int
}

func newMemorySettings() *memorySettings {
	return &memorySettings{values: map[string]string{}}
}

func (m *memorySettings) GetSetting(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memorySettings) PutSetting(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memorySettings) DeleteSetting(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	delete(m.values, key)
	return nil
}

func (m *memorySettings) get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// apiServer answers the probe path with status and counts probes.
func apiServer(t *testing.T, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var probes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/base/public/products" && r.URL.Query().Get("page") == "1" {
			probes.Add(1)
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"data":[]}`))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &probes
}

func TestResolveProbesCandidatesInOrder(t *testing.T) {
	t.Parallel()

	down, downProbes := apiServer(t, http.StatusNotFound)
	up, upProbes := apiServer(t, http.StatusOK)
	settings := newMemorySettings()
	r, err := NewResolver(ResolverConfig{
		Candidates: []string{down.URL + "/base", up.URL + "/base/"},
		Settings:   settings,
	})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	got := r.Resolve(context.Background())
	if want := up.URL + "/base"; got != want {
		t.Fatalf("Resolve() = %q, want %q", got, want)
	}
	if stored, _ := settings.get(APIBaseSettingKey); stored != got {
		t.Fatalf("stored base = %q, want %q", stored, got)
	}
	if downProbes.Load() != 1 || upProbes.Load() != 1 {
		t.Fatalf("probes = %d/%d, want 1/1", downProbes.Load(), upProbes.Load())
	}

	if again := r.Resolve(context.Background()); again != got {
		t.Fatalf("second Resolve() = %q", again)
	}
	if upProbes.Load() != 1 {
		t.Fatal("second Resolve() probed again")
	}
}

func TestResolveReusesVerifiedStoredBase(t *testing.T) {
	t.Parallel()

	stored, storedProbes := apiServer(t, http.StatusOK)
	candidate, candidateProbes := apiServer(t, http.StatusOK)
	settings := newMemorySettings()
	settings.values[APIBaseSettingKey] = stored.URL + "/base"

	r, _ := NewResolver(ResolverConfig{Candidates: []string{candidate.URL + "/base"}, Settings: settings})
	if got := r.Resolve(context.Background()); got != stored.URL+"/base" {
		t.Fatalf("Resolve() = %q, want stored base", got)
	}
	if storedProbes.Load() != 1 || candidateProbes.Load() != 0 {
		t.Fatalf("probes = %d/%d, want 1/0", storedProbes.Load(), candidateProbes.Load())
	}
}

func TestResolveForgetsStaleStoredBase(t *testing.T) {
	t.Parallel()

	stale, _ := apiServer(t, http.StatusInternalServerError)
	candidate, _ := apiServer(t, http.StatusOK)
	settings := newMemorySettings()
	settings.values[APIBaseSettingKey] = stale.URL + "/base"

	r, _ := NewResolver(ResolverConfig{Candidates: []string{candidate.URL + "/base"}, Settings: settings})
	got := r.Resolve(context.Background())
	if got != candidate.URL+"/base" {
		t.Fatalf("Resolve() = %q, want candidate", got)
	}
	if settings.deletes != 1 {
		t.Fatalf("deletes = %d, want 1", settings.deletes)
	}
	if v, _ := settings.get(APIBaseSettingKey); v != got {
		t.Fatalf("stored base = %q, want %q", v, got)
	}
}

func TestResolveFallsBackWithoutPersisting(t *testing.T) {
	t.Parallel()

	a, _ := apiServer(t, http.StatusServiceUnavailable)
	b, _ := apiServer(t, http.StatusForbidden)
	settings := newMemorySettings()
	r, _ := NewResolver(ResolverConfig{Candidates: []string{a.URL + "/base", b.URL + "/base"}, Settings: settings})

	if got := r.Resolve(context.Background()); got != a.URL+"/base" {
		t.Fatalf("Resolve() = %q, want first candidate", got)
	}
	if _, ok := settings.get(APIBaseSettingKey); ok {
		t.Fatal("fallback base must not be persisted")
	}

	r.Reset()
	if got := r.Resolve(context.Background()); got != a.URL+"/base" {
		t.Fatalf("Resolve() after Reset = %q", got)
	}
}

func TestResolveCancelledCallerDoesNotPinFallback(t *testing.T) {
	t.Parallel()

	down, _ := apiServer(t, http.StatusNotFound)
	up, _ := apiServer(t, http.StatusOK)
	settings := newMemorySettings()
	r, _ := NewResolver(ResolverConfig{Candidates: []string{down.URL + "/base", up.URL + "/base"}, Settings: settings})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := r.Resolve(ctx); got != down.URL+"/base" {
		t.Fatalf("Resolve(cancelled) = %q, want first candidate", got)
	}
	if got := r.Resolve(context.Background()); got != up.URL+"/base" {
		t.Fatalf("Resolve() after cancelled call = %q, want %q", got, up.URL+"/base")
	}
}

func TestResolveCancelledCallerKeepsStoredBase(t *testing.T) {
	t.Parallel()

	stored, _ := apiServer(t, http.StatusOK)
	candidate, _ := apiServer(t, http.StatusOK)
	settings := newMemorySettings()
	settings.values[APIBaseSettingKey] = stored.URL + "/base"
	r, _ := NewResolver(ResolverConfig{Candidates: []string{candidate.URL + "/base"}, Settings: settings})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Resolve(ctx)
	if settings.deletes != 0 {
		t.Fatalf("deletes = %d, want 0", settings.deletes)
	}
	if got := r.Resolve(context.Background()); got != stored.URL+"/base" {
		t.Fatalf("Resolve() = %q, want stored base", got)
	}
}

func TestResolveToleratesSettingsErrors(t *testing.T) {
	t.Parallel()

	up, _ := apiServer(t, http.StatusOK)
	settings := newMemorySettings()
	settings.getErr = errors.New("disk gone")
	r, _ := NewResolver(ResolverConfig{Candidates: []string{up.URL + "/base"}, Settings: settings})
	if got := r.Resolve(context.Background()); got != up.URL+"/base" {
		t.Fatalf("Resolve() = %q", got)
	}
}

func TestResolveSharesOneResolution(t *testing.T) {
	t.Parallel()

	var probes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		probes.Add(1)
		time.Sleep(20 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	r, _ := NewResolver(ResolverConfig{Candidates: []string{srv.URL}})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Resolve(context.Background())
		}()
	}
	wg.Wait()
	if probes.Load() != 1 {
		t.Fatalf("probes = %d, want 1", probes.Load())
	}
}

func TestNewResolverRequiresCandidates(t *testing.T) {
	t.Parallel()

	if _, err := NewResolver(ResolverConfig{Candidates: []string{" ", ""}}); err == nil {
		t.Fatal("expected error for empty candidates")
	}
	if _, err := NewResolver(ResolverConfig{Candidates: []string{"not a url"}}); err == nil {
		t.Fatal("expected error for invalid candidate")
	}
	r, err := NewResolver(ResolverConfig{Candidates: DefaultCandidateBases()})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if got := r.Candidates(); len(got) != 6 || got[0] != "https://admin.burjmall.com/api/public/api/public" {
		t.Fatalf("Candidates() = %v", got)
	}
}
