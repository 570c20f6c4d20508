package home

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/burjmall/storefront/internal/services/storefront/aggregator"
	"github.com/burjmall/storefront/internal/services/storefront/catalog"
	module "github.com/burjmall/storefront/internal/services/storefront/module"
	"github.com/burjmall/storefront/internal/services/storefront/platform/categorypref"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
)

type fakeFeed struct {
	mu    sync.Mutex
	batch aggregator.Batch
	err   error
	calls int
}

func (f *fakeFeed) Load(context.Context, aggregator.Cursor) (aggregator.Batch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.batch, f.err
}

func sampleFeed() *fakeFeed {
	return &fakeFeed{batch: aggregator.Batch{
		Products: []catalog.Product{
			{ID: 1, Code: "CM", Name: "Espresso Pro", Price: "1200", Category: catalog.Category{Name: "Coffee Machines"}},
			{ID: 2, Code: "PW", Name: "Vanilla Powder", Price: "45", Category: catalog.Category{Name: "Flavour Powders"}},
		},
		Cursor: aggregator.Cursor{States: map[string]aggregator.SourceState{
			"burjmall": {CurrentPage: 1, LastPage: 2, TotalProducts: 20, HasMore: true},
		}},
		HasMore:          true,
		TotalFromSources: 20,
	}}
}

func mountHome(t *testing.T, feed module.FeedLoader) http.Handler {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{Feed: feed})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	return mount.Handler
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestModuleIDReturnsHome(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "home" {
		t.Fatalf("ID() = %q, want %q", got, "home")
	}
}

func TestIndexRendersLandingPage(t *testing.T) {
	t.Parallel()

	h := mountHome(t, sampleFeed())
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/?banner=1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"<!doctype html>",
		`class="hero"`,
		`data-current="1"`,
		`id="catalog"`,
		"Espresso Pro",
		"Vanilla Powder",
		`id="feed-sentinel"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q", marker)
		}
	}
}

func TestIndexFiltersByQueryCategory(t *testing.T) {
	t.Parallel()

	h := mountHome(t, sampleFeed())
	req := httptest.NewRequest(http.MethodGet, "/?category=powders", nil)
	req.AddCookie(&http.Cookie{Name: categorypref.CookieName, Value: "coffee-machines"})
	body := serve(h, req).Body.String()
	if strings.Contains(body, "Espresso Pro") {
		t.Fatal("coffee machine shown under powders")
	}
	if !strings.Contains(body, "Vanilla Powder") || !strings.Contains(body, "Showing 1 products") {
		t.Fatal("expected filtered powders view")
	}
}

func TestIndexUsesCategoryCookie(t *testing.T) {
	t.Parallel()

	h := mountHome(t, sampleFeed())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: categorypref.CookieName, Value: "coffee-machines"})
	body := serve(h, req).Body.String()
	if strings.Contains(body, "Vanilla Powder") {
		t.Fatal("powder shown under coffee machines")
	}
	if !strings.Contains(body, "Coffee Machines</h2>") {
		t.Fatal("expected coffee machines headline")
	}
}

func TestIndexShowsErrorWhenFeedFails(t *testing.T) {
	t.Parallel()

	h := mountHome(t, &fakeFeed{err: context.DeadlineExceeded})
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{"Error loading products", "Products are temporarily unavailable", "Try Again"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q", marker)
		}
	}
}

func TestCategoryPostRedirectsWithoutHTMX(t *testing.T) {
	t.Parallel()

	feed := sampleFeed()
	h := mountHome(t, feed)
	form := url.Values{routepath.QueryCategory: {"lcd-screens"}}
	req := httptest.NewRequest(http.MethodPost, routepath.Category, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := serve(h, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/" {
		t.Fatalf("Location = %q, want /", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != categorypref.CookieName || cookies[0].Value != "lcd-screens" {
		t.Fatalf("cookies = %+v", cookies)
	}
	if feed.calls != 0 {
		t.Fatalf("feed calls = %d, want 0 before redirect", feed.calls)
	}
}

func TestCategoryPostSwapsCatalogForHTMX(t *testing.T) {
	t.Parallel()

	h := mountHome(t, sampleFeed())
	form := url.Values{routepath.QueryCategory: {"powders"}}
	req := httptest.NewRequest(http.MethodPost, routepath.Category, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rr := serve(h, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatal("expected fragment")
	}
	if !strings.HasPrefix(body, `<section id="catalog"`) {
		t.Fatalf("fragment should be the catalog section, got %q", body[:40])
	}
	if strings.Contains(body, "Espresso Pro") {
		t.Fatal("expected powders filter applied")
	}
}

func TestCategoryRejectsGet(t *testing.T) {
	t.Parallel()

	rr := serve(mountHome(t, sampleFeed()), httptest.NewRequest(http.MethodGet, routepath.Category, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(mountHome(t, sampleFeed()), httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatal("expected not found page")
	}
}
