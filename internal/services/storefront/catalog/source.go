package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/burjmall/storefront/internal/platform/telemetry/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// maxResponseSize caps a catalog page body (10 MiB).
const maxResponseSize = 10 * 1024 * 1024

const tracerName = "github.com/burjmall/storefront/internal/services/storefront/catalog"

// Fetcher loads one page of a catalog listing.
type Fetcher interface {
	Name() string
	FetchPage(ctx context.Context, page int) (Page, error)
}

// HTTPDoer is the subset of *http.Client used by sources.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// StatusError reports a non-2xx catalog response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Source is a remote catalog endpoint such as
// https://api.burjmall.com/public/api/public/products.
type Source struct {
	name   string
	url    string
	client HTTPDoer
	tracer trace.Tracer
}

// NewSource builds a source for endpoint. A nil client uses a client with
// timeout as its per-request deadline.
func NewSource(name, endpoint string, client HTTPDoer, timeout time.Duration) (*Source, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("source name is required")
	}
	parsed, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("source %q: invalid endpoint %q", name, endpoint)
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Source{
		name:   name,
		url:    parsed.String(),
		client: client,
		tracer: otel.Tracer(tracerName),
	}, nil
}

// Name identifies the source in cursors, logs and metrics.
func (s *Source) Name() string {
	return s.name
}

// URL returns the listing endpoint.
func (s *Source) URL() string {
	return s.url
}

// FetchPage performs GET {url}?page=N and decodes the listing envelope.
func (s *Source) FetchPage(ctx context.Context, page int) (result Page, err error) {
	if page < 1 {
		page = 1
	}
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "catalog.FetchPage", trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("catalog.source", s.name),
			attribute.Int("catalog.page", page),
		))
	defer func() {
		metrics.ObserveCatalogFetch(s.name, metrics.Outcome(err), time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("catalog.products", len(result.Products)))
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.pageURL(page), nil)
	if err != nil {
		return Page{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := s.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("fetch %s page %d: %w", s.name, page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return Page{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var decoded Page
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&decoded); err != nil {
		return Page{}, fmt.Errorf("decode %s page %d: %w", s.name, page, err)
	}
	if decoded.Products == nil {
		decoded.Products = []Product{}
	}
	return decoded, nil
}

func (s *Source) pageURL(page int) string {
	parsed, _ := url.Parse(s.url)
	query := parsed.Query()
	query.Set("page", strconv.Itoa(page))
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
