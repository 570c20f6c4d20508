package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/burjmall/storefront/internal/platform/logging"
	"github.com/burjmall/storefront/internal/platform/telemetry/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	tracerName      = "github.com/burjmall/storefront/internal/services/storefront/identity"
	maxResponseSize = 1 << 20

	defaultLoginFailure  = "Login failed"
	defaultSignupFailure = "Validation error"
)

// BaseResolver yields the API base for a call.
type BaseResolver interface {
	Resolve(ctx context.Context) string
}

// AuthResult is a successful login or signup.
type AuthResult struct {
	User  User
	Token string
}

// SignupInput is the registration form.
type SignupInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Client calls the remote auth endpoints.
type Client struct {
	bases  BaseResolver
	http   HTTPDoer
	tracer trace.Tracer
	logger *zap.Logger
}

// NewClient builds an auth client. A nil httpClient uses one with timeout.
func NewClient(bases BaseResolver, httpClient HTTPDoer, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	if bases == nil {
		return nil, errors.New("api base resolver is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		bases:  bases,
		http:   httpClient,
		tracer: otel.Tracer(tracerName),
		logger: logger,
	}, nil
}

// Login exchanges credentials for a user and access token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)
	return c.authenticate(ctx, "login", "/auth/login", form, defaultLoginFailure)
}

// Signup registers a new account with role "user".
func (c *Client) Signup(ctx context.Context, input SignupInput) (AuthResult, error) {
	form := url.Values{}
	form.Set("name", input.Name)
	form.Set("email", input.Email)
	form.Set("password", input.Password)
	form.Set("password_confirmation", input.PasswordConfirmation)
	form.Set("role", "user")
	return c.authenticate(ctx, "signup", "/auth/register", form, defaultSignupFailure)
}

// Logout revokes token on the backend. Failures are logged and otherwise
// ignored; an empty token makes no call.
func (c *Client) Logout(ctx context.Context, token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	err := c.logout(ctx, token)
	metrics.ObserveIdentityCall("logout", metrics.Outcome(err))
	if err != nil {
		logging.FromContext(ctx, c.logger).Warn("logout request failed", zap.Error(err))
	}
}

func (c *Client) logout(ctx context.Context, token string) (err error) {
	ctx, span := c.startSpan(ctx, "logout")
	defer func() { endSpan(span, err) }()

	endpoint := c.bases.Resolve(ctx) + "/auth/logout"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build logout request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post logout: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
	return nil
}

func (c *Client) authenticate(ctx context.Context, operation, path string, form url.Values, fallback string) (result AuthResult, err error) {
	ctx, span := c.startSpan(ctx, operation)
	defer func() {
		metrics.ObserveIdentityCall(operation, metrics.Outcome(err))
		endSpan(span, err)
	}()

	base := c.bases.Resolve(ctx)
	span.SetAttributes(attribute.String("identity.api_base", base))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+path, strings.NewReader(form.Encode()))
	if err != nil {
		return AuthResult{}, fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return AuthResult{}, fmt.Errorf("post %s: %w", operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return AuthResult{}, fmt.Errorf("read %s response: %w", operation, err)
	}
	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299
	return decodeAuthResponse(resp.StatusCode, ok, body, fallback)
}

func (c *Client) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "identity."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("identity.operation", operation)),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
