// Package storefront parses storefront flags and launches the service.
package storefront

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/burjmall/storefront/internal/platform/cmd"
	"github.com/burjmall/storefront/internal/platform/config"
	"github.com/burjmall/storefront/internal/platform/logging"
	"github.com/burjmall/storefront/internal/services/storefront"
	"github.com/burjmall/storefront/internal/services/storefront/aggregator"
	"github.com/burjmall/storefront/internal/services/storefront/catalog"
	"github.com/burjmall/storefront/internal/services/storefront/identity"
	"github.com/burjmall/storefront/internal/services/storefront/platform/requestmeta"
	"github.com/burjmall/storefront/internal/services/storefront/session"
	"github.com/burjmall/storefront/internal/services/storefront/storage/sqlite"
	"go.uber.org/zap"
)

const sessionSweepInterval = 10 * time.Minute

// Config holds storefront command configuration.
type Config struct {
	HTTPAddr            string        `env:"STOREFRONT_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath              string        `env:"STOREFRONT_DB_PATH" envDefault:"data/storefront.db"`
	CatalogSources      []string      `env:"STOREFRONT_CATALOG_SOURCES" envSeparator:"," envDefault:"burjmall=https://api.burjmall.com/public/api/public/products,coffeepl=https://api.coffeepl.com/public/api/public/products"`
	AuthAPIBases        []string      `env:"STOREFRONT_AUTH_API_BASES" envSeparator:","`
	SessionTTL          time.Duration `env:"STOREFRONT_SESSION_TTL" envDefault:"720h"`
	UpstreamTimeout     time.Duration `env:"STOREFRONT_UPSTREAM_TIMEOUT" envDefault:"10s"`
	TrustForwardedProto bool          `env:"STOREFRONT_TRUST_FORWARDED_PROTO"`
	Logging             logging.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if len(cfg.AuthAPIBases) == 0 {
		cfg.AuthAPIBases = identity.DefaultCandidateBases()
	}
	return cfg, nil
}

// Run starts the storefront web service.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceStorefront, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return serve(ctx, cfg, logger)
	})
}

func serve(ctx context.Context, cfg Config, logger *zap.Logger) error {
	store, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	feed, err := buildFeed(cfg, logger)
	if err != nil {
		return err
	}
	resolver, err := identity.NewResolver(identity.ResolverConfig{
		Candidates: cfg.AuthAPIBases,
		Settings:   store,
		Logger:     logger.Named("identity"),
	})
	if err != nil {
		return fmt.Errorf("init api base resolver: %w", err)
	}
	go warmAPIBase(ctx, resolver, logger)
	auth, err := identity.NewClient(resolver, nil, cfg.UpstreamTimeout, logger.Named("identity"))
	if err != nil {
		return fmt.Errorf("init auth client: %w", err)
	}
	sessions, err := session.NewManager(store, cfg.SessionTTL, logger.Named("session"))
	if err != nil {
		return fmt.Errorf("init sessions: %w", err)
	}
	go sessions.RunSweeper(ctx, sessionSweepInterval)

	server, err := storefront.NewServer(ctx, storefront.Config{
		HTTPAddr:     cfg.HTTPAddr,
		Feed:         feed,
		Auth:         auth,
		Sessions:     sessions,
		SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("init storefront server: %w", err)
	}
	defer server.Close()

	logger.Info("storefront listening", zap.String("addr", server.Addr()), zap.Strings("sources", feed.SourceNames()))
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve storefront: %w", err)
	}
	return nil
}

// warmAPIBase probes the auth API candidates at startup so the first
// login does not wait on discovery.
func warmAPIBase(ctx context.Context, bases identity.BaseResolver, logger *zap.Logger) {
	base := bases.Resolve(ctx)
	logger.Debug("api base ready", zap.String("base", base))
}

func buildFeed(cfg Config, logger *zap.Logger) (*aggregator.Aggregator, error) {
	entries, err := config.ParseNamedURLs(cfg.CatalogSources)
	if err != nil {
		return nil, fmt.Errorf("parse catalog sources: %w", err)
	}
	sources := make([]catalog.Fetcher, 0, len(entries))
	for _, entry := range entries {
		source, err := catalog.NewSource(entry.Name, entry.URL, nil, cfg.UpstreamTimeout)
		if err != nil {
			return nil, fmt.Errorf("init catalog source: %w", err)
		}
		sources = append(sources, source)
	}
	feed, err := aggregator.New(sources, logger.Named("aggregator"))
	if err != nil {
		return nil, fmt.Errorf("init catalog feed: %w", err)
	}
	return feed, nil
}
