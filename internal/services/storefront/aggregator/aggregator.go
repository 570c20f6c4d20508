// Package aggregator merges paginated catalog sources into one incremental
// product feed.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/burjmall/storefront/internal/platform/logging"
	"github.com/burjmall/storefront/internal/services/storefront/catalog"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Batch is the result of one feed load.
type Batch struct {
	Products         []catalog.Product
	Cursor           Cursor
	HasMore          bool
	TotalFromSources int
	// Done is set when no source had anything left to fetch.
	Done bool
	// Failed names the sources whose fetch failed and counted as empty.
	Failed []string
}

// Aggregator fans feed loads out to its sources.
type Aggregator struct {
	sources []catalog.Fetcher
	logger  *zap.Logger
}

// New builds an aggregator over sources, merged in the given order.
func New(sources []catalog.Fetcher, logger *zap.Logger) (*Aggregator, error) {
	if len(sources) == 0 {
		return nil, errors.New("at least one catalog source is required")
	}
	seen := make(map[string]struct{}, len(sources))
	for i, source := range sources {
		if source == nil {
			return nil, fmt.Errorf("catalog source %d is nil", i)
		}
		name := strings.TrimSpace(source.Name())
		if name == "" {
			return nil, fmt.Errorf("catalog source %d has no name", i)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("duplicate catalog source %q", name)
		}
		seen[name] = struct{}{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		sources: append([]catalog.Fetcher(nil), sources...),
		logger:  logger,
	}, nil
}

// SourceNames lists the configured sources in merge order.
func (a *Aggregator) SourceNames() []string {
	names := make([]string, 0, len(a.sources))
	for _, source := range a.sources {
		names = append(names, source.Name())
	}
	return names
}

// Initial loads the first batch of the feed.
func (a *Aggregator) Initial(ctx context.Context) (Batch, error) {
	return a.Load(ctx, Cursor{})
}

type fetchPlan struct {
	source catalog.Fetcher
	page   int
}

type fetchResult struct {
	page catalog.Page
	err  error
}

// Load fetches the next page of every source that is unseen or has pages
// left, in parallel, and merges the results in source order. A failing source
// is logged and counts as an empty page.
func (a *Aggregator) Load(ctx context.Context, cursor Cursor) (Batch, error) {
	plans := a.plan(cursor)
	if len(plans) == 0 {
		next := cursor.clone()
		return Batch{
			Products:         []catalog.Product{},
			Cursor:           next,
			HasMore:          false,
			TotalFromSources: next.TotalProducts(),
			Done:             true,
		}, nil
	}

	results := make([]fetchResult, len(plans))
	var g errgroup.Group
	for i, plan := range plans {
		g.Go(func() error {
			page, err := plan.source.FetchPage(ctx, plan.page)
			results[i] = fetchResult{page: page, err: err}
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return Batch{}, fmt.Errorf("load catalog feed: %w", err)
	}

	logger := logging.FromContext(ctx, a.logger)
	next := cursor.clone()
	if next.States == nil {
		next.States = make(map[string]SourceState, len(plans))
	}
	batch := Batch{Products: []catalog.Product{}}
	for i, plan := range plans {
		name := plan.source.Name()
		result := results[i]
		if result.err != nil {
			logger.Warn("catalog source fetch failed",
				zap.String("source", name),
				zap.Int("page", plan.page),
				zap.Error(result.err),
			)
			batch.Failed = append(batch.Failed, name)
			result.page = catalog.EmptyPage()
		}
		if len(result.page.Products) == 0 {
			continue
		}
		batch.Products = append(batch.Products, result.page.Products...)
		pagination := result.page.Pagination
		next.States[name] = SourceState{
			CurrentPage:   pagination.CurrentPage,
			LastPage:      pagination.LastPage,
			TotalProducts: pagination.Total,
			HasMore:       pagination.HasMore(),
		}
	}
	if len(next.States) == 0 {
		next.States = nil
	}

	batch.Cursor = next
	batch.HasMore = next.HasMore()
	batch.TotalFromSources = next.TotalProducts()
	return batch, nil
}

// plan picks the sources to fetch for cursor and the page each one needs.
func (a *Aggregator) plan(cursor Cursor) []fetchPlan {
	plans := make([]fetchPlan, 0, len(a.sources))
	for _, source := range a.sources {
		state, seen := cursor.State(source.Name())
		switch {
		case !seen:
			plans = append(plans, fetchPlan{source: source, page: 1})
		case state.HasMore:
			plans = append(plans, fetchPlan{source: source, page: state.CurrentPage + 1})
		}
	}
	return plans
}
