// Package feedview turns merged feed batches into product grid views for the
// active category.
package feedview

import (
	"context"
	"strings"

	"github.com/burjmall/storefront/internal/platform/logging"
	"github.com/burjmall/storefront/internal/services/storefront/aggregator"
	"github.com/burjmall/storefront/internal/services/storefront/catalog"
	module "github.com/burjmall/storefront/internal/services/storefront/module"
	apperrors "github.com/burjmall/storefront/internal/services/storefront/platform/errors"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
	"github.com/burjmall/storefront/internal/services/storefront/templates"
	"go.uber.org/zap"
)

const (
	keyCatalogUnavailable = "error.catalog_unavailable"
	keyInvalidCursor      = "error.invalid_cursor"
)

// Result is one category-filtered feed batch.
type Result struct {
	Category string
	// Products are the batch products visible under Category.
	Products []catalog.Product
	// Cursor resumes the feed; its Shown count includes Products.
	Cursor  aggregator.Cursor
	HasMore bool
	Total   int
	// Unavailable is set when the batch is empty because sources failed.
	Unavailable bool
}

// Service loads feed batches on behalf of page and fragment handlers.
type Service struct {
	feed   module.FeedLoader
	logger *zap.Logger
}

// New returns a feed view service.
func New(feed module.FeedLoader, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Service{feed: feed, logger: logger}
}

// First loads the first batch for category.
func (s Service) First(ctx context.Context, category string) (Result, error) {
	return s.load(ctx, aggregator.Cursor{}, category)
}

// Next resumes the feed from an encoded cursor.
func (s Service) Next(ctx context.Context, rawCursor, category string) (Result, error) {
	cursor, err := aggregator.DecodeCursor(strings.TrimSpace(rawCursor))
	if err != nil {
		return Result{}, apperrors.Error{Kind: apperrors.KindInvalidInput, Key: keyInvalidCursor, Message: "invalid feed cursor", Err: err}
	}
	return s.load(ctx, cursor, category)
}

func (s Service) load(ctx context.Context, cursor aggregator.Cursor, category string) (Result, error) {
	category = catalog.NormalizeSlug(category)
	if s.feed == nil {
		return Result{}, apperrors.Error{Kind: apperrors.KindUnavailable, Key: keyCatalogUnavailable, Message: "catalog feed is not configured"}
	}
	batch, err := s.feed.Load(ctx, cursor)
	if err != nil {
		return Result{}, apperrors.Error{Kind: apperrors.KindUnavailable, Key: keyCatalogUnavailable, Message: "catalog feed unavailable", Err: err}
	}

	visible := catalog.FilterByCategory(batch.Products, category)
	next := batch.Cursor.WithShown(cursor.Shown + len(visible))
	result := Result{
		Category: category,
		Products: visible,
		Cursor:   next,
		HasMore:  batch.HasMore,
		Total:    batch.TotalFromSources,
	}
	if len(batch.Failed) > 0 && len(batch.Products) == 0 && !batch.Done {
		result.Unavailable = true
		logging.FromContext(ctx, s.logger).Warn("catalog batch empty after source failures",
			zap.Strings("sources", batch.Failed),
			zap.String("category", category),
		)
	}
	return result, nil
}

// GridView builds the grid view for r. errorMessage is shown when r is
// unavailable.
func (r Result) GridView(errorMessage string) templates.GridView {
	view := templates.GridView{
		Category: r.Category,
		Products: r.Products,
		Shown:    r.Cursor.Shown,
		Total:    r.Total,
		HasMore:  r.HasMore,
	}
	if r.HasMore {
		view.NextURL = routepath.MoreProducts(r.Cursor.Encode(), r.Category)
	}
	if r.Unavailable {
		view.Error = errorMessage
	}
	return view
}
