package chatbot

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/productbot/pkg/catalog"
	"github.com/artem13815/productbot/pkg/logger"
	"github.com/artem13815/productbot/pkg/metrics"
)

// MaxContextProducts bounds how many products ground one answer.
const MaxContextProducts = 5

const (
	// NoProductsFound is the context used when the catalog had no match.
	NoProductsFound = "No products found matching your query."
	// CatalogErrorPrefix starts the context used when the catalog failed.
	CatalogErrorPrefix = "Error fetching product data: "
)

// retrieveContext turns an intent into grounding text. Catalog failures are
// reported inside the returned text, never as an error.
func (s *service) retrieveContext(ctx context.Context, intent Intent, message string) string {
	defer metrics.ObserveStage("retrieval", time.Now())
	l := logger.FromContext(ctx, s.log)

	callCtx, cancel := withTimeout(ctx, s.opts.CatalogTimeout)
	defer cancel()

	products, source, err := s.selectProducts(callCtx, intent)
	if err != nil {
		l.Warn("catalog lookup failed, continuing without products",
			zap.String("source", source), zap.String("query", message), zap.Error(err))
		metrics.Degradations.WithLabelValues("retrieval").Inc()
		return CatalogErrorPrefix + err.Error()
	}
	if len(products) > MaxContextProducts {
		products = products[:MaxContextProducts]
	}
	l.Debug("catalog lookup done", zap.String("source", source), zap.Int("products", len(products)))
	if len(products) == 0 {
		return NoProductsFound
	}
	return FormatProducts(products)
}

// selectProducts applies the lookup precedence:
// product name, then category, then rating threshold, then the plain catalog.
func (s *service) selectProducts(ctx context.Context, intent Intent) ([]catalog.Product, string, error) {
	switch {
	case intent.ProductName != nil:
		products, err := s.catalog.Search(ctx, *intent.ProductName)
		return products, "search", err
	case intent.Category != nil:
		products, err := s.catalog.ListByCategory(ctx, *intent.Category)
		return products, "category", err
	case intent.RatingThreshold != nil:
		all, err := s.catalog.ListAll(ctx)
		if err != nil {
			return nil, "rating", err
		}
		return catalog.FilterByRating(all.Products, *intent.RatingThreshold), "rating", nil
	default:
		all, err := s.catalog.ListAll(ctx)
		if err != nil {
			return nil, "all", err
		}
		return all.Products, "all", nil
	}
}
