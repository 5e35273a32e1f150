package checkers

import (
	"context"
	"time"

	"github.com/artem13815/productbot/pkg/catalog"
)

// productGetter is satisfied by *catalog.Client.
type productGetter interface {
	GetByID(ctx context.Context, id int) (*catalog.Product, error)
}

// CatalogChecker reports the catalog as ready when a single-product lookup
// completes. A missing product still proves the API answers.
type CatalogChecker struct {
	client productGetter
}

func NewCatalogChecker(client productGetter) *CatalogChecker {
	return &CatalogChecker{client: client}
}

func (c *CatalogChecker) Name() string { return "catalog" }

func (c *CatalogChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	_, err := c.client.GetByID(ctx, 1)
	return err
}
