package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/artem13815/productbot/pkg/metrics"
)

const defaultBaseURL = "https://dummyjson.com"

// Client is a read-only client for a DummyJSON-compatible products API.
type Client struct {
	BaseURL string
	httpDo  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpDo:  &http.Client{Timeout: timeout},
	}
}

// ListAll returns the whole catalog; limit=0 disables upstream pagination.
func (c *Client) ListAll(ctx context.Context) (ProductList, error) {
	var out ProductList
	q := url.Values{"limit": []string{"0"}}
	if _, err := c.get(ctx, "list", "/products", q, &out); err != nil {
		return ProductList{}, err
	}
	return out, nil
}

// Search runs a free-text product search.
func (c *Client) Search(ctx context.Context, query string) ([]Product, error) {
	var out ProductList
	q := url.Values{"q": []string{query}}
	if _, err := c.get(ctx, "search", "/products/search", q, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// ListByCategory returns the products of one category.
func (c *Client) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	var out ProductList
	path := "/products/category/" + url.PathEscape(category)
	if _, err := c.get(ctx, "category", path, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// GetByID returns nil without error when the product does not exist.
func (c *Client) GetByID(ctx context.Context, id int) (*Product, error) {
	var out Product
	status, err := c.get(ctx, "get", "/products/"+strconv.Itoa(id), nil, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, dst any) (int, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpDo.Do(req)
	if err != nil {
		metrics.CatalogRequests.WithLabelValues(op, "error").Inc()
		return 0, fmt.Errorf("catalog %s: %w", op, err)
	}
	defer resp.Body.Close()
	metrics.CatalogRequests.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return resp.StatusCode, &StatusError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return resp.StatusCode, fmt.Errorf("catalog %s: decode response: %w", op, err)
	}
	return resp.StatusCode, nil
}
