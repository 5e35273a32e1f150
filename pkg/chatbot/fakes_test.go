package chatbot

import (
	"context"
	"sync"

	"github.com/artem13815/productbot/pkg/catalog"
)

type askCall struct {
	System string
	User   string
}

// fakeModel answers the first call (intent) and the second call (answer)
// with separately configured replies.
type fakeModel struct {
	mu        sync.Mutex
	calls     []askCall
	intent    string
	intentErr error
	answer    string
	answerErr error
	block     bool
}

func (m *fakeModel) Ask(ctx context.Context, system, user string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, askCall{System: system, User: user})
	n := len(m.calls)
	m.mu.Unlock()

	if m.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if n == 1 {
		return m.intent, m.intentErr
	}
	return m.answer, m.answerErr
}

func (m *fakeModel) Calls() []askCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]askCall(nil), m.calls...)
}

type fakeCatalog struct {
	mu    sync.Mutex
	calls []string
	args  []string

	all      []catalog.Product
	search   []catalog.Product
	category []catalog.Product
	err      error
	block    bool
}

func (c *fakeCatalog) record(op, arg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, op)
	c.args = append(c.args, arg)
}

func (c *fakeCatalog) wait(ctx context.Context) error {
	if c.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return c.err
}

func (c *fakeCatalog) ListAll(ctx context.Context) (catalog.ProductList, error) {
	c.record("all", "")
	if err := c.wait(ctx); err != nil {
		return catalog.ProductList{}, err
	}
	return catalog.ProductList{Products: c.all, Total: len(c.all)}, nil
}

func (c *fakeCatalog) Search(ctx context.Context, query string) ([]catalog.Product, error) {
	c.record("search", query)
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	return c.search, nil
}

func (c *fakeCatalog) ListByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	c.record("category", category)
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	return c.category, nil
}

func (c *fakeCatalog) Calls() ([]string, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...), append([]string(nil), c.args...)
}

func products(n int) []catalog.Product {
	out := make([]catalog.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, catalog.Product{
			ID:       i,
			Title:    "Item " + string(rune('A'+i-1)),
			Price:    float64(i) + 0.99,
			Rating:   float64(i%5) + 0.5,
			Stock:    i * 10,
			Category: "groceries",
		})
	}
	return out
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
