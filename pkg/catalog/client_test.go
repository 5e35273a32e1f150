package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_ListAll(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("limit"))
		writeJSON(t, w, ProductList{
			Products: []Product{{ID: 1, Title: "Kiwi", Rating: 4.9}, {ID: 2, Title: "Mango", Rating: 3.1}},
			Total:    2,
		})
	})

	out, err := c.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Products, 2)
	assert.Equal(t, "Kiwi", out.Products[0].Title)
}

func TestClient_Search(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/search", r.URL.Path)
		assert.Equal(t, "green apple", r.URL.Query().Get("q"))
		writeJSON(t, w, ProductList{Products: []Product{{ID: 7, Title: "Green Apple"}}})
	})

	out, err := c.Search(context.Background(), "green apple")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 7, out[0].ID)
}

func TestClient_ListByCategory(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/category/home-decoration", r.URL.Path)
		writeJSON(t, w, ProductList{Products: []Product{{ID: 3, Category: "home-decoration"}}})
	})

	out, err := c.ListByCategory(context.Background(), "home-decoration")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "home-decoration", out[0].Category)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.Search(context.Background(), "kiwi")
	require.Error(t, err)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Equal(t, "search", se.Operation)

	_, err = c.ListAll(context.Background())
	assert.Error(t, err)
	_, err = c.ListByCategory(context.Background(), "laptops")
	assert.Error(t, err)
}

func TestClient_GetByID(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/1":
			writeJSON(t, w, Product{ID: 1, Title: "Essence Mascara", Brand: "Essence"})
		case "/products/500":
			http.Error(w, `{"message":"Product with id '500' not found"}`, http.StatusNotFound)
		default:
			http.Error(w, "oops", http.StatusInternalServerError)
		}
	})

	p, err := c.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Essence", p.Brand)

	p, err = c.GetByID(context.Background(), 500)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = c.GetByID(context.Background(), 2)
	assert.Error(t, err)
}

func TestClient_MalformedBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := c.ListAll(context.Background())
	assert.ErrorContains(t, err, "decode response")
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	c := New(srv.URL, 20*time.Millisecond)

	_, err := c.Search(context.Background(), "kiwi")
	assert.Error(t, err)
}

func TestFilterByRating(t *testing.T) {
	in := []Product{{ID: 1, Rating: 4.5}, {ID: 2, Rating: 3.9}, {ID: 3, Rating: 4.0}}

	out := FilterByRating(in, 4)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 3, out[1].ID)

	assert.Empty(t, FilterByRating(in, 5))
}
