package catalog

import "fmt"

// Product is a single catalog record as served by the upstream catalog API.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand,omitempty"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

// ProductList is the paginated envelope returned by list endpoints.
type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// StatusError is returned when the catalog answers with a non-2xx status.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("catalog %s: http %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("catalog %s: http %d: %s", e.Operation, e.StatusCode, e.Body)
}

// FilterByRating keeps products whose rating is at least min, preserving order.
func FilterByRating(products []Product, min float64) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Rating >= min {
			out = append(out, p)
		}
	}
	return out
}
