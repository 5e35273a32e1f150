package chatbot

import (
	"strconv"
	"strings"

	"github.com/artem13815/productbot/pkg/catalog"
)

const (
	// NoProductsAvailable is what FormatProducts renders for an empty list.
	NoProductsAvailable = "No products available."
	// ProductDelimiter separates rendered products.
	ProductDelimiter = "\n---\n"
)

// FormatProducts renders up to MaxContextProducts products, one field per line.
func FormatProducts(products []catalog.Product) string {
	if len(products) == 0 {
		return NoProductsAvailable
	}
	if len(products) > MaxContextProducts {
		products = products[:MaxContextProducts]
	}
	blocks := make([]string, 0, len(products))
	for _, p := range products {
		blocks = append(blocks, formatProduct(p))
	}
	return strings.Join(blocks, ProductDelimiter)
}

func formatProduct(p catalog.Product) string {
	var b strings.Builder
	b.WriteString("Product: " + orDefault(p.Title, "Unknown") + "\n")
	b.WriteString("Description: " + orDefault(p.Description, "No description") + "\n")
	b.WriteString("Price: $" + formatNumber(p.Price) + "\n")
	b.WriteString("Discount: " + formatNumber(p.DiscountPercentage) + "%\n")
	b.WriteString("Rating: " + formatNumber(p.Rating) + "/5\n")
	b.WriteString("Stock: " + strconv.Itoa(p.Stock) + " units\n")
	b.WriteString("Brand: " + orDefault(p.Brand, "N/A") + "\n")
	b.WriteString("Category: " + orDefault(p.Category, "N/A"))
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
