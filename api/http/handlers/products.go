package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/productbot/api/http/presenter"
	"github.com/artem13815/productbot/pkg/catalog"
)

// ProductReader is the catalog surface exposed over HTTP.
type ProductReader interface {
	ListAll(ctx context.Context) (catalog.ProductList, error)
	GetByID(ctx context.Context, id int) (*catalog.Product, error)
}

type ProductsHandler struct {
	catalog ProductReader
}

func NewProductsHandler(catalog ProductReader) *ProductsHandler {
	return &ProductsHandler{catalog: catalog}
}

// List returns the whole upstream catalog.
// @Summary Get all products
// @Tags    products
// @Produce json
// @Success 200 {object} catalog.ProductList
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /api/products [get]
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	out, err := h.catalog.ListAll(c.UserContext())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Failed to fetch products: "+err.Error())
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Get returns one product by id.
// @Summary Get a product
// @Tags    products
// @Produce json
// @Param   id path int true "Product ID"
// @Success 200 {object} catalog.Product
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /api/products/{id} [get]
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return presenter.Error(c, http.StatusBadRequest, "invalid product id")
	}
	p, err := h.catalog.GetByID(c.UserContext(), id)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Failed to fetch product: "+err.Error())
	}
	if p == nil {
		return presenter.Error(c, http.StatusNotFound, "Product not found")
	}
	return presenter.JSON(c, http.StatusOK, p)
}
