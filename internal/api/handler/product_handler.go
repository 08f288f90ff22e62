package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ibretsam/eCommerce-API/internal/api/metrics"
	"github.com/ibretsam/eCommerce-API/internal/core/domain"
	"github.com/ibretsam/eCommerce-API/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List returns the full catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Router       /api/product [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns a single product by id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]any
// @Router       /api/product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a product to the catalog.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]any
// @Router       /api/product [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		PictureURL:  req.PictureURL,
		ProductType: req.ProductType,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update applies a partial update to a product.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/product/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		PictureURL:  req.PictureURL,
		ProductType: req.ProductType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product from the catalog.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  deleteProductResponse
// @Failure      404  {object}  map[string]any
// @Router       /api/product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ProductsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deleteProductResponse{Deleted: true})
}

// Search matches products by name, case-insensitively.
//
// @Summary      Search products by name
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        name  query    string  false  "Substring to match"
// @Success      200   {array}  domain.Product
// @Router       /api/product/search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.service.Search(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Seed inserts the demo catalog when the collection is empty.
//
// @Summary      Seed the demo catalog
// @Tags         products
// @Produce      json
// @Success      200  {object}  seedResponse
// @Router       /api/product/seed [post]
func (h *ProductHandler) Seed(c echo.Context) error {
	inserted, err := h.service.Seed(c.Request().Context())
	if err != nil {
		return err
	}

	result := "seeded"
	if inserted == 0 {
		result = "skipped"
	}
	metrics.SeedRunsTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, seedResponse{Inserted: inserted})
}
