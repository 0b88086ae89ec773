package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shaheencodecrafters/marketplace-service/internal/api/dto"
	"github.com/shaheencodecrafters/marketplace-service/internal/domain"
	"github.com/shaheencodecrafters/marketplace-service/internal/service"
	apperrors "github.com/shaheencodecrafters/marketplace-service/pkg/util"
)

// ProductsHandler exposes product CRUD endpoints.
type ProductsHandler struct {
	catalog *service.CatalogService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(catalogService *service.CatalogService) *ProductsHandler {
	return &ProductsHandler{catalog: catalogService}
}

// List handles GET /api/products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.catalog.ListProducts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(productResponses(products))
}

// ListByCategory handles GET /api/products/category/:categoryId.
func (h *ProductsHandler) ListByCategory(c *fiber.Ctx) error {
	products, err := h.catalog.ListProductsByCategory(c.Context(), c.Params("categoryId"))
	if err != nil {
		return err
	}
	return c.JSON(productResponses(products))
}

// Get handles GET /api/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.catalog.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductResponse(product))
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	product, err := h.catalog.CreateProduct(c.Context(), productInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": dto.NewProductResponse(product),
	})
}

// Update handles PUT /api/products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	product, err := h.catalog.UpdateProduct(c.Context(), c.Params("id"), productInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": dto.NewProductResponse(product),
	})
}

// Delete handles DELETE /api/products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

func productInput(req dto.ProductRequest) service.ProductInput {
	return service.ProductInput{
		Title:      req.Title,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		ImageURL:   req.ImageURL,
		AssetID:    req.AssetID,
	}
}

func productResponses(products []domain.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, dto.NewProductResponse(&products[i]))
	}
	return items
}
