package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shaheencodecrafters/marketplace-service/internal/api/dto"
	"github.com/shaheencodecrafters/marketplace-service/internal/service"
	apperrors "github.com/shaheencodecrafters/marketplace-service/pkg/util"
)

// CategoriesHandler exposes category CRUD endpoints.
type CategoriesHandler struct {
	catalog *service.CatalogService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(catalogService *service.CatalogService) *CategoriesHandler {
	return &CategoriesHandler{catalog: catalogService}
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, dto.NewCategoryResponse(&categories[i]))
	}
	return c.JSON(items)
}

// Get handles GET /api/categories/:id.
func (h *CategoriesHandler) Get(c *fiber.Ctx) error {
	category, err := h.catalog.GetCategory(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCategoryResponse(category))
}

// Create handles POST /api/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	category, err := h.catalog.CreateCategory(c.Context(), service.CategoryInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		AssetID:  req.AssetID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":  "Category created successfully",
		"category": dto.NewCategoryResponse(category),
	})
}

// Update handles PUT /api/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	category, err := h.catalog.UpdateCategory(c.Context(), c.Params("id"), service.CategoryInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		AssetID:  req.AssetID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":  "Category updated successfully",
		"category": dto.NewCategoryResponse(category),
	})
}

// Delete handles DELETE /api/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
