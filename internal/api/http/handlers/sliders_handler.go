package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shaheencodecrafters/marketplace-service/internal/api/dto"
	"github.com/shaheencodecrafters/marketplace-service/internal/service"
	apperrors "github.com/shaheencodecrafters/marketplace-service/pkg/util"
)

// SlidersHandler exposes slider CRUD endpoints.
type SlidersHandler struct {
	catalog *service.CatalogService
}

// NewSlidersHandler constructs handler.
func NewSlidersHandler(catalogService *service.CatalogService) *SlidersHandler {
	return &SlidersHandler{catalog: catalogService}
}

// List handles GET /api/sliders.
func (h *SlidersHandler) List(c *fiber.Ctx) error {
	sliders, err := h.catalog.ListSliders(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.SliderResponse, 0, len(sliders))
	for i := range sliders {
		items = append(items, dto.NewSliderResponse(&sliders[i]))
	}
	return c.JSON(items)
}

// Get handles GET /api/sliders/:id.
func (h *SlidersHandler) Get(c *fiber.Ctx) error {
	slider, err := h.catalog.GetSlider(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSliderResponse(slider))
}

// Create handles POST /api/sliders.
func (h *SlidersHandler) Create(c *fiber.Ctx) error {
	var req dto.SliderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	slider, err := h.catalog.CreateSlider(c.Context(), service.SliderInput{
		ImageURL: req.ImageURL,
		AssetID:  req.AssetID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Slider created successfully",
		"slider":  dto.NewSliderResponse(slider),
	})
}

// Update handles PUT /api/sliders/:id.
func (h *SlidersHandler) Update(c *fiber.Ctx) error {
	var req dto.SliderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	slider, err := h.catalog.UpdateSlider(c.Context(), c.Params("id"), service.SliderInput{
		ImageURL: req.ImageURL,
		AssetID:  req.AssetID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Slider updated successfully",
		"slider":  dto.NewSliderResponse(slider),
	})
}

// Delete handles DELETE /api/sliders/:id.
func (h *SlidersHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteSlider(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Slider deleted successfully"})
}
