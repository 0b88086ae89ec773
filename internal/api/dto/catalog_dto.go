package dto

import (
	"time"

	"github.com/shaheencodecrafters/marketplace-service/internal/domain"
)

// CategoryResponse is the wire shape of a category.
type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	AssetID  string `json:"cloudinaryId"`
}

// NewCategoryResponse maps a domain category.
func NewCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		ImageURL: category.ImageURL,
		AssetID:  category.AssetID,
	}
}

// CategoryRequest payload for category create/update; omitted fields are left
// unchanged on update.
type CategoryRequest struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"imageUrl"`
	AssetID  *string `json:"cloudinaryId"`
}

// ProductResponse is the wire shape of a product, optionally with its
// category expanded.
type ProductResponse struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Price      float64           `json:"price"`
	CategoryID string            `json:"categoryId"`
	ImageURL   string            `json:"productImage"`
	AssetID    string            `json:"cloudinaryId"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	Category   *CategoryResponse `json:"category,omitempty"`
}

// NewProductResponse maps a domain product.
func NewProductResponse(product *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:         product.ID,
		Title:      product.Title,
		Price:      product.Price,
		CategoryID: product.CategoryID,
		ImageURL:   product.ImageURL,
		AssetID:    product.AssetID,
		CreatedAt:  product.CreatedAt,
		UpdatedAt:  product.UpdatedAt,
	}
	if product.Category != nil {
		category := NewCategoryResponse(product.Category)
		resp.Category = &category
	}
	return resp
}

// ProductRequest payload for product create/update; omitted fields are left
// unchanged on update.
type ProductRequest struct {
	Title      *string  `json:"title"`
	Price      *float64 `json:"price"`
	CategoryID *string  `json:"categoryId"`
	ImageURL   *string  `json:"productImage"`
	AssetID    *string  `json:"cloudinaryId"`
}

// SliderResponse is the wire shape of a slider.
type SliderResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	AssetID  string `json:"cloudinaryId"`
}

// NewSliderResponse maps a domain slider.
func NewSliderResponse(slider *domain.Slider) SliderResponse {
	return SliderResponse{
		ID:       slider.ID,
		ImageURL: slider.ImageURL,
		AssetID:  slider.AssetID,
	}
}

// SliderRequest payload for slider create/update; omitted fields are left
// unchanged on update.
type SliderRequest struct {
	ImageURL *string `json:"imageUrl"`
	AssetID  *string `json:"cloudinaryId"`
}
