package service

import (
	"context"
	"strings"

	"github.com/shaheencodecrafters/marketplace-service/internal/domain"
	"github.com/shaheencodecrafters/marketplace-service/internal/repository"
	apperrors "github.com/shaheencodecrafters/marketplace-service/pkg/util"
)

// CatalogService manages categories, products and sliders.
type CatalogService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	sliders    repository.SliderRepository
}

// CatalogDependencies encapsulates repo requirements for the catalog service.
type CatalogDependencies struct {
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	SliderRepo   repository.SliderRepository
}

// NewCatalogService builds the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		categories: deps.CategoryRepo,
		products:   deps.ProductRepo,
		sliders:    deps.SliderRepo,
	}
}

// CategoryInput carries category attributes; nil fields are left unchanged on update.
type CategoryInput struct {
	Name     *string
	ImageURL *string
	AssetID  *string
}

// ProductInput carries product attributes; nil fields are left unchanged on update.
type ProductInput struct {
	Title      *string
	Price      *float64
	CategoryID *string
	ImageURL   *string
	AssetID    *string
}

// SliderInput carries slider attributes; nil fields are left unchanged on update.
type SliderInput struct {
	ImageURL *string
	AssetID  *string
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return categories, nil
}

// GetCategory returns one category by id.
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if err := validateID(id, "category"); err != nil {
		return nil, err
	}
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapRepoError(err, "Category")
	}
	return category, nil
}

// CreateCategory stores a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	if emptyStr(input.Name) || emptyStr(input.ImageURL) || emptyStr(input.AssetID) {
		return nil, apperrors.NewValidationError("name, imageUrl, cloudinaryId required")
	}
	category := &domain.Category{
		Name:     *input.Name,
		ImageURL: *input.ImageURL,
		AssetID:  *input.AssetID,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperrors.MapRepoError(err, "Category")
	}
	return category, nil
}

// UpdateCategory applies the provided fields to an existing category.
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*domain.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	applyStr(&category.Name, input.Name)
	applyStr(&category.ImageURL, input.ImageURL)
	applyStr(&category.AssetID, input.AssetID)

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, apperrors.MapRepoError(err, "Category")
	}
	return category, nil
}

// DeleteCategory removes a category by id.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := validateID(id, "category"); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return apperrors.MapRepoError(err, "Category")
	}
	return nil
}

// ListProducts returns all products with their category expanded.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return products, nil
}

// ListProductsByCategory returns the products belonging to one category.
func (s *CatalogService) ListProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	if err := validateID(categoryID, "category"); err != nil {
		return nil, err
	}
	products, err := s.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return products, nil
}

// GetProduct returns one product with its category expanded.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if err := validateID(id, "product"); err != nil {
		return nil, err
	}
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapRepoError(err, "Product")
	}
	return product, nil
}

// CreateProduct stores a new product after checking its category reference.
func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if emptyStr(input.Title) || input.Price == nil || emptyStr(input.CategoryID) ||
		emptyStr(input.ImageURL) || emptyStr(input.AssetID) {
		return nil, apperrors.NewValidationError("title, price, categoryId, productImage, cloudinaryId required")
	}
	if err := s.checkCategoryRef(ctx, *input.CategoryID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Title:      *input.Title,
		Price:      *input.Price,
		CategoryID: *input.CategoryID,
		ImageURL:   *input.ImageURL,
		AssetID:    *input.AssetID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, apperrors.MapRepoError(err, "Product")
	}
	return product, nil
}

// UpdateProduct applies the provided fields to an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	applyStr(&product.Title, input.Title)
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.CategoryID != nil {
		if err := s.checkCategoryRef(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}
	applyStr(&product.ImageURL, input.ImageURL)
	applyStr(&product.AssetID, input.AssetID)

	if err := s.products.Update(ctx, product); err != nil {
		return nil, apperrors.MapRepoError(err, "Product")
	}
	updated, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapRepoError(err, "Product")
	}
	return updated, nil
}

// DeleteProduct removes a product by id.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := validateID(id, "product"); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return apperrors.MapRepoError(err, "Product")
	}
	return nil
}

// ListSliders returns all sliders.
func (s *CatalogService) ListSliders(ctx context.Context) ([]domain.Slider, error) {
	sliders, err := s.sliders.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return sliders, nil
}

// GetSlider returns one slider by id.
func (s *CatalogService) GetSlider(ctx context.Context, id string) (*domain.Slider, error) {
	if err := validateID(id, "slider"); err != nil {
		return nil, err
	}
	slider, err := s.sliders.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapRepoError(err, "Slider")
	}
	return slider, nil
}

// CreateSlider stores a new slider.
func (s *CatalogService) CreateSlider(ctx context.Context, input SliderInput) (*domain.Slider, error) {
	if emptyStr(input.ImageURL) || emptyStr(input.AssetID) {
		return nil, apperrors.NewValidationError("imageUrl, cloudinaryId required")
	}
	slider := &domain.Slider{ImageURL: *input.ImageURL, AssetID: *input.AssetID}
	if err := s.sliders.Create(ctx, slider); err != nil {
		return nil, apperrors.MapRepoError(err, "Slider")
	}
	return slider, nil
}

// UpdateSlider applies the provided fields to an existing slider.
func (s *CatalogService) UpdateSlider(ctx context.Context, id string, input SliderInput) (*domain.Slider, error) {
	slider, err := s.GetSlider(ctx, id)
	if err != nil {
		return nil, err
	}
	applyStr(&slider.ImageURL, input.ImageURL)
	applyStr(&slider.AssetID, input.AssetID)

	if err := s.sliders.Update(ctx, slider); err != nil {
		return nil, apperrors.MapRepoError(err, "Slider")
	}
	return slider, nil
}

// DeleteSlider removes a slider by id.
func (s *CatalogService) DeleteSlider(ctx context.Context, id string) error {
	if err := validateID(id, "slider"); err != nil {
		return err
	}
	if err := s.sliders.Delete(ctx, id); err != nil {
		return apperrors.MapRepoError(err, "Slider")
	}
	return nil
}

// checkCategoryRef enforces the product→category reference at the application
// layer; the storage model does not guarantee it.
func (s *CatalogService) checkCategoryRef(ctx context.Context, categoryID string) error {
	if err := validateID(categoryID, "category"); err != nil {
		return err
	}
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return apperrors.MapRepoError(err, "Category")
	}
	return nil
}

func emptyStr(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func applyStr(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = *src
	}
}
