package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaheencodecrafters/marketplace-service/internal/domain"
)

// ProductRepository encapsulates product persistence. Reads that need the
// owning category expanded use the populated variants.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository instantiates repository.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (title, price, category_id, image_url, asset_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		product.Title,
		product.Price,
		product.CategoryID,
		product.ImageURL,
		product.AssetID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

const populatedProductQuery = `
        SELECT p.id, p.title, p.price, p.category_id, p.image_url, p.asset_id, p.created_at, p.updated_at,
               c.id, c.name, c.image_url, c.asset_id
        FROM products p
        JOIN categories c ON c.id = p.category_id`

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	rows, err := r.pool.Query(ctx, populatedProductQuery+` WHERE p.id=$1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}
	product, err := scanPopulatedProduct(rows)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, populatedProductQuery+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanPopulatedProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func (r *productRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	const query = `
        SELECT id, title, price, category_id, image_url, asset_id, created_at, updated_at
        FROM products WHERE category_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Title,
			&product.Price,
			&product.CategoryID,
			&product.ImageURL,
			&product.AssetID,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products SET title=$1, price=$2, category_id=$3, image_url=$4, asset_id=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		product.Title,
		product.Price,
		product.CategoryID,
		product.ImageURL,
		product.AssetID,
		product.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanPopulatedProduct(rows pgx.Rows) (*domain.Product, error) {
	var product domain.Product
	var category domain.Category
	if err := rows.Scan(
		&product.ID,
		&product.Title,
		&product.Price,
		&product.CategoryID,
		&product.ImageURL,
		&product.AssetID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&category.ID,
		&category.Name,
		&category.ImageURL,
		&category.AssetID,
	); err != nil {
		return nil, err
	}
	product.Category = &category
	return &product, nil
}
