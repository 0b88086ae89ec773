package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaheencodecrafters/marketplace-service/internal/domain"
)

// OrderRepository encapsulates order persistence. ListByUser expands the
// ordered product (with its category) and the assigned technician.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	MarkPaid(ctx context.Context, id, paymentMethod string, paymentID *string, paidAt time.Time) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (user_id, product_id, location_name, location_long, location_lat, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		order.UserID,
		order.ProductID,
		order.LocationName,
		order.LocationLong,
		order.LocationLat,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
        SELECT id, user_id, product_id, location_name, location_long, location_lat,
               status, technician_id, price, payment_method, payment_id, paid_at, created_at
        FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.ProductID,
		&order.LocationName,
		&order.LocationLong,
		&order.LocationLat,
		&order.Status,
		&order.TechnicianID,
		&order.Price,
		&order.PaymentMethod,
		&order.PaymentID,
		&order.PaidAt,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const query = `
        SELECT o.id, o.user_id, o.product_id, o.location_name, o.location_long, o.location_lat,
               o.status, o.technician_id, o.price, o.payment_method, o.payment_id, o.paid_at, o.created_at,
               p.id, p.title, p.price, p.category_id, p.image_url, p.asset_id, p.created_at, p.updated_at,
               c.id, c.name, c.image_url, c.asset_id,
               t.id, t.name, t.email, t.phone
        FROM orders o
        JOIN products p ON p.id = o.product_id
        JOIN categories c ON c.id = p.category_id
        LEFT JOIN users t ON t.id = o.technician_id
        WHERE o.user_id=$1
        ORDER BY o.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var (
			order     domain.Order
			product   domain.Product
			category  domain.Category
			techID    *string
			techName  *string
			techEmail *string
			techPhone *string
		)
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.ProductID,
			&order.LocationName,
			&order.LocationLong,
			&order.LocationLat,
			&order.Status,
			&order.TechnicianID,
			&order.Price,
			&order.PaymentMethod,
			&order.PaymentID,
			&order.PaidAt,
			&order.CreatedAt,
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
			&techID,
			&techName,
			&techEmail,
			&techPhone,
		); err != nil {
			return nil, err
		}
		product.Category = &category
		order.Product = &product
		if techID != nil {
			order.Technician = &domain.Technician{
				ID:    *techID,
				Name:  derefString(techName),
				Email: derefString(techEmail),
				Phone: derefString(techPhone),
			}
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) MarkPaid(ctx context.Context, id, paymentMethod string, paymentID *string, paidAt time.Time) error {
	const query = `
        UPDATE orders SET status=$1, payment_method=$2, payment_id=$3, paid_at=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		domain.OrderStatusPaid,
		paymentMethod,
		paymentID,
		paidAt,
		id,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
