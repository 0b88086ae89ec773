package dto

import (
	"time"

	"github.com/shaheencodecrafters/marketplace-service/internal/domain"
)

// CreateOrderRequest payload for order placement. UserID is honored only on
// the guest fallback path; a session identity always wins.
type CreateOrderRequest struct {
	UserID       string   `json:"userId"`
	ProductID    string   `json:"productId"`
	LocationName string   `json:"locationName"`
	LocationLong *float64 `json:"locationLong"`
	LocationLat  *float64 `json:"locationLat"`
}

// PaymentRequest payload for payment confirmation.
type PaymentRequest struct {
	OrderID       string `json:"orderId"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentID     string `json:"paymentId"`
}

// TechnicianResponse is the reduced projection of an assigned technician.
type TechnicianResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderResponse is the wire shape of an order, optionally populated.
type OrderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	ProductID     string              `json:"productId"`
	LocationName  string              `json:"locationName"`
	LocationLong  float64             `json:"locationLong"`
	LocationLat   float64             `json:"locationLat"`
	Status        domain.OrderStatus  `json:"status"`
	TechnicianID  *string             `json:"technicianId"`
	Price         *float64            `json:"price"`
	PaymentMethod *string             `json:"paymentMethod,omitempty"`
	PaymentID     *string             `json:"paymentId,omitempty"`
	PaidAt        *time.Time          `json:"paidAt,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	Product       *ProductResponse    `json:"product,omitempty"`
	Technician    *TechnicianResponse `json:"technician,omitempty"`
}

// NewOrderResponse maps a domain order, carrying populated references when present.
func NewOrderResponse(order *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		ProductID:     order.ProductID,
		LocationName:  order.LocationName,
		LocationLong:  order.LocationLong,
		LocationLat:   order.LocationLat,
		Status:        order.Status,
		TechnicianID:  order.TechnicianID,
		Price:         order.Price,
		PaymentMethod: order.PaymentMethod,
		PaymentID:     order.PaymentID,
		PaidAt:        order.PaidAt,
		CreatedAt:     order.CreatedAt,
	}
	if order.Product != nil {
		product := NewProductResponse(order.Product)
		resp.Product = &product
	}
	if order.Technician != nil {
		resp.Technician = &TechnicianResponse{
			ID:    order.Technician.ID,
			Name:  order.Technician.Name,
			Email: order.Technician.Email,
			Phone: order.Technician.Phone,
		}
	}
	return resp
}
