package domain

import "time"

// OrderStatus represents lifecycle states for an order.
type OrderStatus string

const (
	OrderStatusRequested OrderStatus = "requested"
	OrderStatusPaid      OrderStatus = "paid"
)

// PaymentMethodCash marks in-person payment; it never carries an external payment id.
const PaymentMethodCash = "cash"

// Order is a service request placed by a user for a product at a location.
// Technician assignment happens after creation and may remain empty.
type Order struct {
	ID            string
	UserID        string
	ProductID     string
	LocationName  string
	LocationLong  float64
	LocationLat   float64
	Status        OrderStatus
	TechnicianID  *string
	Price         *float64
	PaymentMethod *string
	PaymentID     *string
	PaidAt        *time.Time
	CreatedAt     time.Time

	// Populated references, filled only by queries that request expansion.
	Product    *Product
	Technician *Technician
}

// Technician is the reduced user projection embedded in populated orders.
type Technician struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// Paid reports whether the order has completed payment.
func (o *Order) Paid() bool {
	return o.Status == OrderStatusPaid
}
