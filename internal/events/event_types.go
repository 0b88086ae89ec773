package events

import (
	"time"

	"github.com/shaheencodecrafters/marketplace-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserSignedUp EventType = "user_signed_up"
	EventOrderCreated EventType = "order_created"
	EventOrderPaid    EventType = "order_paid"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserSignedUpPayload payload.
type UserSignedUpPayload struct {
	Email    string `json:"email"`
	Provider string `json:"provider,omitempty"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	UserID       string `json:"user_id"`
	ProductID    string `json:"product_id"`
	LocationName string `json:"location_name"`
}

// OrderPaidPayload payload.
type OrderPaidPayload struct {
	UserID        string             `json:"user_id"`
	PaymentMethod string             `json:"payment_method"`
	Status        domain.OrderStatus `json:"status"`
}
