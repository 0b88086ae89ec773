package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shaheencodecrafters/marketplace-service/internal/config"
	"github.com/shaheencodecrafters/marketplace-service/internal/domain"
	"github.com/shaheencodecrafters/marketplace-service/internal/events"
	"github.com/shaheencodecrafters/marketplace-service/internal/repository"
	apperrors "github.com/shaheencodecrafters/marketplace-service/pkg/util"
)

// OrderService coordinates order placement, listing and payment.
type OrderService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	allowGuest bool
	now        func() time.Time
}

// OrderDependencies encapsulates repo requirements for the order service.
type OrderDependencies struct {
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// OrderCreateInput is the order placement payload.
type OrderCreateInput struct {
	UserID       string
	ProductID    string
	LocationName string
	LocationLong *float64
	LocationLat  *float64
}

// PaymentInput is the payment confirmation payload.
type PaymentInput struct {
	OrderID       string
	PaymentMethod string
	PaymentID     string
}

// NewOrderService builds the service.
func NewOrderService(cfg config.Config, deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		products:   deps.ProductRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		allowGuest: cfg.Orders.AllowGuest,
		now:        time.Now,
	}
}

// CreateOrder places a new order owned by the session user. When guest orders
// are enabled and no session exists, the body-supplied owner is accepted after
// validation; the session identity always wins over the body field.
func (s *OrderService) CreateOrder(ctx context.Context, sessionUserID string, input OrderCreateInput) (*domain.Order, error) {
	ownerID := sessionUserID
	if ownerID == "" {
		if !s.allowGuest || input.UserID == "" {
			return nil, apperrors.NewUnauthorized("Unauthorized")
		}
		if err := validateID(input.UserID, "user"); err != nil {
			return nil, err
		}
		if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
			return nil, apperrors.MapRepoError(err, "User")
		}
		ownerID = input.UserID
	}

	if strings.TrimSpace(input.LocationName) == "" || input.LocationLong == nil || input.LocationLat == nil {
		return nil, apperrors.NewValidationError("locationName, locationLong, locationLat required")
	}
	if err := validateID(input.ProductID, "product"); err != nil {
		return nil, err
	}
	if _, err := s.products.GetByID(ctx, input.ProductID); err != nil {
		return nil, apperrors.MapRepoError(err, "Product")
	}

	order := &domain.Order{
		UserID:       ownerID,
		ProductID:    input.ProductID,
		LocationName: input.LocationName,
		LocationLong: *input.LocationLong,
		LocationLat:  *input.LocationLat,
		Status:       domain.OrderStatusRequested,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.MapRepoError(err, "Order")
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderCreated,
			SubjectID: order.ID,
			Timestamp: s.now(),
			Payload: events.OrderCreatedPayload{
				UserID:       order.UserID,
				ProductID:    order.ProductID,
				LocationName: order.LocationName,
			},
		})
	}
	return order, nil
}

// ListUserOrders returns the populated orders of the given user, newest first.
// Only the owner may read them; a zero-order history is an empty list, not an
// error.
func (s *OrderService) ListUserOrders(ctx context.Context, sessionUserID, userID string) ([]domain.Order, error) {
	if err := validateID(userID, "user"); err != nil {
		return nil, err
	}
	if sessionUserID == "" {
		return nil, apperrors.NewUnauthorized("Unauthorized")
	}
	if sessionUserID != userID {
		return nil, apperrors.NewForbidden("Unauthorized access")
	}

	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return orders, nil
}

// ProcessPayment marks an order as paid and stamps the payment details. An
// already-paid order is left untouched, so repeated confirmations are safe.
func (s *OrderService) ProcessPayment(ctx context.Context, input PaymentInput) error {
	if err := validateID(input.OrderID, "order"); err != nil {
		return err
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		return apperrors.NewValidationError("paymentMethod required")
	}

	order, err := s.orders.GetByID(ctx, input.OrderID)
	if err != nil {
		return apperrors.MapRepoError(err, "Order")
	}
	if order.Paid() {
		return nil
	}

	var paymentID *string
	if input.PaymentMethod != domain.PaymentMethodCash && input.PaymentID != "" {
		paymentID = &input.PaymentID
	}

	if err := s.orders.MarkPaid(ctx, order.ID, input.PaymentMethod, paymentID, s.now()); err != nil {
		return apperrors.MapRepoError(err, "Order")
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderPaid,
			SubjectID: order.ID,
			Timestamp: s.now(),
			Payload: events.OrderPaidPayload{
				UserID:        order.UserID,
				PaymentMethod: input.PaymentMethod,
				Status:        domain.OrderStatusPaid,
			},
		})
	}
	return nil
}
