package services

import (
	"context"
	"strings"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

// OrderNotifier hears about every order once it is stored.
type OrderNotifier interface {
	OrderPlaced(order models.Order)
}

type OrderService struct {
	store    store.Store
	notifier OrderNotifier
}

func NewOrderService(s store.Store, notifier OrderNotifier) *OrderService {
	return &OrderService{store: s, notifier: notifier}
}

type PlaceOrderInput struct {
	Items           []models.OrderItem `json:"items"`
	ShippingAddress string             `json:"shipping_address"`
}

// Create places an order for the caller. Line prices are taken as
// submitted and frozen into the order; the total is computed here.
func (s *OrderService) Create(ctx context.Context, caller auth.Principal, in PlaceOrderInput) (models.Order, error) {
	if caller.UserID == "" {
		return models.Order{}, apperr.NewAuth("Unauthorized")
	}
	address := strings.TrimSpace(in.ShippingAddress)
	if len(in.Items) == 0 || address == "" {
		return models.Order{}, apperr.NewValidation("Items and shipping address required")
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return models.Order{}, apperr.NewValidation("Item quantity must be positive")
		}
		if item.Price.IsNegative() {
			return models.Order{}, apperr.NewValidation("Item price cannot be negative")
		}
		if !models.IsCents(item.Price) {
			return models.Order{}, apperr.NewValidation("Item price cannot have more than two decimals")
		}
		if item.Price.GreaterThan(models.MaxPrice) {
			return models.Order{}, apperr.NewValidation("Item price is too large")
		}
	}
	if models.SumItems(in.Items).GreaterThan(models.MaxTotal) {
		return models.Order{}, apperr.NewValidation("Order total is too large")
	}

	order := models.Order{
		UserID:          caller.UserID,
		Items:           append(models.OrderItems(nil), in.Items...),
		Total:           models.SumItems(in.Items),
		Status:          models.OrderStatusPending,
		ShippingAddress: address,
	}
	if err := s.store.CreateOrder(ctx, &order); err != nil {
		return models.Order{}, unavailable(err, "Failed to place order")
	}

	if s.notifier != nil {
		s.notifier.OrderPlaced(order)
	}
	return order, nil
}

// ListMine returns the caller's own orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, caller auth.Principal) ([]models.Order, error) {
	if caller.UserID == "" {
		return nil, apperr.NewAuth("Unauthorized")
	}
	orders, err := s.store.OrdersByUser(ctx, caller.UserID)
	if err != nil {
		return nil, unavailable(err, "Failed to fetch orders")
	}
	return nonNil(orders), nil
}

// ListAll returns every order with its purchaser. Admins only.
func (s *OrderService) ListAll(ctx context.Context, caller auth.Principal) ([]models.PurchasedOrder, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	orders, err := s.store.AllOrders(ctx)
	if err != nil {
		return nil, unavailable(err, "Failed to fetch orders")
	}
	return nonNil(orders), nil
}
