package checkout

import (
	"campustrade/internal/marketerrors"
	model "campustrade/internal/models"
	"campustrade/internal/repository"
	"campustrade/utils"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultPaymentDelay is how long a simulated payment takes to settle
const DefaultPaymentDelay = 3 * time.Second

const (
	DeliveryPickup = "pickup"
	DeliveryHome   = "delivery"
)

var paymentMethods = map[string]bool{"card": true, "paypal": true, "venmo": true}

// Request is what the buyer picks on the checkout page
type Request struct {
	PaymentMethod   string
	DeliveryMethod  string
	DeliveryAddress string
}

// CartStore is the slice of the cart service checkout needs
type CartStore interface {
	GetCart(userID string) (model.Cart, error)
	Price(c model.Cart) model.PriceSummary
	RemoveOrdered(userID string, ordered []model.CartLine) error
}

// Notifier posts user notifications
type Notifier interface {
	Add(n model.Notification) (model.Notification, error)
}

// CheckoutService turns carts into orders
type CheckoutService struct {
	carts    CartStore
	orders   repository.OrderDB
	notifier Notifier
	delay    time.Duration
	now      func() time.Time

	mu      sync.Mutex
	pending map[string]*Payment // key: userID -> value: payment in flight
}

// NewCheckoutService creates a new CheckoutService instance
func NewCheckoutService(carts CartStore, orders repository.OrderDB, notifier Notifier, delay time.Duration) *CheckoutService {
	if delay < 0 {
		delay = 0
	}
	return &CheckoutService{
		carts:    carts,
		orders:   orders,
		notifier: notifier,
		delay:    delay,
		now:      time.Now,
		pending:  make(map[string]*Payment),
	}
}

func (r Request) validate() (Request, error) {
	r.PaymentMethod = strings.ToLower(strings.TrimSpace(r.PaymentMethod))
	r.DeliveryMethod = strings.ToLower(strings.TrimSpace(r.DeliveryMethod))
	r.DeliveryAddress = strings.TrimSpace(r.DeliveryAddress)

	if !paymentMethods[r.PaymentMethod] {
		return r, fmt.Errorf("%w - unknown payment method %q", marketerrors.ErrInvalidCheckout, r.PaymentMethod)
	}
	switch r.DeliveryMethod {
	case DeliveryPickup:
		r.DeliveryAddress = ""
	case DeliveryHome:
		if r.DeliveryAddress == "" {
			return r, fmt.Errorf("%w - delivery needs an address", marketerrors.ErrInvalidCheckout)
		}
	default:
		return r, fmt.Errorf("%w - unknown delivery method %q", marketerrors.ErrInvalidCheckout, r.DeliveryMethod)
	}
	return r, nil
}

// Checkout places a pending order for the user's cart and starts the
// payment. When the payment settles the order is confirmed, the ordered
// lines leave the cart and the user is notified.
func (s *CheckoutService) Checkout(userID string, req Request) (model.Order, *Payment, error) {
	if userID == "" {
		return model.Order{}, nil, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidRequest)
	}
	req, err := req.validate()
	if err != nil {
		return model.Order{}, nil, fmt.Errorf("service: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.pending[userID]; busy {
		return model.Order{}, nil, fmt.Errorf("service: %w - a payment is already in progress", marketerrors.ErrInvalidCheckout)
	}

	cart, err := s.carts.GetCart(userID)
	if err != nil {
		return model.Order{}, nil, fmt.Errorf("service: load cart: %w", err)
	}
	if len(cart.Lines) == 0 {
		return model.Order{}, nil, fmt.Errorf("service: %w", marketerrors.ErrEmptyCart)
	}

	now := s.now().UTC()
	eta := now.AddDate(0, 0, 1)
	if req.DeliveryMethod == DeliveryHome {
		eta = now.AddDate(0, 0, 2)
	}

	order := model.Order{
		OrderID:           utils.GenerateOrderID(),
		UserID:            userID,
		Lines:             cart.Lines,
		Summary:           s.carts.Price(cart),
		Status:            model.OrderPending,
		OrderDate:         now,
		PaymentMethod:     req.PaymentMethod,
		DeliveryMethod:    req.DeliveryMethod,
		DeliveryAddress:   req.DeliveryAddress,
		EstimatedDelivery: eta,
	}
	if err := s.orders.SaveOrder(order); err != nil {
		return model.Order{}, nil, fmt.Errorf("service: save order: %w", err)
	}

	payment := startPayment(order.OrderID, s.delay, func() { s.settle(order) })
	s.pending[userID] = payment

	utils.Info("order placed", map[string]any{
		"order_id": order.OrderID,
		"user_id":  userID,
		"total":    order.Summary.Total,
		"payment":  order.PaymentMethod,
	})
	return order, payment, nil
}

func (s *CheckoutService) settle(order model.Order) {
	defer func() {
		s.mu.Lock()
		delete(s.pending, order.UserID)
		s.mu.Unlock()
	}()

	order.Status = model.OrderConfirmed
	if err := s.orders.SaveOrder(order); err != nil {
		utils.Error("confirm order failed", map[string]any{"order_id": order.OrderID, "error": err.Error()})
		return
	}
	if err := s.carts.RemoveOrdered(order.UserID, order.Lines); err != nil {
		utils.Error("remove ordered lines failed", map[string]any{"user_id": order.UserID, "error": err.Error()})
	}
	if _, err := s.notifier.Add(model.Notification{
		Type:      model.NotificationSystem,
		Title:     "Order placed successfully",
		Message:   fmt.Sprintf("Order %s is confirmed. Total $%.2f", order.OrderID, order.Summary.Total),
		ActionURL: "/orders/" + order.OrderID,
	}); err != nil {
		utils.Error("order notification failed", map[string]any{"order_id": order.OrderID, "error": err.Error()})
	}

	utils.Info("payment settled", map[string]any{"order_id": order.OrderID, "user_id": order.UserID})
}

// ListOrders returns the user's orders, newest first
func (s *CheckoutService) ListOrders(userID string) ([]model.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidRequest)
	}
	orders, err := s.orders.GetOrdersByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: list orders: %w", err)
	}
	return orders, nil
}

func (s *CheckoutService) GetOrder(orderID string) (model.Order, error) {
	if orderID == "" {
		return model.Order{}, fmt.Errorf("service: %w - empty order ID", marketerrors.ErrInvalidRequest)
	}
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: get order %s: %w", orderID, err)
	}
	return order, nil
}

// Partition splits orders into active ones and completed (delivered or
// cancelled) ones, keeping their order.
func Partition(orders []model.Order) (active, completed []model.Order) {
	active, completed = []model.Order{}, []model.Order{}
	for _, o := range orders {
		if o.Status.Completed() {
			completed = append(completed, o)
		} else {
			active = append(active, o)
		}
	}
	return active, completed
}
