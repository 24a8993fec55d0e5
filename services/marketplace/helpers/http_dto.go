package helpers

import (
	model "campustrade/internal/models"
	"time"
)

// Request DTOs
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateListingRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Category        string   `json:"category" binding:"required"`
	Condition       string   `json:"condition" binding:"required"`
	Price           float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice   float64  `json:"original_price" binding:"gte=0"`
	Location        string   `json:"location"`
	Negotiable      bool     `json:"negotiable"`
	DeliveryMethods []string `json:"delivery_methods"`
	Tags            string   `json:"tags"` // comma separated
	Images          []string `json:"images"`
}

type AddLineRequest struct {
	ItemID         string `json:"item_id" binding:"required"`
	Quantity       int    `json:"quantity" binding:"omitempty,gte=1,lte=99"` // defaults to 1
	DeliveryMethod string `json:"delivery_method"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0,lte=99"`
}

type PromoRequest struct {
	Code string `json:"code" binding:"required"`
}

type CheckoutRequest struct {
	PaymentMethod   string `json:"payment_method" binding:"required"`
	DeliveryMethod  string `json:"delivery_method" binding:"required"`
	DeliveryAddress string `json:"delivery_address"`
}

type AddWishlistRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// Response DTOs
type CartResponse struct {
	UserID  string             `json:"user_id"`
	Lines   []model.CartLine   `json:"lines"`
	Promo   *model.PromoCode   `json:"promo,omitempty"`
	Summary model.PriceSummary `json:"summary"`
	Empty   bool               `json:"empty"`
}

type PromoResponse struct {
	CartResponse
	Applied bool `json:"applied"`
}

type OrdersResponse struct {
	Active    []model.Order `json:"active"`
	Completed []model.Order `json:"completed"`
}

type CheckoutResponse struct {
	Order  model.Order `json:"order"`
	Status string      `json:"payment_status"`
}

type WishlistResponse struct {
	Available   []model.WishlistEntry `json:"available"`
	Unavailable []model.WishlistEntry `json:"unavailable"`
	Count       int                   `json:"count"`
}

type NotificationResponse struct {
	model.Notification
	TimeAgo string `json:"time_ago"`
}

type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

// NewCartResponse pairs a cart with its pricing
func NewCartResponse(c model.Cart, summary model.PriceSummary) CartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []model.CartLine{}
	}
	return CartResponse{
		UserID:  c.UserID,
		Lines:   lines,
		Promo:   c.Promo,
		Summary: summary,
		Empty:   len(lines) == 0,
	}
}

// NewNotificationsResponse renders each notification's age relative to now
func NewNotificationsResponse(list []model.Notification, unread int, now time.Time, format func(now, t time.Time) string) NotificationsResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, NotificationResponse{Notification: n, TimeAgo: format(now, n.Timestamp)})
	}
	return NotificationsResponse{Notifications: out, UnreadCount: unread}
}
