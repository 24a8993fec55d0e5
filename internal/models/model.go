package models

import (
	"strings"
	"time"
)

// Condition is the wear grade a seller assigns to a listing
type Condition string

const (
	ConditionNew       Condition = "New"
	ConditionLikeNew   Condition = "Like New"
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

// Conditions lists every condition grade from best to worst
var Conditions = []Condition{
	ConditionNew,
	ConditionLikeNew,
	ConditionExcellent,
	ConditionGood,
	ConditionFair,
	ConditionPoor,
}

// ParseCondition matches s against the known grades ignoring case, spaces,
// dashes and underscores, so "like_new", "LikeNew" and "Like New" agree.
func ParseCondition(s string) (Condition, bool) {
	key := normalizeCondition(s)
	if key == "" {
		return "", false
	}
	for _, c := range Conditions {
		if normalizeCondition(string(c)) == key {
			return c, true
		}
	}
	return "", false
}

func normalizeCondition(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// Item represents a marketplace listing. Items are immutable once listed.
type Item struct {
	ItemID        string    `json:"item_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price,omitempty"` // zero when the seller gave none
	Condition     Condition `json:"condition"`
	Category      string    `json:"category"`
	Location      string    `json:"location"`
	Seller        string    `json:"seller"`
	Rating        float64   `json:"rating"`
	Views         int       `json:"views"`
	Tags          []string  `json:"tags"`
	CO2Savings    float64   `json:"co2_savings"`
	Images        []string  `json:"images,omitempty"`
	Negotiable    bool      `json:"negotiable"`
	Delivery      []string  `json:"delivery_methods,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// User represents a registered student. Password material never leaves the
// identity provider.
type User struct {
	UserID     string  `json:"user_id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Year       string  `json:"year"`
	Major      string  `json:"major"`
	ProfilePic string  `json:"profile_pic"`
	TrustScore float64 `json:"trust_score"`
	JoinedDate string  `json:"joined_date"`
}

// CartLine is one item-quantity pairing in a cart. The item fields are a
// snapshot taken when the line was added.
type CartLine struct {
	ItemID         string    `json:"item_id"`
	Title          string    `json:"title"`
	Price          float64   `json:"price"`
	OriginalPrice  float64   `json:"original_price,omitempty"`
	Condition      Condition `json:"condition"`
	Seller         string    `json:"seller"`
	Location       string    `json:"location"`
	Quantity       int       `json:"quantity"`
	DeliveryMethod string    `json:"delivery_method"`
	CO2Savings     float64   `json:"co2_savings"`
}

// PromoCode maps a redeemable code to a percentage off the cart subtotal
type PromoCode struct {
	Code       string `json:"code"`
	Percentage int    `json:"percentage"`
}

// Cart holds a user's lines and at most one applied promo
type Cart struct {
	UserID string     `json:"user_id"`
	Lines  []CartLine `json:"lines"`
	Promo  *PromoCode `json:"promo,omitempty"`
}

// PriceSummary is the cart pricing breakdown rounded to cents
type PriceSummary struct {
	Subtotal        float64 `json:"subtotal"`
	TotalSavings    float64 `json:"total_savings"`
	PromoDiscount   float64 `json:"promo_discount"`
	DeliveryFee     float64 `json:"delivery_fee"`
	ServiceFee      float64 `json:"service_fee"`
	Total           float64 `json:"total"`
	TotalCO2Savings float64 `json:"total_co2_savings"`
	ItemCount       int     `json:"item_count"`
}

type NotificationType string

const (
	NotificationMessage   NotificationType = "message"
	NotificationSale      NotificationType = "sale"
	NotificationPriceDrop NotificationType = "price_drop"
	NotificationSystem    NotificationType = "system"
)

// Notification is a timestamped, typed user alert
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	ActionURL string           `json:"action_url,omitempty"`
	Avatar    string           `json:"avatar,omitempty"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Completed reports whether the order has left the active pipeline
func (s OrderStatus) Completed() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Order is a placed checkout
type Order struct {
	OrderID           string       `json:"order_id"`
	UserID            string       `json:"user_id"`
	Lines             []CartLine   `json:"lines"`
	Summary           PriceSummary `json:"summary"`
	Status            OrderStatus  `json:"status"`
	OrderDate         time.Time    `json:"order_date"`
	PaymentMethod     string       `json:"payment_method"`
	DeliveryMethod    string       `json:"delivery_method"`
	DeliveryAddress   string       `json:"delivery_address,omitempty"`
	TrackingNumber    string       `json:"tracking_number,omitempty"`
	EstimatedDelivery time.Time    `json:"estimated_delivery"`
}

// WishlistEntry is an item a user saved for later
type WishlistEntry struct {
	ItemID        string    `json:"item_id"`
	Title         string    `json:"title"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price,omitempty"`
	Condition     Condition `json:"condition"`
	Seller        string    `json:"seller"`
	Location      string    `json:"location"`
	Views         int       `json:"views"`
	TrustScore    float64   `json:"trust_score"`
	CO2Savings    float64   `json:"co2_savings,omitempty"`
	DateAdded     time.Time `json:"date_added"`
	Available     bool      `json:"available"`
}
