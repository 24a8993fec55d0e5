package seed

import (
	auth "campustrade/internal/authService"
	cart "campustrade/internal/cartService"
	model "campustrade/internal/models"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

//go:embed seed.yaml
var defaultDocument []byte

// Document is the demo data set the service boots with
type Document struct {
	Items         []ItemRecord         `yaml:"items"`
	Users         []UserRecord         `yaml:"users"`
	Notifications []NotificationRecord `yaml:"notifications"`
	Wishlists     []WishlistRecord     `yaml:"wishlists"`
	Orders        []OrderRecord        `yaml:"orders"`
}

type ItemRecord struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Price         float64  `yaml:"price"`
	OriginalPrice float64  `yaml:"original_price"`
	Condition     string   `yaml:"condition"`
	Category      string   `yaml:"category"`
	Seller        string   `yaml:"seller"`
	Location      string   `yaml:"location"`
	CO2Savings    float64  `yaml:"co2_savings"`
	Rating        float64  `yaml:"rating"`
	Views         int      `yaml:"views"`
	Tags          []string `yaml:"tags"`
	Images        []string `yaml:"images"`
	Negotiable    bool     `yaml:"negotiable"`
	Date          string   `yaml:"date"`
}

type UserRecord struct {
	ID         string  `yaml:"id"`
	Email      string  `yaml:"email"`
	Password   string  `yaml:"password"`
	Name       string  `yaml:"name"`
	Year       string  `yaml:"year"`
	Major      string  `yaml:"major"`
	ProfilePic string  `yaml:"profile_pic"`
	TrustScore float64 `yaml:"trust_score"`
	JoinedDate string  `yaml:"joined_date"`
}

// NotificationRecord ages are relative to load time
type NotificationRecord struct {
	ID        string `yaml:"id"`
	Type      string `yaml:"type"`
	Title     string `yaml:"title"`
	Message   string `yaml:"message"`
	Age       string `yaml:"age"`
	Read      bool   `yaml:"read"`
	ActionURL string `yaml:"action_url"`
	Avatar    string `yaml:"avatar"`
}

type WishlistRecord struct {
	UserID  string        `yaml:"user_id"`
	Entries []EntryRecord `yaml:"entries"`
}

type EntryRecord struct {
	ItemID        string  `yaml:"item_id"`
	Title         string  `yaml:"title"`
	Price         float64 `yaml:"price"`
	OriginalPrice float64 `yaml:"original_price"`
	Condition     string  `yaml:"condition"`
	Seller        string  `yaml:"seller"`
	Location      string  `yaml:"location"`
	DateAdded     string  `yaml:"date_added"`
	Available     bool    `yaml:"available"`
	TrustScore    float64 `yaml:"trust_score"`
	Views         int     `yaml:"views"`
	CO2Savings    float64 `yaml:"co2_savings"`
}

type OrderRecord struct {
	ID                string       `yaml:"id"`
	UserID            string       `yaml:"user_id"`
	Status            string       `yaml:"status"`
	OrderDate         string       `yaml:"order_date"`
	PaymentMethod     string       `yaml:"payment_method"`
	DeliveryMethod    string       `yaml:"delivery_method"`
	DeliveryAddress   string       `yaml:"delivery_address"`
	TrackingNumber    string       `yaml:"tracking_number"`
	EstimatedDelivery string       `yaml:"estimated_delivery"`
	Lines             []LineRecord `yaml:"lines"`
}

type LineRecord struct {
	ItemID   string  `yaml:"item_id"`
	Title    string  `yaml:"title"`
	Price    float64 `yaml:"price"`
	Seller   string  `yaml:"seller"`
	Quantity int     `yaml:"quantity"`
}

// Default returns the embedded demo document
func Default() (Document, error) {
	return Parse(defaultDocument)
}

// Load reads a seed document from path, or the embedded one when path is
// empty.
func Load(path string) (Document, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("seed: parse: %w", err)
	}
	return doc, nil
}

// CatalogItems converts item records into listings
func (d Document) CatalogItems() ([]model.Item, error) {
	items := make([]model.Item, 0, len(d.Items))
	for _, r := range d.Items {
		cond, ok := model.ParseCondition(r.Condition)
		if !ok {
			return nil, fmt.Errorf("seed: item %s: unknown condition %q", r.ID, r.Condition)
		}
		created, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("seed: item %s: %w", r.ID, err)
		}
		items = append(items, model.Item{
			ItemID:        r.ID,
			Title:         r.Title,
			Description:   r.Description,
			Price:         r.Price,
			OriginalPrice: r.OriginalPrice,
			Condition:     cond,
			Category:      r.Category,
			Location:      r.Location,
			Seller:        r.Seller,
			Rating:        r.Rating,
			Views:         r.Views,
			Tags:          r.Tags,
			CO2Savings:    r.CO2Savings,
			Images:        r.Images,
			Negotiable:    r.Negotiable,
			CreatedAt:     created,
		})
	}
	return items, nil
}

// Credentials returns the demo accounts for the static identity provider
func (d Document) Credentials() []auth.Credential {
	creds := make([]auth.Credential, 0, len(d.Users))
	for _, r := range d.Users {
		creds = append(creds, auth.Credential{
			User: model.User{
				UserID:     r.ID,
				Email:      r.Email,
				Name:       r.Name,
				Year:       r.Year,
				Major:      r.Major,
				ProfilePic: r.ProfilePic,
				TrustScore: r.TrustScore,
				JoinedDate: r.JoinedDate,
			},
			Password: r.Password,
		})
	}
	return creds
}

// NotificationsAt builds notifications timestamped relative to now
func (d Document) NotificationsAt(now time.Time) ([]model.Notification, error) {
	out := make([]model.Notification, 0, len(d.Notifications))
	for _, r := range d.Notifications {
		var age time.Duration
		if r.Age != "" {
			var err error
			if age, err = time.ParseDuration(r.Age); err != nil {
				return nil, fmt.Errorf("seed: notification %s: %w", r.ID, err)
			}
		}
		out = append(out, model.Notification{
			ID:        r.ID,
			Type:      model.NotificationType(r.Type),
			Title:     r.Title,
			Message:   r.Message,
			Timestamp: now.Add(-age).UTC(),
			Read:      r.Read,
			ActionURL: r.ActionURL,
			Avatar:    r.Avatar,
		})
	}
	return out, nil
}

// WishlistEntries groups wishlist records by user
func (d Document) WishlistEntries() (map[string][]model.WishlistEntry, error) {
	out := make(map[string][]model.WishlistEntry, len(d.Wishlists))
	for _, w := range d.Wishlists {
		for _, r := range w.Entries {
			cond, ok := model.ParseCondition(r.Condition)
			if !ok {
				return nil, fmt.Errorf("seed: wishlist %s item %s: unknown condition %q", w.UserID, r.ItemID, r.Condition)
			}
			added, err := parseDate(r.DateAdded)
			if err != nil {
				return nil, fmt.Errorf("seed: wishlist %s item %s: %w", w.UserID, r.ItemID, err)
			}
			out[w.UserID] = append(out[w.UserID], model.WishlistEntry{
				ItemID:        r.ItemID,
				Title:         r.Title,
				Price:         r.Price,
				OriginalPrice: r.OriginalPrice,
				Condition:     cond,
				Seller:        r.Seller,
				Location:      r.Location,
				Views:         r.Views,
				TrustScore:    r.TrustScore,
				CO2Savings:    r.CO2Savings,
				DateAdded:     added,
				Available:     r.Available,
			})
		}
	}
	return out, nil
}

// OrdersPriced builds historical orders, pricing their lines with fees
func (d Document) OrdersPriced(fees cart.Fees) ([]model.Order, error) {
	out := make([]model.Order, 0, len(d.Orders))
	for _, r := range d.Orders {
		ordered, err := parseDate(r.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("seed: order %s: %w", r.ID, err)
		}
		eta, err := parseDate(r.EstimatedDelivery)
		if err != nil {
			return nil, fmt.Errorf("seed: order %s: %w", r.ID, err)
		}

		lines := make([]model.CartLine, 0, len(r.Lines))
		for _, l := range r.Lines {
			qty := l.Quantity
			if qty == 0 {
				qty = 1
			}
			lines = append(lines, model.CartLine{
				ItemID:         l.ItemID,
				Title:          l.Title,
				Price:          l.Price,
				Seller:         l.Seller,
				Quantity:       qty,
				DeliveryMethod: r.DeliveryMethod,
			})
		}

		out = append(out, model.Order{
			OrderID:           r.ID,
			UserID:            r.UserID,
			Lines:             lines,
			Summary:           cart.Calculate(lines, nil, fees).Summary(),
			Status:            model.OrderStatus(r.Status),
			OrderDate:         ordered,
			PaymentMethod:     r.PaymentMethod,
			DeliveryMethod:    r.DeliveryMethod,
			DeliveryAddress:   r.DeliveryAddress,
			TrackingNumber:    r.TrackingNumber,
			EstimatedDelivery: eta,
		})
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q: %w", s, err)
	}
	return t, nil
}
