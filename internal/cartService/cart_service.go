package cart

import (
	"campustrade/internal/marketerrors"
	model "campustrade/internal/models"
	"campustrade/utils"
	"fmt"
	"strings"
	"sync"
)

// DefaultDeliveryMethod is used when a line is added without one
const DefaultDeliveryMethod = "Campus Pickup"

// MaxQuantity caps the units of one item a cart line can hold
const MaxQuantity = 99

// CartService owns every user's cart
type CartService struct {
	mu     sync.RWMutex
	carts  map[string]*model.Cart // key: userID -> value: cart
	promos PromoLookup
	fees   Fees
}

// NewCartService creates a new CartService instance
func NewCartService(promos PromoLookup, fees Fees) *CartService {
	return &CartService{
		carts:  make(map[string]*model.Cart),
		promos: promos,
		fees:   fees,
	}
}

// GetCart returns a copy of the user's cart. Users without one get an empty
// cart.
func (s *CartService) GetCart(userID string) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidRequest)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[userID]
	if !ok {
		return model.Cart{UserID: userID, Lines: []model.CartLine{}}, nil
	}
	return copyCart(c), nil
}

// AddLine puts quantity units of item in the cart. Adding an item that is
// already present increases its quantity.
func (s *CartService) AddLine(userID string, item model.Item, quantity int, deliveryMethod string) (model.Cart, error) {
	if userID == "" || item.ItemID == "" {
		return model.Cart{}, fmt.Errorf("service: %w - missing user or item ID", marketerrors.ErrInvalidRequest)
	}
	if quantity < 1 || quantity > MaxQuantity {
		return model.Cart{}, fmt.Errorf("service: %w - quantity must be between 1 and %d", marketerrors.ErrInvalidQuantity, MaxQuantity)
	}
	if deliveryMethod == "" {
		deliveryMethod = DefaultDeliveryMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartLocked(userID)
	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ItemID {
			if c.Lines[i].Quantity > MaxQuantity-quantity {
				return model.Cart{}, fmt.Errorf("service: add item %s: %w - line would exceed %d", item.ItemID, marketerrors.ErrInvalidQuantity, MaxQuantity)
			}
			c.Lines[i].Quantity += quantity
			c.Lines[i].DeliveryMethod = deliveryMethod
			return copyCart(c), nil
		}
	}

	c.Lines = append(c.Lines, model.CartLine{
		ItemID:         item.ItemID,
		Title:          item.Title,
		Price:          item.Price,
		OriginalPrice:  item.OriginalPrice,
		Condition:      item.Condition,
		Seller:         item.Seller,
		Location:       item.Location,
		Quantity:       quantity,
		DeliveryMethod: deliveryMethod,
		CO2Savings:     item.CO2Savings,
	})
	return copyCart(c), nil
}

// UpdateQuantity sets a line's quantity. Zero removes the line; negative
// quantities and quantities above MaxQuantity are rejected.
func (s *CartService) UpdateQuantity(userID, itemID string, quantity int) (model.Cart, error) {
	if userID == "" || itemID == "" {
		return model.Cart{}, fmt.Errorf("service: %w - missing user or item ID", marketerrors.ErrInvalidRequest)
	}
	if quantity < 0 || quantity > MaxQuantity {
		return model.Cart{}, fmt.Errorf("service: %w - quantity must be between 0 and %d", marketerrors.ErrInvalidQuantity, MaxQuantity)
	}
	if quantity == 0 {
		return s.RemoveLine(userID, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartLocked(userID)
	idx := indexOf(c.Lines, itemID)
	if idx < 0 {
		return model.Cart{}, fmt.Errorf("service: update item %s: %w", itemID, marketerrors.ErrLineNotFound)
	}
	c.Lines[idx].Quantity = quantity
	return copyCart(c), nil
}

// RemoveLine deletes exactly one line from the cart
func (s *CartService) RemoveLine(userID, itemID string) (model.Cart, error) {
	if userID == "" || itemID == "" {
		return model.Cart{}, fmt.Errorf("service: %w - missing user or item ID", marketerrors.ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartLocked(userID)
	idx := indexOf(c.Lines, itemID)
	if idx < 0 {
		return model.Cart{}, fmt.Errorf("service: remove item %s: %w", itemID, marketerrors.ErrLineNotFound)
	}
	c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
	return copyCart(c), nil
}

// ApplyPromo upper-cases code and applies it when the promo table knows it,
// replacing any promo already applied. Unknown codes leave the cart
// untouched; the bool reports whether the code was accepted.
func (s *CartService) ApplyPromo(userID, code string) (model.Cart, bool, error) {
	if userID == "" {
		return model.Cart{}, false, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidRequest)
	}

	promo, ok := s.promos.Lookup(strings.ToUpper(code))

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartLocked(userID)
	if !ok {
		utils.Debug("promo code rejected", map[string]any{"user_id": userID, "code": code})
		return copyCart(c), false, nil
	}
	c.Promo = &promo
	return copyCart(c), true, nil
}

// RemoveOrdered takes the ordered lines out of the cart once their order is
// confirmed. A line whose quantity grew after checkout keeps the extra units;
// lines added after checkout stay untouched. The promo is dropped.
func (s *CartService) RemoveOrdered(userID string, ordered []model.CartLine) error {
	if userID == "" {
		return fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		return nil
	}
	for _, line := range ordered {
		idx := indexOf(c.Lines, line.ItemID)
		if idx < 0 {
			continue
		}
		if c.Lines[idx].Quantity > line.Quantity {
			c.Lines[idx].Quantity -= line.Quantity
			continue
		}
		c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
	}
	c.Promo = nil
	if len(c.Lines) == 0 {
		delete(s.carts, userID)
	}
	return nil
}

// Quote prices a cart with the service's fees
func (s *CartService) Quote(c model.Cart) Breakdown {
	return Calculate(c.Lines, c.Promo, s.fees)
}

// Price returns the cart's pricing rounded to cents
func (s *CartService) Price(c model.Cart) model.PriceSummary {
	return s.Quote(c).Summary()
}

func (s *CartService) cartLocked(userID string) *model.Cart {
	c, ok := s.carts[userID]
	if !ok {
		c = &model.Cart{UserID: userID, Lines: []model.CartLine{}}
		s.carts[userID] = c
	}
	return c
}

func indexOf(lines []model.CartLine, itemID string) int {
	for i, line := range lines {
		if line.ItemID == itemID {
			return i
		}
	}
	return -1
}

func copyCart(c *model.Cart) model.Cart {
	out := model.Cart{
		UserID: c.UserID,
		Lines:  append([]model.CartLine{}, c.Lines...),
	}
	if c.Promo != nil {
		promo := *c.Promo
		out.Promo = &promo
	}
	return out
}
