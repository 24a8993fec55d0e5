package wishlist

import (
	"campustrade/internal/marketerrors"
	model "campustrade/internal/models"
	"fmt"
	"sync"
	"time"
)

// WishlistService keeps each user's saved items in the order they were added
type WishlistService struct {
	mu      sync.RWMutex
	entries map[string][]model.WishlistEntry // key: userID -> value: entries
	carts   CartAdder
	now     func() time.Time
}

// NewWishlistService creates a new WishlistService instance
func NewWishlistService(carts CartAdder) *WishlistService {
	return &WishlistService{
		entries: make(map[string][]model.WishlistEntry),
		carts:   carts,
		now:     time.Now,
	}
}

// List returns the user's wishlist. Users without one get an empty list.
func (s *WishlistService) List(userID string) ([]model.WishlistEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidRequest)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.WishlistEntry{}, s.entries[userID]...), nil
}

// Get returns one entry of the user's wishlist
func (s *WishlistService) Get(userID, itemID string) (model.WishlistEntry, error) {
	if userID == "" || itemID == "" {
		return model.WishlistEntry{}, fmt.Errorf("service: %w - missing user or item ID", marketerrors.ErrInvalidRequest)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries[userID] {
		if e.ItemID == itemID {
			return e, nil
		}
	}
	return model.WishlistEntry{}, fmt.Errorf("service: item %s: %w", itemID, marketerrors.ErrWishlistEntryNotFound)
}

// Add saves a snapshot of item. Saving an item twice keeps the first entry.
func (s *WishlistService) Add(userID string, item model.Item) (model.WishlistEntry, error) {
	if userID == "" || item.ItemID == "" {
		return model.WishlistEntry{}, fmt.Errorf("service: %w - missing user or item ID", marketerrors.ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries[userID] {
		if e.ItemID == item.ItemID {
			return e, nil
		}
	}

	entry := model.WishlistEntry{
		ItemID:        item.ItemID,
		Title:         item.Title,
		Price:         item.Price,
		OriginalPrice: item.OriginalPrice,
		Condition:     item.Condition,
		Seller:        item.Seller,
		Location:      item.Location,
		Views:         item.Views,
		TrustScore:    item.Rating,
		CO2Savings:    item.CO2Savings,
		DateAdded:     s.now().UTC(),
		Available:     true,
	}
	s.entries[userID] = append(s.entries[userID], entry)
	return entry, nil
}

// Restore replaces the user's wishlist wholesale
func (s *WishlistService) Restore(userID string, entries []model.WishlistEntry) error {
	if userID == "" {
		return fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[userID] = append([]model.WishlistEntry{}, entries...)
	return nil
}

func (s *WishlistService) Remove(userID, itemID string) error {
	if userID == "" || itemID == "" {
		return fmt.Errorf("service: %w - missing user or item ID", marketerrors.ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[userID]
	for i, e := range list {
		if e.ItemID == itemID {
			s.entries[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("service: remove item %s: %w", itemID, marketerrors.ErrWishlistEntryNotFound)
}

// Partition splits entries into available and no longer available ones
func Partition(entries []model.WishlistEntry) (available, unavailable []model.WishlistEntry) {
	available, unavailable = []model.WishlistEntry{}, []model.WishlistEntry{}
	for _, e := range entries {
		if e.Available {
			available = append(available, e)
		} else {
			unavailable = append(unavailable, e)
		}
	}
	return available, unavailable
}

// AsItem turns an entry back into a catalog item for the cart
func AsItem(e model.WishlistEntry) model.Item {
	return model.Item{
		ItemID:        e.ItemID,
		Title:         e.Title,
		Price:         e.Price,
		OriginalPrice: e.OriginalPrice,
		Condition:     e.Condition,
		Seller:        e.Seller,
		Location:      e.Location,
		Views:         e.Views,
		Rating:        e.TrustScore,
		CO2Savings:    e.CO2Savings,
	}
}

// CartAdder is the cart operation AddToCart needs
type CartAdder interface {
	AddLine(userID string, item model.Item, quantity int, deliveryMethod string) (model.Cart, error)
}

// AddToCart puts one unit of a saved item in the user's cart for campus
// pickup. The entry stays on the wishlist.
func (s *WishlistService) AddToCart(userID, itemID string) (model.Cart, error) {
	entry, err := s.Get(userID, itemID)
	if err != nil {
		return model.Cart{}, err
	}
	if !entry.Available {
		return model.Cart{}, fmt.Errorf("service: item %s: %w", itemID, marketerrors.ErrItemUnavailable)
	}

	c, err := s.carts.AddLine(userID, AsItem(entry), 1, "Campus Pickup")
	if err != nil {
		return model.Cart{}, fmt.Errorf("service: add to cart: %w", err)
	}
	return c, nil
}
