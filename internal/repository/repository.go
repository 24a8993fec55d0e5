package repository

import (
	"campustrade/internal/marketerrors"
	model "campustrade/internal/models"
	"fmt"
	"sort"
	"sync"
)

// CatalogDB defines the storage interface for the master item catalog
type CatalogDB interface {
	AddItem(item model.Item) error
	GetItem(itemID string) (model.Item, error)
	ListItems() ([]model.Item, error)
}

// OrderDB defines the storage interface for placed orders
type OrderDB interface {
	SaveOrder(order model.Order) error
	GetOrder(orderID string) (model.Order, error)
	GetOrdersByUser(userID string) ([]model.Order, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of CatalogDB and
// OrderDB. The catalog keeps listing order so the master list is stable.
type MemoryRepo struct {
	mu         sync.RWMutex
	items      map[string]model.Item  // key: itemID -> value: item
	itemOrder  []string               // itemIDs in listing order
	orders     map[string]model.Order // key: orderID -> value: order
	userOrders map[string][]string    // key: userID -> value: list of orderIDs
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items:      make(map[string]model.Item),
		orders:     make(map[string]model.Order),
		userOrders: make(map[string][]string),
	}
}

// AddItem appends a listing to the catalog
func (r *MemoryRepo) AddItem(item model.Item) error {
	if item.ItemID == "" {
		return fmt.Errorf("add item: %w - empty item ID", marketerrors.ErrInvalidRequest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ItemID]; ok {
		return fmt.Errorf("add item %s: %w", item.ItemID, marketerrors.ErrDuplicateItem)
	}

	item.Tags = append([]string(nil), item.Tags...)
	item.Images = append([]string(nil), item.Images...)
	r.items[item.ItemID] = item
	r.itemOrder = append(r.itemOrder, item.ItemID)
	return nil
}

// GetItem returns a single listing
func (r *MemoryRepo) GetItem(itemID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, marketerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListItems returns a copy of the catalog in listing order
func (r *MemoryRepo) ListItems() ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0, len(r.itemOrder))
	for _, id := range r.itemOrder {
		items = append(items, r.items[id])
	}
	return items, nil
}

// SaveOrder inserts an order or replaces the stored copy with the same ID
func (r *MemoryRepo) SaveOrder(order model.Order) error {
	if order.OrderID == "" || order.UserID == "" {
		return fmt.Errorf("save order: %w - missing order or user ID", marketerrors.ErrInvalidRequest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order.Lines = append([]model.CartLine(nil), order.Lines...)
	if _, exists := r.orders[order.OrderID]; !exists {
		r.userOrders[order.UserID] = append(r.userOrders[order.UserID], order.OrderID)
	}
	r.orders[order.OrderID] = order
	return nil
}

// GetOrder returns a single order
func (r *MemoryRepo) GetOrder(orderID string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return model.Order{}, fmt.Errorf("get order %s: %w", orderID, marketerrors.ErrOrderNotFound)
	}
	return order, nil
}

// GetOrdersByUser returns a user's orders, newest first. A user with no
// orders gets an empty slice.
func (r *MemoryRepo) GetOrdersByUser(userID string) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.userOrders[userID]
	orders := make([]model.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, r.orders[id])
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}
