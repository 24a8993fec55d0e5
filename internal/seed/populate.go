package seed

import (
	cart "campustrade/internal/cartService"
	model "campustrade/internal/models"
	"campustrade/internal/repository"
	"campustrade/utils"
	"fmt"
)

// WishlistRestorer accepts a user's saved entries
type WishlistRestorer interface {
	Restore(userID string, entries []model.WishlistEntry) error
}

// Targets are the stores Populate fills
type Targets struct {
	Catalog   repository.CatalogDB
	Orders    repository.OrderDB
	Wishlists WishlistRestorer
	Fees      cart.Fees
}

// Populate loads the document's items, orders and wishlists into the stores
func Populate(doc Document, t Targets) error {
	items, err := doc.CatalogItems()
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := t.Catalog.AddItem(item); err != nil {
			return fmt.Errorf("seed: add item %s: %w", item.ItemID, err)
		}
	}

	orders, err := doc.OrdersPriced(t.Fees)
	if err != nil {
		return err
	}
	for _, order := range orders {
		if err := t.Orders.SaveOrder(order); err != nil {
			return fmt.Errorf("seed: save order %s: %w", order.OrderID, err)
		}
	}

	wishlists, err := doc.WishlistEntries()
	if err != nil {
		return err
	}
	for userID, entries := range wishlists {
		if err := t.Wishlists.Restore(userID, entries); err != nil {
			return fmt.Errorf("seed: wishlist for %s: %w", userID, err)
		}
	}

	utils.Info("seed data loaded", map[string]any{
		"items":     len(items),
		"orders":    len(orders),
		"wishlists": len(wishlists),
	})
	return nil
}
