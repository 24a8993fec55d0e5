package handler

import (
	catalog "campustrade/internal/catalogService"
	checkout "campustrade/internal/checkoutService"
	model "campustrade/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock_services.go -package=handler

type CatalogServiceInterface interface {
	ListItems(cfg catalog.FilterConfig) ([]model.Item, error)
	GetItem(itemID string) (model.Item, error)
	Categories() ([]catalog.CategoryCount, error)
	CreateListing(seller model.User, req catalog.ListingRequest) (model.Item, error)
}

type AuthServiceInterface interface {
	Login(email, password string) (model.User, error)
	CurrentUser() (model.User, bool)
	Logout() error
}

type CartServiceInterface interface {
	GetCart(userID string) (model.Cart, error)
	AddLine(userID string, item model.Item, quantity int, deliveryMethod string) (model.Cart, error)
	UpdateQuantity(userID, itemID string, quantity int) (model.Cart, error)
	RemoveLine(userID, itemID string) (model.Cart, error)
	ApplyPromo(userID, code string) (model.Cart, bool, error)
	Price(c model.Cart) model.PriceSummary
}

type CheckoutServiceInterface interface {
	Checkout(userID string, req checkout.Request) (model.Order, *checkout.Payment, error)
	ListOrders(userID string) ([]model.Order, error)
	GetOrder(orderID string) (model.Order, error)
}

type WishlistServiceInterface interface {
	List(userID string) ([]model.WishlistEntry, error)
	Add(userID string, item model.Item) (model.WishlistEntry, error)
	Remove(userID, itemID string) error
	AddToCart(userID, itemID string) (model.Cart, error)
}

type NotificationStoreInterface interface {
	List() []model.Notification
	Unread() []model.Notification
	UnreadCount() int
	MarkRead(id string)
	MarkAllRead()
}
