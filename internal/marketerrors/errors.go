package marketerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound  = errors.New("item not found")
	ErrDuplicateItem = errors.New("item already listed")
	ErrOrderNotFound = errors.New("order not found")
)

// Request validation errors
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidListing = errors.New("invalid listing")
)

// Cart and checkout errors
var (
	ErrLineNotFound    = errors.New("cart line not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidCheckout = errors.New("invalid checkout details")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoCurrentUser      = errors.New("no user signed in")
)

// Wishlist errors
var (
	ErrWishlistEntryNotFound = errors.New("wishlist entry not found")
	ErrItemUnavailable       = errors.New("item is no longer available")
)
