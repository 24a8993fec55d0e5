package server

import (
	"fmt"
	"net/http"
	"time"

	auth "campustrade/internal/authService"
	cart "campustrade/internal/cartService"
	catalog "campustrade/internal/catalogService"
	checkout "campustrade/internal/checkoutService"
	"campustrade/internal/config"
	notification "campustrade/internal/notificationService"
	"campustrade/internal/repository"
	"campustrade/internal/seed"
	"campustrade/internal/storage"
	wishlist "campustrade/internal/wishlistService"
)

// SessionFile is the name of the current-user file inside the session dir
const SessionFile = "session.json"

// App is the wired marketplace: seeded stores, services and the HTTP handler
type App struct {
	Repo          *repository.MemoryRepo
	Catalog       *catalog.CatalogService
	Carts         *cart.CartService
	Checkout      *checkout.CheckoutService
	Wishlist      *wishlist.WishlistService
	Notifications *notification.Store
	Auth          *auth.AuthService

	Router  http.Handler
	Handler http.Handler // Router behind CORS
}

// NewApp builds every store and service from cfg and loads the seed data
func NewApp(cfg *config.Config) (*App, error) {
	doc, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	fees := cart.FeesFromFloat(cfg.DeliveryFee, cfg.ServiceFee)
	repo := repository.NewMemoryRepo()
	carts := cart.NewCartService(cart.DefaultPromoTable(), fees)

	initial, err := doc.NotificationsAt(time.Now())
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	notifications := notification.NewStore(initial)

	identity, err := auth.NewStaticIdentityProvider(doc.Credentials(), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	session, err := storage.NewKVStore(cfg.SessionDir, SessionFile)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	app := &App{
		Repo:          repo,
		Catalog:       catalog.NewCatalogService(repo),
		Carts:         carts,
		Checkout:      checkout.NewCheckoutService(carts, repo, notifications, cfg.PaymentDelay),
		Wishlist:      wishlist.NewWishlistService(carts),
		Notifications: notifications,
		Auth:          auth.NewAuthService(identity, session),
	}

	if err := seed.Populate(doc, seed.Targets{
		Catalog:   repo,
		Orders:    repo,
		Wishlists: app.Wishlist,
		Fees:      fees,
	}); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	router := SetupRouter(Services{
		Catalog:       app.Catalog,
		Auth:          app.Auth,
		Carts:         app.Carts,
		Checkout:      app.Checkout,
		Wishlist:      app.Wishlist,
		Notifications: app.Notifications,
	})
	app.Router = router
	app.Handler = WithCORS(router, cfg.CORSAllowOrigins)
	return app, nil
}
