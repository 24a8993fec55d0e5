package server

import (
	"net/http"

	handler "campustrade/services/marketplace/handler"
	"campustrade/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

// Services bundles the backends the HTTP layer talks to
type Services struct {
	Catalog       handler.CatalogServiceInterface
	Auth          handler.AuthServiceInterface
	Carts         handler.CartServiceInterface
	Checkout      handler.CheckoutServiceInterface
	Wishlist      handler.WishlistServiceInterface
	Notifications handler.NotificationStoreInterface
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag every request
	router.Use(RequestLoggerMiddleware) // custom request logging

	catalogHandler := handler.NewCatalogHandler(svc.Catalog, svc.Auth)
	authHandler := handler.NewAuthHandler(svc.Auth)
	cartHandler := handler.NewCartHandler(svc.Carts, svc.Catalog)
	orderHandler := handler.NewOrderHandler(svc.Checkout)
	wishlistHandler := handler.NewWishlistHandler(svc.Wishlist, svc.Catalog, svc.Carts)
	notificationHandler := handler.NewNotificationHandler(svc.Notifications)

	router.GET("/health", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"}, "healthy")
	})

	items := router.Group("/items")
	{
		items.GET("", catalogHandler.ListItemsHandler)
		items.POST("", catalogHandler.CreateListingHandler)
		items.GET("/:item_id", catalogHandler.GetItemHandler)
	}
	router.GET("/categories", catalogHandler.CategoriesHandler)

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.LoginHandler)
		auth.GET("/me", authHandler.CurrentUserHandler)
		auth.POST("/logout", authHandler.LogoutHandler)
	}

	carts := router.Group("/carts/:user_id")
	{
		carts.GET("", cartHandler.GetCartHandler)
		carts.POST("/lines", cartHandler.AddLineHandler)
		carts.PUT("/lines/:item_id", cartHandler.UpdateQuantityHandler)
		carts.DELETE("/lines/:item_id", cartHandler.RemoveLineHandler)
		carts.POST("/promo", cartHandler.ApplyPromoHandler)
		carts.POST("/checkout", orderHandler.CheckoutHandler)
	}

	users := router.Group("/users/:user_id")
	{
		users.GET("/orders", orderHandler.ListOrdersHandler)
		users.GET("/wishlist", wishlistHandler.ListWishlistHandler)
		users.POST("/wishlist", wishlistHandler.AddWishlistHandler)
		users.DELETE("/wishlist/:item_id", wishlistHandler.RemoveWishlistHandler)
		users.POST("/wishlist/:item_id/cart", wishlistHandler.WishlistToCartHandler)
	}

	router.GET("/orders/:order_id", orderHandler.GetOrderHandler)

	notifications := router.Group("/notifications")
	{
		notifications.GET("", notificationHandler.ListNotificationsHandler)
		notifications.POST("/read-all", notificationHandler.MarkAllReadHandler)
		notifications.POST("/:id/read", notificationHandler.MarkReadHandler)
	}

	return router
}

// WithCORS wraps h so browser clients on origins can call the API. Preflight
// requests are answered without reaching h.
func WithCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})(h)
}
