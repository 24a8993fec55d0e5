package handler

import (
	"net/http"

	wishlist "campustrade/internal/wishlistService"
	"campustrade/services/marketplace/helpers"
	"campustrade/utils"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	service WishlistServiceInterface
	catalog CatalogServiceInterface
	carts   CartServiceInterface
}

func NewWishlistHandler(service WishlistServiceInterface, catalog CatalogServiceInterface, carts CartServiceInterface) *WishlistHandler {
	return &WishlistHandler{service: service, catalog: catalog, carts: carts}
}

// ListWishlistHandler handles GET /users/:user_id/wishlist
func (h *WishlistHandler) ListWishlistHandler(c *gin.Context) {
	userID := c.Param("user_id")
	entries, err := h.service.List(userID)
	if err != nil {
		helpers.HandleServiceError(c, "ListWishlistHandler", "error listing wishlist", err, map[string]any{"user_id": userID})
		return
	}

	available, unavailable := wishlist.Partition(entries)
	resp := helpers.WishlistResponse{Available: available, Unavailable: unavailable, Count: len(entries)}
	utils.JSONResponse(c, http.StatusOK, resp, "wishlist retrieved successfully")
}

// AddWishlistHandler handles POST /users/:user_id/wishlist
func (h *WishlistHandler) AddWishlistHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var req helpers.AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddWishlistHandler", err)
		return
	}

	item, err := h.catalog.GetItem(req.ItemID)
	if err != nil {
		helpers.HandleServiceError(c, "AddWishlistHandler", "error looking up item", err, map[string]any{"item_id": req.ItemID})
		return
	}

	entry, err := h.service.Add(userID, item)
	if err != nil {
		helpers.HandleServiceError(c, "AddWishlistHandler", "failed to save item", err, map[string]any{"user_id": userID, "item_id": req.ItemID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, entry, "item saved to wishlist")
	helpers.LogSuccess("AddWishlistHandler", "item saved to wishlist", map[string]any{"user_id": userID, "item_id": entry.ItemID})
}

// RemoveWishlistHandler handles DELETE /users/:user_id/wishlist/:item_id
func (h *WishlistHandler) RemoveWishlistHandler(c *gin.Context) {
	userID, itemID := c.Param("user_id"), c.Param("item_id")

	if err := h.service.Remove(userID, itemID); err != nil {
		helpers.HandleServiceError(c, "RemoveWishlistHandler", "failed to remove entry", err, map[string]any{"user_id": userID, "item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "item removed from wishlist")
}

// WishlistToCartHandler handles POST /users/:user_id/wishlist/:item_id/cart
func (h *WishlistHandler) WishlistToCartHandler(c *gin.Context) {
	userID, itemID := c.Param("user_id"), c.Param("item_id")

	cart, err := h.service.AddToCart(userID, itemID)
	if err != nil {
		helpers.HandleServiceError(c, "WishlistToCartHandler", "failed to add saved item to cart", err, map[string]any{"user_id": userID, "item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCartResponse(cart, h.carts.Price(cart)), "item added to cart")
	helpers.LogSuccess("WishlistToCartHandler", "item added to cart", map[string]any{"user_id": userID, "item_id": itemID})
}
