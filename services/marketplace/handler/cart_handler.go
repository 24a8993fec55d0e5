package handler

import (
	"net/http"

	"campustrade/services/marketplace/helpers"
	"campustrade/utils"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	carts   CartServiceInterface
	catalog CatalogServiceInterface
}

func NewCartHandler(carts CartServiceInterface, catalog CatalogServiceInterface) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog}
}

// GetCartHandler handles GET /carts/:user_id
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	userID := c.Param("user_id")
	cart, err := h.carts.GetCart(userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetCartHandler", "error retrieving cart", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCartResponse(cart, h.carts.Price(cart)), "cart retrieved successfully")
}

// AddLineHandler handles POST /carts/:user_id/lines
func (h *CartHandler) AddLineHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var req helpers.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddLineHandler", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.catalog.GetItem(req.ItemID)
	if err != nil {
		helpers.HandleServiceError(c, "AddLineHandler", "error looking up item", err, map[string]any{"item_id": req.ItemID})
		return
	}

	cart, err := h.carts.AddLine(userID, item, req.Quantity, req.DeliveryMethod)
	if err != nil {
		helpers.HandleServiceError(c, "AddLineHandler", "failed to add item to cart", err, map[string]any{
			"user_id": userID,
			"item_id": req.ItemID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewCartResponse(cart, h.carts.Price(cart)), "item added to cart")
	helpers.LogSuccess("AddLineHandler", "item added to cart", map[string]any{
		"user_id":  userID,
		"item_id":  item.ItemID,
		"quantity": req.Quantity,
	})
}

// UpdateQuantityHandler handles PUT /carts/:user_id/lines/:item_id
func (h *CartHandler) UpdateQuantityHandler(c *gin.Context) {
	userID, itemID := c.Param("user_id"), c.Param("item_id")

	var req helpers.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateQuantityHandler", err)
		return
	}

	cart, err := h.carts.UpdateQuantity(userID, itemID, *req.Quantity)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateQuantityHandler", "failed to update quantity", err, map[string]any{
			"user_id": userID,
			"item_id": itemID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCartResponse(cart, h.carts.Price(cart)), "cart updated successfully")
}

// RemoveLineHandler handles DELETE /carts/:user_id/lines/:item_id
func (h *CartHandler) RemoveLineHandler(c *gin.Context) {
	userID, itemID := c.Param("user_id"), c.Param("item_id")

	cart, err := h.carts.RemoveLine(userID, itemID)
	if err != nil {
		helpers.HandleServiceError(c, "RemoveLineHandler", "failed to remove line", err, map[string]any{
			"user_id": userID,
			"item_id": itemID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCartResponse(cart, h.carts.Price(cart)), "item removed from cart")
}

// ApplyPromoHandler handles POST /carts/:user_id/promo. Unknown codes are
// not an error; the cart comes back unchanged with applied=false.
func (h *CartHandler) ApplyPromoHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var req helpers.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ApplyPromoHandler", err)
		return
	}

	cart, applied, err := h.carts.ApplyPromo(userID, req.Code)
	if err != nil {
		helpers.HandleServiceError(c, "ApplyPromoHandler", "failed to apply promo", err, map[string]any{"user_id": userID})
		return
	}

	resp := helpers.PromoResponse{
		CartResponse: helpers.NewCartResponse(cart, h.carts.Price(cart)),
		Applied:      applied,
	}
	message := "promo code applied"
	if !applied {
		message = "promo code not recognized"
	}

	utils.JSONResponse(c, http.StatusOK, resp, message)
	helpers.LogSuccess("ApplyPromoHandler", message, map[string]any{"user_id": userID, "applied": applied})
}
