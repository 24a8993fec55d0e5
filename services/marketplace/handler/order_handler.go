package handler

import (
	"net/http"

	checkout "campustrade/internal/checkoutService"
	"campustrade/services/marketplace/helpers"
	"campustrade/utils"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service CheckoutServiceInterface
}

func NewOrderHandler(service CheckoutServiceInterface) *OrderHandler {
	return &OrderHandler{service: service}
}

// CheckoutHandler handles POST /carts/:user_id/checkout. The order is
// returned pending; payment settles in the background.
func (h *OrderHandler) CheckoutHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var req helpers.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CheckoutHandler", err)
		return
	}

	order, _, err := h.service.Checkout(userID, checkout.Request{
		PaymentMethod:   req.PaymentMethod,
		DeliveryMethod:  req.DeliveryMethod,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CheckoutHandler", "checkout failed", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusAccepted, helpers.CheckoutResponse{Order: order, Status: "processing"}, "order placed, payment processing")
	helpers.LogSuccess("CheckoutHandler", "order placed", map[string]any{
		"user_id":  userID,
		"order_id": order.OrderID,
		"total":    order.Summary.Total,
	})
}

// ListOrdersHandler handles GET /users/:user_id/orders
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	userID := c.Param("user_id")
	orders, err := h.service.ListOrders(userID)
	if err != nil {
		helpers.HandleServiceError(c, "ListOrdersHandler", "error listing orders", err, map[string]any{"user_id": userID})
		return
	}

	active, completed := checkout.Partition(orders)
	utils.JSONResponse(c, http.StatusOK, helpers.OrdersResponse{Active: active, Completed: completed}, "orders retrieved successfully")
	helpers.LogSuccess("ListOrdersHandler", "orders retrieved successfully", map[string]any{
		"user_id":   userID,
		"active":    len(active),
		"completed": len(completed),
	})
}

// GetOrderHandler handles GET /orders/:order_id
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	orderID := c.Param("order_id")
	order, err := h.service.GetOrder(orderID)
	if err != nil {
		helpers.HandleServiceError(c, "GetOrderHandler", "error retrieving order", err, map[string]any{"order_id": orderID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, order, "order retrieved successfully")
}
