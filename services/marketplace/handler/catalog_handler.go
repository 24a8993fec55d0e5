package handler

import (
	"fmt"
	"net/http"

	catalog "campustrade/internal/catalogService"
	"campustrade/internal/marketerrors"
	"campustrade/services/marketplace/helpers"
	"campustrade/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service CatalogServiceInterface
	auth    AuthServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface, auth AuthServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service, auth: auth}
}

// ListItemsHandler handles GET /items
func (h *CatalogHandler) ListItemsHandler(c *gin.Context) {
	cfg := catalog.FilterFromQuery(c.Request.URL.Query())

	items, err := h.service.ListItems(cfg)
	if err != nil {
		helpers.HandleServiceError(c, "ListItemsHandler", "error listing items", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
	helpers.LogSuccess("ListItemsHandler", "items retrieved successfully", map[string]any{
		"search":   cfg.SearchText,
		"category": cfg.Category,
		"sort":     cfg.SortKey,
		"count":    len(items),
	})
}

// GetItemHandler handles GET /items/:item_id
func (h *CatalogHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	item, err := h.service.GetItem(itemID)
	if err != nil {
		helpers.HandleServiceError(c, "GetItemHandler", "error retrieving item", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// CategoriesHandler handles GET /categories
func (h *CatalogHandler) CategoriesHandler(c *gin.Context) {
	counts, err := h.service.Categories()
	if err != nil {
		helpers.HandleServiceError(c, "CategoriesHandler", "error counting categories", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, counts, "categories retrieved successfully")
}

// CreateListingHandler handles POST /items. The signed-in user is the seller.
func (h *CatalogHandler) CreateListingHandler(c *gin.Context) {
	seller, ok := h.auth.CurrentUser()
	if !ok {
		helpers.HandleServiceError(c, "CreateListingHandler", "no seller", fmt.Errorf("create listing: %w", marketerrors.ErrNoCurrentUser), nil)
		return
	}

	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	item, err := h.service.CreateListing(seller, catalog.ListingRequest{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Condition:       req.Condition,
		Price:           req.Price,
		OriginalPrice:   req.OriginalPrice,
		Location:        req.Location,
		Negotiable:      req.Negotiable,
		DeliveryMethods: req.DeliveryMethods,
		Tags:            req.Tags,
		Images:          req.Images,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", "failed to create listing", err, map[string]any{"seller": seller.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"item_id":  item.ItemID,
		"seller":   seller.UserID,
		"category": item.Category,
		"price":    item.Price,
	})
}
