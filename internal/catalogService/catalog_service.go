package catalog

import (
	"campustrade/internal/marketerrors"
	"campustrade/internal/models"
	"campustrade/internal/repository"
	"campustrade/utils"
	"fmt"
	"strings"
	"time"
)

// CategoryCount is the number of listings in one category
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CatalogService defines the business logic for browsing and listing items
type CatalogService struct {
	repo repository.CatalogDB
	now  func() time.Time
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo repository.CatalogDB) *CatalogService {
	return &CatalogService{
		repo: repo,
		now:  time.Now,
	}
}

// ListItems runs the filter/sort pipeline over the master catalog
func (s *CatalogService) ListItems(cfg FilterConfig) ([]models.Item, error) {
	items, err := s.repo.ListItems()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}
	return Apply(items, cfg), nil
}

// GetItem returns a single listing
func (s *CatalogService) GetItem(itemID string) (models.Item, error) {
	if itemID == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty item ID", marketerrors.ErrInvalidRequest)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// Categories counts listings per category. Known categories come first in
// their canonical order, anything else follows in order of first appearance.
func (s *CatalogService) Categories() ([]CategoryCount, error) {
	items, err := s.repo.ListItems()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}

	counts := make(map[string]int)
	var extra []string
	for _, item := range items {
		if _, known := ParseCategory(item.Category); !known && counts[item.Category] == 0 {
			extra = append(extra, item.Category)
		}
		counts[item.Category]++
	}

	out := make([]CategoryCount, 0, len(Categories)+len(extra))
	for _, c := range append(append([]string(nil), Categories...), extra...) {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	return out, nil
}

// CreateListing validates a seller's form and appends the new item to the
// catalog.
func (s *CatalogService) CreateListing(seller models.User, req ListingRequest) (models.Item, error) {
	if seller.UserID == "" {
		return models.Item{}, fmt.Errorf("service: %w - missing seller", marketerrors.ErrInvalidRequest)
	}
	category, condition, err := req.normalize()
	if err != nil {
		return models.Item{}, fmt.Errorf("service: %w", err)
	}

	item := models.Item{
		ItemID:        utils.GenerateID(),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Condition:     condition,
		Category:      category,
		Location:      req.Location,
		Seller:        seller.Name,
		Rating:        seller.TrustScore,
		Tags:          ParseTags(req.Tags),
		CO2Savings:    EstimateCO2Savings(category),
		Images:        capImages(req.Images),
		Negotiable:    req.Negotiable,
		Delivery:      req.DeliveryMethods,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.repo.AddItem(item); err != nil {
		return models.Item{}, fmt.Errorf("service: failed to add listing %s: %w", item.ItemID, err)
	}

	utils.Info("listing created", map[string]any{
		"item_id":  item.ItemID,
		"seller":   seller.UserID,
		"category": item.Category,
	})
	return item, nil
}
