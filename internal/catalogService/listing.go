package catalog

import (
	"campustrade/internal/marketerrors"
	model "campustrade/internal/models"
	"fmt"
	"strings"
)

// MaxListingImages caps the photos kept on a listing
const MaxListingImages = 5

// Categories are the listing categories a seller can choose from
var Categories = []string{"Electronics", "Books", "Furniture", "Clothing", "Sports", "Music", "Other"}

// co2 estimate in kg saved by buying second hand, keyed by category
var co2ByCategory = map[string]float64{
	"Electronics": 35,
	"Books":       2,
	"Furniture":   15,
}

const defaultCO2Savings = 5

// ListingRequest carries the seller's form input for a new listing
type ListingRequest struct {
	Title           string
	Description     string
	Category        string
	Condition       string
	Price           float64
	OriginalPrice   float64
	Location        string
	Negotiable      bool
	DeliveryMethods []string
	Tags            string
	Images          []string
}

// ParseCategory matches s case-insensitively against Categories
func ParseCategory(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(c, s) {
			return c, true
		}
	}
	return "", false
}

// EstimateCO2Savings returns the kg of CO2 a sale in category saves
func EstimateCO2Savings(category string) float64 {
	if v, ok := co2ByCategory[category]; ok {
		return v
	}
	return defaultCO2Savings
}

// ParseTags splits a comma separated tag string, trimming and lower-casing
// each tag and dropping empties and repeats.
func ParseTags(raw string) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// normalize validates the request and resolves enum fields
func (r ListingRequest) normalize() (string, model.Condition, error) {
	if strings.TrimSpace(r.Title) == "" {
		return "", "", fmt.Errorf("%w - title is required", marketerrors.ErrInvalidListing)
	}
	category, ok := ParseCategory(r.Category)
	if !ok {
		return "", "", fmt.Errorf("%w - unknown category %q", marketerrors.ErrInvalidListing, r.Category)
	}
	condition, ok := model.ParseCondition(r.Condition)
	if !ok {
		return "", "", fmt.Errorf("%w - unknown condition %q", marketerrors.ErrInvalidListing, r.Condition)
	}
	if r.Price <= 0 {
		return "", "", fmt.Errorf("%w - price must be positive", marketerrors.ErrInvalidListing)
	}
	if r.OriginalPrice < 0 {
		return "", "", fmt.Errorf("%w - original price cannot be negative", marketerrors.ErrInvalidListing)
	}
	return category, condition, nil
}

func capImages(images []string) []string {
	kept := make([]string, 0, MaxListingImages)
	for _, img := range images {
		if strings.TrimSpace(img) == "" {
			continue
		}
		if len(kept) == MaxListingImages {
			break
		}
		kept = append(kept, img)
	}
	return kept
}
