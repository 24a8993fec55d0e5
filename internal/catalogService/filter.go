package catalog

import (
	model "campustrade/internal/models"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// SortKey selects the ordering applied after filtering
type SortKey string

const (
	SortNone      SortKey = ""
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortPopular   SortKey = "popular"
	SortRating    SortKey = "rating"
)

// Defaults for a fresh filter, matching the browse page's initial controls
const (
	AllCategories   = "All"
	DefaultMinPrice = 0
	DefaultMaxPrice = 1500
)

// PriceRange is an inclusive [Min, Max] bound on item price
type PriceRange struct {
	Min float64
	Max float64
}

// FilterConfig describes one browse query. Start from DefaultFilter: the zero
// value has a [0, 0] price range and only admits free items.
type FilterConfig struct {
	SearchText string
	Category   string // empty, "All" or "All Categories" disables the filter
	PriceRange PriceRange
	Conditions []model.Condition // empty admits every condition
	SortKey    SortKey
}

// DefaultFilter returns a filter that admits every item priced within the
// default range and keeps catalog order.
func DefaultFilter() FilterConfig {
	return FilterConfig{
		Category:   AllCategories,
		PriceRange: PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice},
	}
}

// FilterFromQuery seeds a filter from URL query parameters: search, category,
// sort, min_price, max_price and condition (repeatable or comma separated).
// Malformed prices fall back to the default bound and unknown conditions are
// ignored.
func FilterFromQuery(q url.Values) FilterConfig {
	cfg := DefaultFilter()
	cfg.SearchText = q.Get("search")
	if c := q.Get("category"); c != "" {
		cfg.Category = c
	}
	cfg.SortKey = SortKey(q.Get("sort"))

	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil && v >= 0 {
		cfg.PriceRange.Min = v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil && v >= 0 {
		cfg.PriceRange.Max = v
	}

	for _, raw := range q["condition"] {
		for _, part := range strings.Split(raw, ",") {
			if c, ok := model.ParseCondition(part); ok {
				cfg.Conditions = append(cfg.Conditions, c)
			}
		}
	}
	return cfg
}

// Matches reports whether item passes every active predicate
func (c FilterConfig) Matches(item model.Item) bool {
	return c.matchesSearch(item) &&
		c.matchesCategory(item) &&
		item.Price >= c.PriceRange.Min && item.Price <= c.PriceRange.Max &&
		c.matchesCondition(item)
}

func (c FilterConfig) matchesSearch(item model.Item) bool {
	q := strings.ToLower(c.SearchText)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Title), q) || strings.Contains(strings.ToLower(item.Description), q) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (c FilterConfig) matchesCategory(item model.Item) bool {
	switch c.Category {
	case "", AllCategories, "All Categories":
		return true
	}
	return item.Category == c.Category
}

func (c FilterConfig) matchesCondition(item model.Item) bool {
	if len(c.Conditions) == 0 {
		return true
	}
	for _, cond := range c.Conditions {
		if item.Condition == cond {
			return true
		}
	}
	return false
}

// less returns the strict ordering for the key, or nil when the key keeps
// input order.
func (k SortKey) less() func(a, b model.Item) bool {
	switch k {
	case SortNewest:
		return func(a, b model.Item) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortPriceLow:
		return func(a, b model.Item) bool { return a.Price < b.Price }
	case SortPriceHigh:
		return func(a, b model.Item) bool { return a.Price > b.Price }
	case SortPopular:
		return func(a, b model.Item) bool { return a.Views > b.Views }
	case SortRating:
		return func(a, b model.Item) bool { return a.Rating > b.Rating }
	default:
		return nil
	}
}

// Apply filters and orders items without touching the input slice. Items with
// equal sort keys keep their relative input order.
func Apply(items []model.Item, cfg FilterConfig) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if cfg.Matches(item) {
			out = append(out, item)
		}
	}

	if less := cfg.SortKey.less(); less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}
