package catalog

import (
	model "campustrade/internal/models"
	"fmt"
	"math/rand"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// sampleCatalog mirrors a slice of the seeded marketplace
func sampleCatalog() []model.Item {
	return []model.Item{
		{ItemID: "1", Title: "MacBook Pro 13\" 2021", Description: "Barely used MacBook Pro with M1 chip.", Price: 899, OriginalPrice: 1299, Condition: model.ConditionExcellent, Category: "Electronics", Rating: 4.8, Views: 45, Tags: []string{"laptop", "apple"}, CreatedAt: day("2024-05-28")},
		{ItemID: "2", Title: "Calculus Textbook Bundle", Description: "Complete calculus textbook.", Price: 45, OriginalPrice: 120, Condition: model.ConditionGood, Category: "Books", Rating: 4.9, Views: 32, Tags: []string{"textbook", "math"}, CreatedAt: day("2024-05-25")},
		{ItemID: "3", Title: "Ergonomic Gaming Chair", Description: "Comfortable chair.", Price: 120, OriginalPrice: 250, Condition: model.ConditionLikeNew, Category: "Furniture", Rating: 4.6, Views: 28, Tags: []string{"chair", "gaming"}, CreatedAt: day("2024-05-22")},
		{ItemID: "4", Title: "iPhone 13 Pro", Description: "Comes with original box.", Price: 650, OriginalPrice: 999, Condition: model.ConditionExcellent, Category: "Electronics", Rating: 4.7, Views: 67, Tags: []string{"phone", "apple"}, CreatedAt: day("2024-05-30")},
		{ItemID: "7", Title: "Wireless Headphones", Description: "Noise-cancelling.", Price: 120, OriginalPrice: 220, Condition: model.ConditionExcellent, Category: "Electronics", Rating: 4.7, Views: 38, Tags: []string{"audio"}, CreatedAt: day("2024-05-27")},
	}
}

func ids(items []model.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ItemID
	}
	return out
}

func TestApply_Filters(t *testing.T) {
	t.Parallel()

	items := sampleCatalog()

	tests := []struct {
		name    string
		mutate  func(cfg *FilterConfig)
		wantIDs []string
	}{
		{name: "defaults_keep_everything", mutate: func(cfg *FilterConfig) {}, wantIDs: []string{"1", "2", "3", "4", "7"}},
		{name: "search_title_case_insensitive", mutate: func(cfg *FilterConfig) { cfg.SearchText = "MACBOOK" }, wantIDs: []string{"1"}},
		{name: "search_description", mutate: func(cfg *FilterConfig) { cfg.SearchText = "original box" }, wantIDs: []string{"4"}},
		{name: "search_tag", mutate: func(cfg *FilterConfig) { cfg.SearchText = "apple" }, wantIDs: []string{"1", "4"}},
		{name: "search_whitespace_only", mutate: func(cfg *FilterConfig) { cfg.SearchText = "   " }, wantIDs: []string{}},
		{name: "search_keeps_inner_space", mutate: func(cfg *FilterConfig) { cfg.SearchText = "macbook " }, wantIDs: []string{"1"}},
		{name: "search_trailing_space_misses_tag", mutate: func(cfg *FilterConfig) { cfg.SearchText = "apple " }, wantIDs: []string{}},
		{name: "category_books", mutate: func(cfg *FilterConfig) { cfg.Category = "Books" }, wantIDs: []string{"2"}},
		{name: "category_all_categories_label", mutate: func(cfg *FilterConfig) { cfg.Category = "All Categories" }, wantIDs: []string{"1", "2", "3", "4", "7"}},
		{name: "category_is_case_sensitive", mutate: func(cfg *FilterConfig) { cfg.Category = "books" }, wantIDs: []string{}},
		{name: "price_range_inclusive", mutate: func(cfg *FilterConfig) { cfg.PriceRange = PriceRange{Min: 45, Max: 120} }, wantIDs: []string{"2", "3", "7"}},
		{name: "price_range_empty", mutate: func(cfg *FilterConfig) { cfg.PriceRange = PriceRange{Min: 2000, Max: 3000} }, wantIDs: []string{}},
		{name: "conditions_set", mutate: func(cfg *FilterConfig) {
			cfg.Conditions = []model.Condition{model.ConditionGood, model.ConditionLikeNew}
		}, wantIDs: []string{"2", "3"}},
		{name: "combined_predicates", mutate: func(cfg *FilterConfig) {
			cfg.Category = "Electronics"
			cfg.SearchText = "apple"
			cfg.PriceRange = PriceRange{Min: 0, Max: 700}
		}, wantIDs: []string{"4"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultFilter()
			tc.mutate(&cfg)

			got := Apply(items, cfg)
			require.Equal(t, tc.wantIDs, ids(got))
			for _, item := range got {
				require.True(t, cfg.Matches(item))
			}
		})
	}
}

// Two items priced $899 and $45, filtered to Books, return only the $45 one
func TestApply_CategoryScenario(t *testing.T) {
	items := []model.Item{
		{ItemID: "laptop", Price: 899, Category: "Electronics"},
		{ItemID: "book", Price: 45, Category: "Books"},
	}
	cfg := DefaultFilter()
	cfg.Category = "Books"

	got := Apply(items, cfg)
	require.Len(t, got, 1)
	require.Equal(t, 45.0, got[0].Price)
}

func TestApply_Sorting(t *testing.T) {
	t.Parallel()

	items := sampleCatalog()

	tests := []struct {
		key     SortKey
		wantIDs []string
	}{
		{key: SortNewest, wantIDs: []string{"4", "1", "7", "2", "3"}},
		{key: SortPriceLow, wantIDs: []string{"2", "3", "7", "4", "1"}},
		{key: SortPriceHigh, wantIDs: []string{"1", "4", "3", "7", "2"}},
		{key: SortPopular, wantIDs: []string{"4", "1", "7", "2", "3"}},
		{key: SortRating, wantIDs: []string{"2", "1", "4", "7", "3"}},
		{key: SortNone, wantIDs: []string{"1", "2", "3", "4", "7"}},
		{key: SortKey("bogus"), wantIDs: []string{"1", "2", "3", "4", "7"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.key), func(t *testing.T) {
			t.Parallel()

			cfg := DefaultFilter()
			cfg.SortKey = tc.key
			require.Equal(t, tc.wantIDs, ids(Apply(items, cfg)))
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := sampleCatalog()
	before := ids(items)

	cfg := DefaultFilter()
	cfg.SortKey = SortPriceHigh
	_ = Apply(items, cfg)

	require.Equal(t, before, ids(items))
}

// Random catalogs exercise subset and stability properties
func TestApply_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	categories := []string{"Books", "Electronics", "Furniture"}
	keys := []SortKey{SortNewest, SortPriceLow, SortPriceHigh, SortPopular, SortRating}

	for round := 0; round < 50; round++ {
		items := make([]model.Item, 40)
		for i := range items {
			items[i] = model.Item{
				ItemID:    fmt.Sprintf("item-%d", i),
				Title:     fmt.Sprintf("thing %d", i%7),
				Price:     float64(rnd.Intn(5) * 100),
				Condition: model.Conditions[rnd.Intn(len(model.Conditions))],
				Category:  categories[rnd.Intn(len(categories))],
				Rating:    float64(rnd.Intn(3)),
				Views:     rnd.Intn(4),
				CreatedAt: day("2024-05-01").AddDate(0, 0, rnd.Intn(3)),
			}
		}
		position := make(map[string]int, len(items))
		byID := make(map[string]model.Item, len(items))
		for i, item := range items {
			position[item.ItemID] = i
			byID[item.ItemID] = item
		}

		cfg := DefaultFilter()
		cfg.Category = categories[rnd.Intn(len(categories))]
		cfg.PriceRange = PriceRange{Min: 100, Max: 300}
		cfg.SortKey = keys[rnd.Intn(len(keys))]
		less := cfg.SortKey.less()

		got := Apply(items, cfg)
		for i, item := range got {
			original, ok := byID[item.ItemID]
			require.True(t, ok, "result must be a subset of the catalog")
			require.Equal(t, original, item, "item identity must be preserved")
			require.True(t, cfg.Matches(item))

			if i == 0 {
				continue
			}
			prev := got[i-1]
			require.False(t, less(item, prev), "result must be ordered by %s", cfg.SortKey)
			if !less(prev, item) {
				require.Less(t, position[prev.ItemID], position[item.ItemID], "ties must keep input order")
			}
		}
	}
}

func TestFilterFromQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  FilterConfig
	}{
		{
			name:  "empty_query_defaults",
			query: "",
			want:  DefaultFilter(),
		},
		{
			name:  "all_fields",
			query: "search=macbook&category=Electronics&sort=price-low&min_price=10&max_price=900&condition=Good&condition=like-new,Fair",
			want: FilterConfig{
				SearchText: "macbook",
				Category:   "Electronics",
				PriceRange: PriceRange{Min: 10, Max: 900},
				Conditions: []model.Condition{model.ConditionGood, model.ConditionLikeNew, model.ConditionFair},
				SortKey:    SortPriceLow,
			},
		},
		{
			name:  "malformed_values_fall_back",
			query: "min_price=abc&max_price=-5&condition=mint",
			want:  DefaultFilter(),
		},
		{
			name:  "unknown_sort_kept_verbatim",
			query: "sort=cheapest",
			want: FilterConfig{
				Category:   AllCategories,
				PriceRange: PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice},
				SortKey:    SortKey("cheapest"),
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			require.Equal(t, tc.want, FilterFromQuery(q))
		})
	}
}
