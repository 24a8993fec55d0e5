package cart

import (
	"campustrade/internal/marketerrors"
	model "campustrade/internal/models"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	macbook = model.Item{ItemID: "1", Title: "MacBook Pro 13\" 2021", Price: 899, OriginalPrice: 1299, Seller: "Alex Chen", CO2Savings: 35}
	bundle  = model.Item{ItemID: "2", Title: "Calculus Textbook Bundle", Price: 45, OriginalPrice: 120, Seller: "Sarah Kim", CO2Savings: 2}
)

func newService() *CartService {
	return NewCartService(DefaultPromoTable(), DefaultFees())
}

func seededCart(t *testing.T) *CartService {
	t.Helper()
	s := newService()
	_, err := s.AddLine("1", macbook, 1, "")
	require.NoError(t, err)
	_, err = s.AddLine("1", model.Item{ItemID: "2", Title: "Calculus Textbook Bundle", Price: 45}, 1, "Dorm Delivery")
	require.NoError(t, err)
	return s
}

func TestCartService_GetCart(t *testing.T) {
	s := newService()

	c, err := s.GetCart("42")
	require.NoError(t, err)
	require.Equal(t, "42", c.UserID)
	require.Empty(t, c.Lines)
	require.NotNil(t, c.Lines)

	_, err = s.GetCart("")
	require.ErrorIs(t, err, marketerrors.ErrInvalidRequest)
}

func TestCartService_AddLine(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		item          model.Item
		quantity      int
		expectedError error
	}{
		{name: "valid", userID: "1", item: macbook, quantity: 1},
		{name: "empty_userID", userID: "", item: macbook, quantity: 1, expectedError: marketerrors.ErrInvalidRequest},
		{name: "empty_itemID", userID: "1", item: model.Item{}, quantity: 1, expectedError: marketerrors.ErrInvalidRequest},
		{name: "zero_quantity", userID: "1", item: macbook, quantity: 0, expectedError: marketerrors.ErrInvalidQuantity},
		{name: "max_quantity", userID: "1", item: macbook, quantity: MaxQuantity},
		{name: "above_max_quantity", userID: "1", item: macbook, quantity: MaxQuantity + 1, expectedError: marketerrors.ErrInvalidQuantity},
		{name: "max_int", userID: "1", item: macbook, quantity: math.MaxInt, expectedError: marketerrors.ErrInvalidQuantity},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := newService().AddLine(tc.userID, tc.item, tc.quantity, "")
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, c.Lines, 1)
			require.Equal(t, macbook.Title, c.Lines[0].Title)
			require.Equal(t, macbook.OriginalPrice, c.Lines[0].OriginalPrice)
			require.Equal(t, DefaultDeliveryMethod, c.Lines[0].DeliveryMethod)
		})
	}
}

func TestCartService_AddLine_IncrementsExisting(t *testing.T) {
	s := newService()
	_, err := s.AddLine("1", macbook, 1, "")
	require.NoError(t, err)

	c, err := s.AddLine("1", macbook, 2, "Dorm Delivery")
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	require.Equal(t, 3, c.Lines[0].Quantity)
	require.Equal(t, "Dorm Delivery", c.Lines[0].DeliveryMethod)
}

func TestCartService_AddLine_MergeCapped(t *testing.T) {
	tests := []struct {
		name          string
		first         int
		second        int
		wantQuantity  int
		expectedError error
	}{
		{name: "reaches_max", first: MaxQuantity - 1, second: 1, wantQuantity: MaxQuantity},
		{name: "one_past_max", first: MaxQuantity, second: 1, wantQuantity: MaxQuantity, expectedError: marketerrors.ErrInvalidQuantity},
		{name: "max_int_on_top", first: 1, second: math.MaxInt, wantQuantity: 1, expectedError: marketerrors.ErrInvalidQuantity},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := newService()
			_, err := s.AddLine("1", macbook, tc.first, "")
			require.NoError(t, err)

			_, err = s.AddLine("1", macbook, tc.second, "Dorm Delivery")
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}

			c, err := s.GetCart("1")
			require.NoError(t, err)
			require.Len(t, c.Lines, 1)
			require.Equal(t, tc.wantQuantity, c.Lines[0].Quantity)
			require.Positive(t, s.Price(c).Total)
		})
	}
}

func TestCartService_Price(t *testing.T) {
	s := seededCart(t)

	c, err := s.GetCart("1")
	require.NoError(t, err)

	summary := s.Price(c)
	require.Equal(t, 944.0, summary.Subtotal)
	require.Equal(t, 400.0, summary.TotalSavings)
	require.Equal(t, 0.0, summary.PromoDiscount)
	require.Equal(t, 951.99, summary.Total)
}

func TestCartService_ApplyPromo(t *testing.T) {
	s := seededCart(t)

	c, applied, err := s.ApplyPromo("1", "student10")
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, &model.PromoCode{Code: "STUDENT10", Percentage: 10}, c.Promo)

	summary := s.Price(c)
	require.Equal(t, 94.4, summary.PromoDiscount)
	require.Equal(t, 857.59, summary.Total)

	// same code twice gives the same discount
	again, applied, err := s.ApplyPromo("1", "STUDENT10")
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, summary, s.Price(again))

	// a different valid code replaces the first
	c, applied, err = s.ApplyPromo("1", "NEWUSER")
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, 20, c.Promo.Percentage)
}

func TestCartService_ApplyPromo_UnknownCode(t *testing.T) {
	s := seededCart(t)
	before, err := s.GetCart("1")
	require.NoError(t, err)

	c, applied, err := s.ApplyPromo("1", "FAKE50")
	require.NoError(t, err)
	require.False(t, applied)
	require.Equal(t, before, c)
	require.Nil(t, c.Promo)
	require.Equal(t, 951.99, s.Price(c).Total)

	// codes are matched as typed apart from case
	c, applied, err = s.ApplyPromo("1", " STUDENT10 ")
	require.NoError(t, err)
	require.False(t, applied)
	require.Nil(t, c.Promo)

	// an applied promo survives a rejected one
	_, _, err = s.ApplyPromo("1", "SAVE15")
	require.NoError(t, err)
	c, applied, err = s.ApplyPromo("1", "FAKE50")
	require.NoError(t, err)
	require.False(t, applied)
	require.Equal(t, "SAVE15", c.Promo.Code)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name          string
		itemID        string
		quantity      int
		wantIDs       []string
		expectedError error
	}{
		{name: "increase", itemID: "1", quantity: 4, wantIDs: []string{"1", "2"}},
		{name: "zero_removes_only_that_line", itemID: "1", quantity: 0, wantIDs: []string{"2"}},
		{name: "max_quantity", itemID: "1", quantity: MaxQuantity, wantIDs: []string{"1", "2"}},
		{name: "negative", itemID: "1", quantity: -1, expectedError: marketerrors.ErrInvalidQuantity},
		{name: "above_max_quantity", itemID: "1", quantity: MaxQuantity + 1, expectedError: marketerrors.ErrInvalidQuantity},
		{name: "missing_line", itemID: "99", quantity: 2, expectedError: marketerrors.ErrLineNotFound},
		{name: "missing_line_zero", itemID: "99", quantity: 0, expectedError: marketerrors.ErrLineNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := seededCart(t)
			c, err := s.UpdateQuantity("1", tc.itemID, tc.quantity)
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)

			got := make([]string, len(c.Lines))
			for i, line := range c.Lines {
				got[i] = line.ItemID
			}
			require.Equal(t, tc.wantIDs, got)
			if tc.quantity > 0 {
				require.Equal(t, tc.quantity, c.Lines[0].Quantity)
			}
		})
	}
}

func TestCartService_DecrementOnlyLineEmptiesCart(t *testing.T) {
	s := newService()
	_, err := s.AddLine("1", bundle, 1, "")
	require.NoError(t, err)

	c, err := s.UpdateQuantity("1", bundle.ItemID, 0)
	require.NoError(t, err)
	require.Empty(t, c.Lines)
}

func TestCartService_RemoveLine(t *testing.T) {
	s := seededCart(t)

	c, err := s.RemoveLine("1", "2")
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	require.Equal(t, "1", c.Lines[0].ItemID)

	_, err = s.RemoveLine("1", "2")
	require.ErrorIs(t, err, marketerrors.ErrLineNotFound)
}

func TestCartService_RemoveOrdered(t *testing.T) {
	ordered := []model.CartLine{
		{ItemID: "1", Quantity: 1},
		{ItemID: "2", Quantity: 1},
	}
	extra := model.Item{ItemID: "7", Title: "Desk Lamp", Price: 15}

	tests := []struct {
		name      string
		change    func(t *testing.T, s *CartService)
		wantLines map[string]int
	}{
		{
			name:      "unchanged_cart_empties",
			change:    func(t *testing.T, s *CartService) {},
			wantLines: map[string]int{},
		},
		{
			name: "new_line_survives",
			change: func(t *testing.T, s *CartService) {
				_, err := s.AddLine("1", extra, 2, "")
				require.NoError(t, err)
			},
			wantLines: map[string]int{"7": 2},
		},
		{
			name: "extra_units_survive",
			change: func(t *testing.T, s *CartService) {
				_, err := s.AddLine("1", macbook, 2, "")
				require.NoError(t, err)
			},
			wantLines: map[string]int{"1": 2},
		},
		{
			name: "removed_line_ignored",
			change: func(t *testing.T, s *CartService) {
				_, err := s.RemoveLine("1", "2")
				require.NoError(t, err)
				_, err = s.AddLine("1", extra, 1, "")
				require.NoError(t, err)
			},
			wantLines: map[string]int{"7": 1},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := seededCart(t)
			_, _, err := s.ApplyPromo("1", "SAVE15")
			require.NoError(t, err)
			tc.change(t, s)

			require.NoError(t, s.RemoveOrdered("1", ordered))

			c, err := s.GetCart("1")
			require.NoError(t, err)
			require.Nil(t, c.Promo)
			got := make(map[string]int, len(c.Lines))
			for _, line := range c.Lines {
				got[line.ItemID] = line.Quantity
			}
			require.Equal(t, tc.wantLines, got)
		})
	}

	require.ErrorIs(t, newService().RemoveOrdered("", ordered), marketerrors.ErrInvalidRequest)
	require.NoError(t, newService().RemoveOrdered("nobody", ordered))
}

func TestCartService_ReturnsCopies(t *testing.T) {
	s := seededCart(t)
	_, _, err := s.ApplyPromo("1", "SAVE15")
	require.NoError(t, err)

	c, err := s.GetCart("1")
	require.NoError(t, err)
	c.Lines[0].Quantity = 100
	c.Promo.Percentage = 99

	fresh, err := s.GetCart("1")
	require.NoError(t, err)
	require.Equal(t, 1, fresh.Lines[0].Quantity)
	require.Equal(t, 15, fresh.Promo.Percentage)
}

func TestCartService_ConcurrentAdds(t *testing.T) {
	s := newService()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := model.Item{ItemID: fmt.Sprintf("item-%d", i%5), Price: 10}
			_, err := s.AddLine("1", item, 1, "")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	c, err := s.GetCart("1")
	require.NoError(t, err)
	require.Len(t, c.Lines, 5)
	require.Equal(t, 50, s.Price(c).ItemCount)
}
