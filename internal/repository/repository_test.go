package repository

import (
	"campustrade/internal/marketerrors"
	model "campustrade/internal/models"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Item
func newItem(itemID, title string, price float64) model.Item {
	return model.Item{
		ItemID:      itemID,
		Title:       title,
		Description: fmt.Sprintf("%s description", title),
		Price:       price,
		Condition:   model.ConditionGood,
		Category:    "Books",
		Tags:        []string{"tag"},
		CreatedAt:   time.Now(),
	}
}

// Helper to create a new Order
func newOrder(orderID, userID string, placed time.Time) model.Order {
	return model.Order{
		OrderID:   orderID,
		UserID:    userID,
		Status:    model.OrderPending,
		OrderDate: placed,
		Lines:     []model.CartLine{{ItemID: "item1", Quantity: 1, Price: 10}},
	}
}

// Test AddItem
func TestMemoryRepo_AddItem(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.AddItem(newItem("item1", "Item 1", 50)))

	tests := []struct {
		name    string
		item    model.Item
		wantErr error
	}{
		{name: "valid_item", item: newItem("item2", "Item 2", 75), wantErr: nil},
		{name: "duplicate_item", item: newItem("item1", "Item 1 again", 10), wantErr: marketerrors.ErrDuplicateItem},
		{name: "empty_itemID", item: newItem("", "No ID", 10), wantErr: marketerrors.ErrInvalidRequest},
		{name: "zero_price", item: newItem("item3", "Free Item", 0), wantErr: nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := repo.AddItem(tc.item)
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			got, err := repo.GetItem(tc.item.ItemID)
			require.NoError(t, err)
			require.Equal(t, tc.item, got)
		})
	}

	t.Run("stored_copy_is_isolated", func(t *testing.T) {
		item := newItem("item-iso", "Isolated", 5)
		require.NoError(t, repo.AddItem(item))
		item.Tags[0] = "mutated"

		got, err := repo.GetItem("item-iso")
		require.NoError(t, err)
		require.Equal(t, []string{"tag"}, got.Tags)
	})
}

// Test ListItems
func TestMemoryRepo_ListItems(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	items, err := repo.ListItems()
	require.NoError(t, err)
	require.Empty(t, items)

	for i := 0; i < 100; i++ {
		require.NoError(t, repo.AddItem(newItem(fmt.Sprintf("item-%d", i), fmt.Sprintf("Item %d", i), float64(i))))
	}

	items, err = repo.ListItems()
	require.NoError(t, err)
	require.Len(t, items, 100)
	for i, item := range items {
		require.Equal(t, fmt.Sprintf("item-%d", i), item.ItemID, "listing order must be preserved")
	}

	// concurrency test
	t.Run("concurrent_adds", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				require.NoError(t, repo.AddItem(newItem(fmt.Sprintf("item-%d", i), "Concurrent", float64(i))))
			}()
		}
		wg.Wait()

		items, err := repo.ListItems()
		require.NoError(t, err)
		require.Len(t, items, concurrentCount)
	})
}

// Test GetItem
func TestMemoryRepo_GetItem(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	item := newItem("item1", "Item 1", 50)
	require.NoError(t, repo.AddItem(item))

	tests := []struct {
		name      string
		itemID    string
		wantError bool
	}{
		{name: "existing_item", itemID: "item1", wantError: false},
		{name: "non_existing_item", itemID: "itemX", wantError: true},
		{name: "empty_itemID", itemID: "", wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := repo.GetItem(tc.itemID)
			if tc.wantError {
				require.Error(t, err)
				require.True(t, errors.Is(err, marketerrors.ErrItemNotFound))
			} else {
				require.NoError(t, err)
				require.Equal(t, item, got)
			}
		})
	}
}

// Test SaveOrder / GetOrder / GetOrdersByUser
func TestMemoryRepo_Orders(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	now := time.Now()

	older := newOrder("ord1", "user1", now.Add(-48*time.Hour))
	newer := newOrder("ord2", "user1", now)
	other := newOrder("ord3", "user2", now)
	require.NoError(t, repo.SaveOrder(older))
	require.NoError(t, repo.SaveOrder(newer))
	require.NoError(t, repo.SaveOrder(other))

	t.Run("newest_first", func(t *testing.T) {
		orders, err := repo.GetOrdersByUser("user1")
		require.NoError(t, err)
		require.Len(t, orders, 2)
		require.Equal(t, "ord2", orders[0].OrderID)
		require.Equal(t, "ord1", orders[1].OrderID)
	})

	t.Run("replace_keeps_single_entry", func(t *testing.T) {
		updated := older
		updated.Status = model.OrderDelivered
		require.NoError(t, repo.SaveOrder(updated))

		orders, err := repo.GetOrdersByUser("user1")
		require.NoError(t, err)
		require.Len(t, orders, 2)

		got, err := repo.GetOrder("ord1")
		require.NoError(t, err)
		require.Equal(t, model.OrderDelivered, got.Status)
	})

	t.Run("user_without_orders", func(t *testing.T) {
		orders, err := repo.GetOrdersByUser("nobody")
		require.NoError(t, err)
		require.Empty(t, orders)
	})

	t.Run("missing_order", func(t *testing.T) {
		_, err := repo.GetOrder("nope")
		require.True(t, errors.Is(err, marketerrors.ErrOrderNotFound))
	})

	t.Run("invalid_order", func(t *testing.T) {
		err := repo.SaveOrder(model.Order{OrderID: "x"})
		require.True(t, errors.Is(err, marketerrors.ErrInvalidRequest))
	})
}
