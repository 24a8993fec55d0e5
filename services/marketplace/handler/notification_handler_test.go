package handler

import (
	"net/http"
	"testing"
	"time"

	model "campustrade/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newNotificationRouter(t *testing.T, now time.Time) (*gin.Engine, *MockNotificationStoreInterface) {
	ctrl := gomock.NewController(t)
	store := NewMockNotificationStoreInterface(ctrl)
	h := NewNotificationHandler(store)
	h.now = func() time.Time { return now }

	router := gin.New()
	router.GET("/notifications", h.ListNotificationsHandler)
	router.POST("/notifications/:id/read", h.MarkReadHandler)
	router.POST("/notifications/read-all", h.MarkAllReadHandler)
	return router, store
}

func TestListNotificationsHandler(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	all := []model.Notification{
		{ID: "1", Type: model.NotificationMessage, Title: "New message", Timestamp: now.Add(-2 * time.Minute)},
		{ID: "2", Type: model.NotificationSale, Title: "Item sold", Timestamp: now.Add(-time.Hour)},
		{ID: "4", Type: model.NotificationSystem, Title: "Welcome", Timestamp: now.Add(-24 * time.Hour), Read: true},
	}

	tests := []struct {
		name        string
		query       string
		mockSetup   func(store *MockNotificationStoreInterface)
		expectedLen int
		firstAgo    string
	}{
		{
			name:  "all",
			query: "",
			mockSetup: func(store *MockNotificationStoreInterface) {
				store.EXPECT().List().Return(all)
				store.EXPECT().UnreadCount().Return(2)
			},
			expectedLen: 3,
			firstAgo:    "2 minutes ago",
		},
		{
			name:  "unread_only",
			query: "?filter=unread",
			mockSetup: func(store *MockNotificationStoreInterface) {
				store.EXPECT().Unread().Return(all[:2])
				store.EXPECT().UnreadCount().Return(2)
			},
			expectedLen: 2,
			firstAgo:    "2 minutes ago",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			router, store := newNotificationRouter(t, now)
			tc.mockSetup(store)

			code, resp := performRequest(t, router, http.MethodGet, "/notifications"+tc.query, nil)
			require.Equal(t, http.StatusOK, code)

			data := resp["data"].(map[string]any)
			require.Equal(t, 2.0, data["unread_count"])
			list := data["notifications"].([]any)
			require.Len(t, list, tc.expectedLen)
			require.Equal(t, tc.firstAgo, list[0].(map[string]any)["time_ago"])
		})
	}
}

func TestMarkReadHandler(t *testing.T) {
	now := time.Now()
	router, store := newNotificationRouter(t, now)

	gomock.InOrder(
		store.EXPECT().MarkRead("1"),
		store.EXPECT().List().Return([]model.Notification{{ID: "1", Read: true, Timestamp: now}}),
	)
	store.EXPECT().UnreadCount().Return(0)

	code, resp := performRequest(t, router, http.MethodPost, "/notifications/1/read", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 0.0, resp["data"].(map[string]any)["unread_count"])
}

func TestMarkAllReadHandler(t *testing.T) {
	now := time.Now()
	router, store := newNotificationRouter(t, now)

	store.EXPECT().MarkAllRead()
	store.EXPECT().List().Return([]model.Notification{})
	store.EXPECT().UnreadCount().Return(0)

	code, resp := performRequest(t, router, http.MethodPost, "/notifications/read-all", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "all notifications marked as read", resp["message"])
}
