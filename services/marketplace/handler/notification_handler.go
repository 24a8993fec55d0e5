package handler

import (
	"net/http"
	"time"

	model "campustrade/internal/models"
	notification "campustrade/internal/notificationService"
	"campustrade/services/marketplace/helpers"
	"campustrade/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	store NotificationStoreInterface
	now   func() time.Time
}

func NewNotificationHandler(store NotificationStoreInterface) *NotificationHandler {
	return &NotificationHandler{store: store, now: time.Now}
}

// ListNotificationsHandler handles GET /notifications. ?filter=unread keeps
// only unread ones.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	var list []model.Notification
	if c.Query("filter") == "unread" {
		list = h.store.Unread()
	} else {
		list = h.store.List()
	}

	resp := helpers.NewNotificationsResponse(list, h.store.UnreadCount(), h.now(), notification.FormatTimeAgo)
	utils.JSONResponse(c, http.StatusOK, resp, "notifications retrieved successfully")
}

// MarkReadHandler handles POST /notifications/:id/read. Unknown ids leave
// the list unchanged.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	id := c.Param("id")
	h.store.MarkRead(id)

	resp := helpers.NewNotificationsResponse(h.store.List(), h.store.UnreadCount(), h.now(), notification.FormatTimeAgo)
	utils.JSONResponse(c, http.StatusOK, resp, "notification marked as read")
	helpers.LogSuccess("MarkReadHandler", "notification marked as read", map[string]any{"id": id})
}

// MarkAllReadHandler handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	h.store.MarkAllRead()

	resp := helpers.NewNotificationsResponse(h.store.List(), h.store.UnreadCount(), h.now(), notification.FormatTimeAgo)
	utils.JSONResponse(c, http.StatusOK, resp, "all notifications marked as read")
}
