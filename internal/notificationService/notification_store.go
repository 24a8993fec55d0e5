package notification

import (
	"campustrade/internal/marketerrors"
	model "campustrade/internal/models"
	"campustrade/utils"
	"fmt"
	"sync"
	"time"
)

// Store holds notifications in insertion order
type Store struct {
	mu            sync.RWMutex
	notifications []model.Notification
	now           func() time.Time
}

// NewStore creates a store preloaded with the given notifications
func NewStore(initial []model.Notification) *Store {
	return &Store{
		notifications: append([]model.Notification{}, initial...),
		now:           time.Now,
	}
}

// List returns every notification in insertion order
func (s *Store) List() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Notification{}, s.notifications...)
}

// Unread returns the unread notifications in insertion order
func (s *Store) Unread() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Notification{}
	for _, n := range s.notifications {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

// UnreadCount returns how many notifications are still unread
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags one notification as read. Unknown ids are ignored.
func (s *Store) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// MarkAllRead flags every notification as read
func (s *Store) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// Add appends a notification. Missing ids and timestamps are filled in.
func (s *Store) Add(n model.Notification) (model.Notification, error) {
	if n.Title == "" {
		return model.Notification{}, fmt.Errorf("notification: %w - empty title", marketerrors.ErrInvalidRequest)
	}
	switch n.Type {
	case model.NotificationMessage, model.NotificationSale, model.NotificationPriceDrop, model.NotificationSystem:
	default:
		return model.Notification{}, fmt.Errorf("notification: %w - unknown type %q", marketerrors.ErrInvalidRequest, n.Type)
	}
	if n.ID == "" {
		n.ID = utils.GenerateID()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = s.now().UTC()
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()

	utils.Info("notification added", map[string]any{"id": n.ID, "type": n.Type})
	return n, nil
}
