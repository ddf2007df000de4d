package service

import "github.com/crewchat-dev/crewchat/internal/domain"

type NotificationService interface {
	Get(uid domain.UserId) []domain.Notification
}

// Notifications is the read surface over the per-user logs. Tag, react and
// membership-add notifications are all appended atomically by the write paths
// that cause them; this service only carries the fetch cap.
type Notifications struct {
	storage   NotificationStorage
	pageLimit int
}

type NotificationStorage interface {
	Notifications(uid domain.UserId, limit int) []domain.Notification
}

func NewNotifications(storage NotificationStorage, pageLimit int) *Notifications {
	return &Notifications{storage, pageLimit}
}

// Get returns the most recent notifications, most-recent-first, capped at
// the configured page limit. Storage keeps everything.
func (n *Notifications) Get(uid domain.UserId) []domain.Notification {
	return n.storage.Notifications(uid, n.pageLimit)
}
