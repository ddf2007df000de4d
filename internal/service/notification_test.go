package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

type MockNotificationStorage struct {
	NotificationsFunc func(uid domain.UserId, limit int) []domain.Notification
}

func (m *MockNotificationStorage) Notifications(uid domain.UserId, limit int) []domain.Notification {
	if m.NotificationsFunc != nil {
		return m.NotificationsFunc(uid, limit)
	}
	return nil
}

func TestNotificationsGet(t *testing.T) {
	var gotLimit int
	storage := &MockNotificationStorage{
		NotificationsFunc: func(uid domain.UserId, limit int) []domain.Notification {
			gotLimit = limit
			return []domain.Notification{{Recipient: uid}}
		},
	}
	service := NewNotifications(storage, 20)

	notifs := service.Get(1)
	assert.Len(t, notifs, 1)
	assert.Equal(t, 20, gotLimit)
}
