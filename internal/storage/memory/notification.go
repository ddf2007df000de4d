package memory

import (
	"time"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

// AppendNotifications prepends the given notifications to their recipients'
// logs. Storage is unbounded; the read cap lives in Notifications.
func (s *Storage) AppendNotifications(notifs []domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendNotifications(notifs, time.Now().UTC())
}

// Notifications returns up to limit entries, most-recent-first.
func (s *Storage) Notifications(uid domain.UserId, limit int) []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.notifications[uid]
	if len(log) > limit {
		log = log[:limit]
	}
	return append([]domain.Notification(nil), log...)
}
