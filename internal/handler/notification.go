package handler

import (
	"net/http"

	"github.com/crewchat-dev/crewchat/internal/api"
)

// GetNotifications returns the caller's most recent notifications,
// most-recent-first.
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromRequest(w, r)
	if !ok {
		return
	}

	notifs := h.notifications.Get(uid)
	views := make([]api.NotificationView, 0, len(notifs))
	for _, n := range notifs {
		views = append(views, api.NotificationView{
			Kind:      string(n.Kind),
			Container: n.Container.String(),
			Text:      n.Text,
			CreatedAt: n.CreatedAt,
		})
	}
	writeJSON(w, api.NotificationsResponse{Notifications: views})
}
