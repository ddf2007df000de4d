package domain

import "time"

type NotificationKind string

const (
	NotificationTag   NotificationKind = "tag"
	NotificationReact NotificationKind = "react"
	NotificationAdded NotificationKind = "added"
)

// Notification is immutable once appended to a user's log.
type Notification struct {
	Recipient UserId
	Kind      NotificationKind
	Container ContainerRef
	Text      string
	CreatedAt time.Time
}
