package api

import (
	"time"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

// Request DTOs

type RegisterRequest struct {
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	NameFirst string `json:"name_first" validate:"required"`
	NameLast  string `json:"name_last" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateChannelRequest struct {
	Name     string `json:"name" validate:"required"`
	IsPublic bool   `json:"is_public"`
}

type InviteRequest struct {
	UserId int64 `json:"user_id" validate:"required"`
}

type CreateDmRequest struct {
	UserIds []int64 `json:"user_ids"`
}

type SendMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

// EditMessageRequest allows an empty body: that removes the message.
type EditMessageRequest struct {
	Body string `json:"body"`
}

type ReactRequest struct {
	Kind string `json:"kind" validate:"required"`
}

type SendLaterRequest struct {
	Body   string `json:"body" validate:"required"`
	FireAt int64  `json:"fire_at" validate:"required"` // unix seconds
}

type StandupStartRequest struct {
	Length int `json:"length"` // seconds
}

type StandupSendRequest struct {
	Line string `json:"line" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	Token      string `json:"token"`
	AuthUserId int64  `json:"auth_user_id"`
}

type CreateChannelResponse struct {
	ChannelId int64 `json:"channel_id"`
}

type CreateDmResponse struct {
	DmId int64  `json:"dm_id"`
	Name string `json:"name"`
}

type ContainerView struct {
	Kind string `json:"kind"`
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type ContainersResponse struct {
	Containers []ContainerView `json:"containers"`
}

type SendMessageResponse struct {
	MessageId int64 `json:"message_id"`
}

type ReactionView struct {
	Kind              string  `json:"kind"`
	ReactorIds        []int64 `json:"reactor_ids"`
	IsThisUserReacted bool    `json:"is_this_user_reacted"`
}

type MessageView struct {
	MessageId int64          `json:"message_id"`
	SenderId  int64          `json:"sender_id"`
	Body      string         `json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	Pinned    bool           `json:"pinned"`
	Reacts    []ReactionView `json:"reacts"`
}

type MessagesResponse struct {
	Messages []MessageView `json:"messages"`
	Start    int           `json:"start"`
	End      int           `json:"end"`
}

type SearchResponse struct {
	Messages []MessageView `json:"messages"`
}

type StandupStartResponse struct {
	TimeFinish time.Time `json:"time_finish"`
}

type StandupActiveResponse struct {
	IsActive   bool       `json:"is_active"`
	TimeFinish *time.Time `json:"time_finish,omitempty"`
}

type NotificationView struct {
	Kind      string    `json:"kind"`
	Container string    `json:"container"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationsResponse struct {
	Notifications []NotificationView `json:"notifications"`
}

type SeriesPointView struct {
	Count     int       `json:"count"`
	TimeStamp time.Time `json:"time_stamp"`
}

type UserStatsResponse struct {
	ChannelsJoined  []SeriesPointView `json:"channels_joined"`
	DmsJoined       []SeriesPointView `json:"dms_joined"`
	MessagesSent    []SeriesPointView `json:"messages_sent"`
	InvolvementRate float64           `json:"involvement_rate"`
}

type WorkspaceStatsResponse struct {
	ChannelsExist   []SeriesPointView `json:"channels_exist"`
	DmsExist        []SeriesPointView `json:"dms_exist"`
	MessagesExist   []SeriesPointView `json:"messages_exist"`
	UtilizationRate float64           `json:"utilization_rate"`
}

// NewMessageView renders msg for one requesting user, deciding
// is_this_user_reacted per reaction bucket.
func NewMessageView(msg *domain.Message, requester domain.UserId) MessageView {
	reacts := make([]ReactionView, 0, len(msg.Reacts))
	for _, r := range msg.Reacts {
		reacts = append(reacts, ReactionView{
			Kind:              r.Kind,
			ReactorIds:        append([]int64(nil), r.Reactors...),
			IsThisUserReacted: r.Has(requester),
		})
	}
	return MessageView{
		MessageId: msg.Id,
		SenderId:  msg.Sender,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt,
		Pinned:    msg.Pinned,
		Reacts:    reacts,
	}
}

func NewSeriesPointViews(points []domain.SeriesPoint) []SeriesPointView {
	out := make([]SeriesPointView, 0, len(points))
	for _, p := range points {
		out = append(out, SeriesPointView{Count: p.Count, TimeStamp: p.Timestamp})
	}
	return out
}
