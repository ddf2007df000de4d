package service

import (
	"fmt"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

type ReactionService interface {
	React(id domain.MsgId, actor domain.UserId, kind domain.ReactKind) error
	Unreact(id domain.MsgId, actor domain.UserId, kind domain.ReactKind) error
}

type Reaction struct {
	storage    ReactionStorage
	membership Membership
}

type ReactionStorage interface {
	GetMessage(id domain.MsgId) (*domain.Message, error)
	AddReaction(id domain.MsgId, uid domain.UserId, kind domain.ReactKind, notif *domain.Notification) error
	RemoveReaction(id domain.MsgId, uid domain.UserId, kind domain.ReactKind) error
}

func NewReaction(storage ReactionStorage, membership Membership) *Reaction {
	return &Reaction{storage, membership}
}

// React adds actor under kind. The message sender gets a notification in the
// same atomic storage call, unless they are reacting to their own message.
func (r *Reaction) React(id domain.MsgId, actor domain.UserId, kind domain.ReactKind) error {
	if !domain.ValidReactKind(kind) {
		return &internal_errors.ValidationError{Message: "Unsupported react kind"}
	}
	msg, err := r.storage.GetMessage(id)
	if err != nil {
		return err
	}
	if !r.membership.IsMember(msg.Container, actor) {
		return &internal_errors.NotFoundError{Message: "Message does not exist"}
	}

	var notif *domain.Notification
	if msg.Sender != actor {
		handle, herr := r.membership.HandleOf(actor)
		name, nerr := r.membership.ContainerName(msg.Container)
		if herr == nil && nerr == nil {
			notif = &domain.Notification{
				Recipient: msg.Sender,
				Kind:      domain.NotificationReact,
				Container: msg.Container,
				Text:      fmt.Sprintf("%s reacted to your message in %s", handle, name),
			}
		}
	}
	return r.storage.AddReaction(id, actor, kind, notif)
}

// Unreact removes actor's reaction of kind. No notification is ever emitted
// for removal.
func (r *Reaction) Unreact(id domain.MsgId, actor domain.UserId, kind domain.ReactKind) error {
	if !domain.ValidReactKind(kind) {
		return &internal_errors.ValidationError{Message: "Unsupported react kind"}
	}
	msg, err := r.storage.GetMessage(id)
	if err != nil {
		return err
	}
	if !r.membership.IsMember(msg.Container, actor) {
		return &internal_errors.NotFoundError{Message: "Message does not exist"}
	}
	return r.storage.RemoveReaction(id, actor, kind)
}
