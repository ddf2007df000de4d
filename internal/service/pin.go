package service

import (
	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

type PinService interface {
	Pin(id domain.MsgId, actor domain.UserId) error
	Unpin(id domain.MsgId, actor domain.UserId) error
}

type Pin struct {
	storage    PinStorage
	membership Membership
}

type PinStorage interface {
	GetMessage(id domain.MsgId) (*domain.Message, error)
	SetPinned(id domain.MsgId, pinned bool) error
}

func NewPin(storage PinStorage, membership Membership) *Pin {
	return &Pin{storage, membership}
}

func (p *Pin) Pin(id domain.MsgId, actor domain.UserId) error {
	return p.setPinned(id, actor, true)
}

func (p *Pin) Unpin(id domain.MsgId, actor domain.UserId) error {
	return p.setPinned(id, actor, false)
}

// Membership is checked before role: a non-member gets NotFound (the message
// is invisible to them), a plain member gets PermissionError. Owner-equivalent
// means channel-owner or global owner for channels, and the creator only for
// DMs.
func (p *Pin) setPinned(id domain.MsgId, actor domain.UserId, pinned bool) error {
	msg, err := p.storage.GetMessage(id)
	if err != nil {
		return err
	}
	if !p.membership.IsMember(msg.Container, actor) {
		return &internal_errors.NotFoundError{Message: "Message does not exist"}
	}
	role, err := p.membership.RoleOf(msg.Container, actor)
	if err != nil {
		return err
	}
	ownerEquivalent := role == domain.RoleOwner ||
		(msg.Container.IsChannel() && p.membership.IsGlobalOwner(actor))
	if !ownerEquivalent {
		return &internal_errors.PermissionError{Message: "Owner rights required"}
	}
	return p.storage.SetPinned(id, pinned)
}
