package service

import (
	"fmt"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"
	"github.com/crewchat-dev/crewchat/internal/logger"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

type MessageService interface {
	Send(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText) (domain.MsgId, error)
	Edit(id domain.MsgId, actor domain.UserId, body domain.MsgText) error
	Remove(id domain.MsgId, actor domain.UserId) error
	Get(id domain.MsgId, requester domain.UserId) (*domain.Message, error)
	List(ref domain.ContainerRef, requester domain.UserId, start int) ([]domain.Message, int, error)
}

type Message struct {
	storage    MessageStorage
	membership Membership
	tagger     Tagger
	validator  MessageValidator
	pageSize   int
}

type MessageStorage interface {
	CreateMessage(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText, notifs []domain.Notification) (domain.MsgId, error)
	GetMessage(id domain.MsgId) (*domain.Message, error)
	EditMessage(id domain.MsgId, body domain.MsgText, notifs []domain.Notification) error
	RemoveMessage(id domain.MsgId) error
	Messages(ref domain.ContainerRef, start, limit int) ([]domain.Message, bool, error)
}

// Tagger builds the tag notifications for one body evaluation.
type Tagger interface {
	Notifications(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText) []domain.Notification
}

type MessageValidator interface {
	Text(text string) error
}

func NewMessage(storage MessageStorage, membership Membership, tagger Tagger, validator MessageValidator, pageSize int) *Message {
	return &Message{storage, membership, tagger, validator, pageSize}
}

// Send validates, checks that the sender can see the container, then creates
// the message with its tag notifications in one atomic storage call.
func (m *Message) Send(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText) (domain.MsgId, error) {
	if err := m.validator.Text(body); err != nil {
		return 0, err
	}
	if !m.membership.IsMember(ref, sender) {
		return 0, &internal_errors.NotFoundError{Message: fmt.Sprintf("%s does not exist", ref.Kind)}
	}
	return m.deliver(ref, sender, body)
}

// deliver is the membership-free create path. The deferred scheduler uses it
// directly: a job validated at schedule time still fires even if its sender
// left the container in the meantime. A job whose container disappeared is
// dropped with a log line.
func (m *Message) deliver(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText) (domain.MsgId, error) {
	notifs := m.tagger.Notifications(ref, sender, body)
	id, err := m.storage.CreateMessage(ref, sender, body, notifs)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Edit replaces the body, re-running tagging against the new text. An empty
// body removes the message instead. Permission rules are asymmetric between
// channels and DMs; see canAlter.
func (m *Message) Edit(id domain.MsgId, actor domain.UserId, body domain.MsgText) error {
	if body == "" {
		return m.Remove(id, actor)
	}
	if err := m.validator.Text(body); err != nil {
		return err
	}
	msg, err := m.storage.GetMessage(id)
	if err != nil {
		return err
	}
	if err := m.canAlter(msg, actor); err != nil {
		return err
	}
	notifs := m.tagger.Notifications(msg.Container, actor, body)
	return m.storage.EditMessage(id, body, notifs)
}

func (m *Message) Remove(id domain.MsgId, actor domain.UserId) error {
	msg, err := m.storage.GetMessage(id)
	if err != nil {
		return err
	}
	if err := m.canAlter(msg, actor); err != nil {
		return err
	}
	return m.storage.RemoveMessage(id)
}

// Get returns the message if the requester can see its container.
func (m *Message) Get(id domain.MsgId, requester domain.UserId) (*domain.Message, error) {
	msg, err := m.storage.GetMessage(id)
	if err != nil {
		return nil, err
	}
	if !m.membership.IsMember(msg.Container, requester) {
		return nil, &internal_errors.NotFoundError{Message: "Message does not exist"}
	}
	return msg, nil
}

// List returns one page of up to pageSize messages, most-recent-first, plus
// the end offset: start+pageSize while more remain, -1 on the last page.
func (m *Message) List(ref domain.ContainerRef, requester domain.UserId, start int) ([]domain.Message, int, error) {
	if start < 0 {
		return nil, 0, &internal_errors.ValidationError{Message: "Start must not be negative"}
	}
	if !m.membership.IsMember(ref, requester) {
		return nil, 0, &internal_errors.NotFoundError{Message: fmt.Sprintf("%s does not exist", ref.Kind)}
	}
	page, hasMore, err := m.storage.Messages(ref, start, m.pageSize)
	if err != nil {
		return nil, 0, err
	}
	end := -1
	if hasMore {
		end = start + m.pageSize
	}
	return page, end, nil
}

// canAlter: the sender can always edit/remove their own message. Beyond
// that, channels admit channel-owners and the global owner, while DMs admit
// only the DM creator. The global owner has no special rights inside DMs.
func (m *Message) canAlter(msg *domain.Message, actor domain.UserId) error {
	if msg.Sender == actor {
		return nil
	}
	role, err := m.membership.RoleOf(msg.Container, actor)
	if err != nil {
		logger.Log.Debug("alter permission lookup failed", "message_id", msg.Id, "actor", actor, "error", err)
		return &internal_errors.PermissionError{Message: "Not allowed to alter this message"}
	}
	if role == domain.RoleOwner {
		return nil
	}
	if msg.Container.IsChannel() && m.membership.IsGlobalOwner(actor) {
		return nil
	}
	return &internal_errors.PermissionError{Message: "Not allowed to alter this message"}
}
