package service

import (
	"testing"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

type MockReactionStorage struct {
	GetMessageFunc     func(id domain.MsgId) (*domain.Message, error)
	AddReactionFunc    func(id domain.MsgId, uid domain.UserId, kind domain.ReactKind, notif *domain.Notification) error
	RemoveReactionFunc func(id domain.MsgId, uid domain.UserId, kind domain.ReactKind) error
}

func (m *MockReactionStorage) GetMessage(id domain.MsgId) (*domain.Message, error) {
	if m.GetMessageFunc != nil {
		return m.GetMessageFunc(id)
	}
	return &domain.Message{Id: id, Container: domain.ChannelRef(1), Sender: 1}, nil
}

func (m *MockReactionStorage) AddReaction(id domain.MsgId, uid domain.UserId, kind domain.ReactKind, notif *domain.Notification) error {
	if m.AddReactionFunc != nil {
		return m.AddReactionFunc(id, uid, kind, notif)
	}
	return nil
}

func (m *MockReactionStorage) RemoveReaction(id domain.MsgId, uid domain.UserId, kind domain.ReactKind) error {
	if m.RemoveReactionFunc != nil {
		return m.RemoveReactionFunc(id, uid, kind)
	}
	return nil
}

func TestReactionReact(t *testing.T) {
	storage := &MockReactionStorage{}
	membership := &MockMembership{
		HandleOfFunc: func(uid domain.UserId) (domain.Handle, error) { return "bob", nil },
	}
	service := NewReaction(storage, membership)

	// Reacting to someone else's message notifies the sender atomically
	var gotNotif *domain.Notification
	storage.AddReactionFunc = func(id domain.MsgId, uid domain.UserId, kind domain.ReactKind, notif *domain.Notification) error {
		gotNotif = notif
		return nil
	}
	if err := service.React(1, 2, "thumbs_up"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if gotNotif == nil {
		t.Fatal("Expected a notification for the message sender")
	}
	if gotNotif.Recipient != 1 || gotNotif.Kind != domain.NotificationReact {
		t.Errorf("Unexpected notification: %+v", gotNotif)
	}
	if gotNotif.Text != "bob reacted to your message in general" {
		t.Errorf("Unexpected notification text: %q", gotNotif.Text)
	}

	// Reacting to your own message emits nothing
	gotNotif = &domain.Notification{}
	if err := service.React(1, 1, "heart"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if gotNotif != nil {
		t.Errorf("Expected no notification for self-react, got %+v", gotNotif)
	}

	// Unknown kind
	if err := service.React(1, 2, "sparkles"); !internal_errors.Is[*internal_errors.ValidationError](err) {
		t.Errorf("Expected ValidationError, got: %v", err)
	}

	// Non-member cannot see the message
	membership.IsMemberFunc = func(ref domain.ContainerRef, uid domain.UserId) bool { return false }
	if err := service.React(1, 2, "thumbs_up"); !internal_errors.Is[*internal_errors.NotFoundError](err) {
		t.Errorf("Expected NotFoundError, got: %v", err)
	}
}

func TestReactionUnreact(t *testing.T) {
	storage := &MockReactionStorage{}
	membership := &MockMembership{}
	service := NewReaction(storage, membership)

	removed := false
	storage.RemoveReactionFunc = func(id domain.MsgId, uid domain.UserId, kind domain.ReactKind) error {
		removed = true
		return nil
	}
	if err := service.Unreact(1, 2, "thumbs_up"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if !removed {
		t.Error("Expected RemoveReaction to be called")
	}

	if err := service.Unreact(1, 2, "nope"); !internal_errors.Is[*internal_errors.ValidationError](err) {
		t.Errorf("Expected ValidationError, got: %v", err)
	}
}
