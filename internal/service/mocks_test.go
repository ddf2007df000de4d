package service

import (
	"sync"
	"time"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

// Mock structs shared by the service tests

type MockMembership struct {
	IsMemberFunc      func(ref domain.ContainerRef, uid domain.UserId) bool
	RoleOfFunc        func(ref domain.ContainerRef, uid domain.UserId) (domain.Role, error)
	IsGlobalOwnerFunc func(uid domain.UserId) bool
	HandleOfFunc      func(uid domain.UserId) (domain.Handle, error)
	ResolveHandleFunc func(ref domain.ContainerRef, handle domain.Handle) (domain.UserId, bool)
	ContainerNameFunc func(ref domain.ContainerRef) (domain.ContainerName, error)
	ContainersOfFunc  func(uid domain.UserId) []domain.ContainerRef
}

func (m *MockMembership) IsMember(ref domain.ContainerRef, uid domain.UserId) bool {
	if m.IsMemberFunc != nil {
		return m.IsMemberFunc(ref, uid)
	}
	return true
}

func (m *MockMembership) RoleOf(ref domain.ContainerRef, uid domain.UserId) (domain.Role, error) {
	if m.RoleOfFunc != nil {
		return m.RoleOfFunc(ref, uid)
	}
	return domain.RoleMember, nil
}

func (m *MockMembership) IsGlobalOwner(uid domain.UserId) bool {
	if m.IsGlobalOwnerFunc != nil {
		return m.IsGlobalOwnerFunc(uid)
	}
	return false
}

func (m *MockMembership) HandleOf(uid domain.UserId) (domain.Handle, error) {
	if m.HandleOfFunc != nil {
		return m.HandleOfFunc(uid)
	}
	return "handle", nil
}

func (m *MockMembership) ResolveHandle(ref domain.ContainerRef, handle domain.Handle) (domain.UserId, bool) {
	if m.ResolveHandleFunc != nil {
		return m.ResolveHandleFunc(ref, handle)
	}
	return 0, false
}

func (m *MockMembership) ContainerName(ref domain.ContainerRef) (domain.ContainerName, error) {
	if m.ContainerNameFunc != nil {
		return m.ContainerNameFunc(ref)
	}
	return "general", nil
}

func (m *MockMembership) ContainersOf(uid domain.UserId) []domain.ContainerRef {
	if m.ContainersOfFunc != nil {
		return m.ContainersOfFunc(uid)
	}
	return nil
}

type MockMessageStorage struct {
	CreateMessageFunc func(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText, notifs []domain.Notification) (domain.MsgId, error)
	GetMessageFunc    func(id domain.MsgId) (*domain.Message, error)
	EditMessageFunc   func(id domain.MsgId, body domain.MsgText, notifs []domain.Notification) error
	RemoveMessageFunc func(id domain.MsgId) error
	MessagesFunc      func(ref domain.ContainerRef, start, limit int) ([]domain.Message, bool, error)
}

func (m *MockMessageStorage) CreateMessage(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText, notifs []domain.Notification) (domain.MsgId, error) {
	if m.CreateMessageFunc != nil {
		return m.CreateMessageFunc(ref, sender, body, notifs)
	}
	return 1, nil
}

func (m *MockMessageStorage) GetMessage(id domain.MsgId) (*domain.Message, error) {
	if m.GetMessageFunc != nil {
		return m.GetMessageFunc(id)
	}
	return &domain.Message{Id: id, Container: domain.ChannelRef(1), Sender: 1}, nil
}

func (m *MockMessageStorage) EditMessage(id domain.MsgId, body domain.MsgText, notifs []domain.Notification) error {
	if m.EditMessageFunc != nil {
		return m.EditMessageFunc(id, body, notifs)
	}
	return nil
}

func (m *MockMessageStorage) RemoveMessage(id domain.MsgId) error {
	if m.RemoveMessageFunc != nil {
		return m.RemoveMessageFunc(id)
	}
	return nil
}

func (m *MockMessageStorage) Messages(ref domain.ContainerRef, start, limit int) ([]domain.Message, bool, error) {
	if m.MessagesFunc != nil {
		return m.MessagesFunc(ref, start, limit)
	}
	return nil, false, nil
}

type MockTagger struct {
	NotificationsFunc func(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText) []domain.Notification
}

func (m *MockTagger) Notifications(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText) []domain.Notification {
	if m.NotificationsFunc != nil {
		return m.NotificationsFunc(ref, sender, body)
	}
	return nil
}

type MockMessageValidator struct {
	TextFunc func(text string) error
}

func (m *MockMessageValidator) Text(text string) error {
	if m.TextFunc != nil {
		return m.TextFunc(text)
	}
	return nil
}

func (m *MockMessageValidator) Query(query string) error {
	return nil
}

// fakeClock lets scheduler tests advance time without sleeping.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{t: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
