// Package memory is the resident-memory storage for the whole workspace.
// Every table lives behind one RWMutex; each exported method is a single
// critical section carrying all effects of its operation, so callers never
// observe a half-applied mutation.
package memory

import (
	"sync"
	"time"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

type Storage struct {
	mu  sync.RWMutex
	seq *domain.Sequence

	users         map[domain.UserId]*domain.User
	usersByEmail  map[domain.Email]domain.UserId
	usersByHandle map[domain.Handle]domain.UserId
	nextUserId    domain.UserId

	channels      map[domain.ContainerId]*channel
	dms           map[domain.ContainerId]*dm
	nextChannelId domain.ContainerId
	nextDmId      domain.ContainerId

	// per-user container refs in join/creation order
	memberships map[domain.UserId][]domain.ContainerRef

	messages map[domain.MsgId]*domain.Message
	// per-container message ids, most-recent-first
	threads map[domain.ContainerRef][]domain.MsgId

	// per-user logs, most-recent-first
	notifications map[domain.UserId][]domain.Notification

	userStats map[domain.UserId]*userSeries
	workspace workspaceSeries
}

type channel struct {
	id        domain.ContainerId
	name      domain.ContainerName
	isPublic  bool
	owners    map[domain.UserId]bool
	members   []domain.UserId // join order
	createdAt time.Time
}

type dm struct {
	id        domain.ContainerId
	name      domain.ContainerName
	creator   domain.UserId
	members   []domain.UserId
	createdAt time.Time
}

func New(seq *domain.Sequence) *Storage {
	s := &Storage{seq: seq}
	s.reset(time.Now().UTC())
	return s
}

// Clear wipes every table and rewinds the id sequence. Used by the
// workspace reset endpoint and by tests.
func (s *Storage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(time.Now().UTC())
}

func (s *Storage) reset(now time.Time) {
	s.seq.Reset()
	s.users = make(map[domain.UserId]*domain.User)
	s.usersByEmail = make(map[domain.Email]domain.UserId)
	s.usersByHandle = make(map[domain.Handle]domain.UserId)
	s.nextUserId = 0
	s.channels = make(map[domain.ContainerId]*channel)
	s.dms = make(map[domain.ContainerId]*dm)
	s.nextChannelId = 0
	s.nextDmId = 0
	s.memberships = make(map[domain.UserId][]domain.ContainerRef)
	s.messages = make(map[domain.MsgId]*domain.Message)
	s.threads = make(map[domain.ContainerRef][]domain.MsgId)
	s.notifications = make(map[domain.UserId][]domain.Notification)
	s.userStats = make(map[domain.UserId]*userSeries)
	s.workspace = newWorkspaceSeries(now)
}

// containerExists must be called with the lock held.
func (s *Storage) containerExists(ref domain.ContainerRef) bool {
	if ref.IsChannel() {
		_, ok := s.channels[ref.Id]
		return ok
	}
	_, ok := s.dms[ref.Id]
	return ok
}

// containerMembers must be called with the lock held.
func (s *Storage) containerMembers(ref domain.ContainerRef) []domain.UserId {
	if ref.IsChannel() {
		if ch, ok := s.channels[ref.Id]; ok {
			return ch.members
		}
		return nil
	}
	if d, ok := s.dms[ref.Id]; ok {
		return d.members
	}
	return nil
}

// isMember must be called with the lock held.
func (s *Storage) isMember(ref domain.ContainerRef, uid domain.UserId) bool {
	for _, id := range s.containerMembers(ref) {
		if id == uid {
			return true
		}
	}
	return false
}

// appendNotifications must be called with the write lock held.
// Logs are most-recent-first, so each append goes to the front.
func (s *Storage) appendNotifications(notifs []domain.Notification, now time.Time) {
	for _, n := range notifs {
		n.CreatedAt = now
		log := s.notifications[n.Recipient]
		s.notifications[n.Recipient] = append([]domain.Notification{n}, log...)
	}
}
