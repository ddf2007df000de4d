package memory

import (
	"fmt"
	"strings"
	"time"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

// CreateMessage allocates the next global id, stores the message, prepends it
// to its container thread, bumps the sender/workspace counters and appends the
// tag notifications, all in one critical section. This is the in-memory analog
// of a multi-statement transaction.
func (s *Storage) CreateMessage(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText, notifs []domain.Notification) (domain.MsgId, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.containerExists(ref) {
		return 0, &internal_errors.NotFoundError{Message: fmt.Sprintf("%s does not exist", ref.Kind)}
	}

	now := time.Now().UTC()
	id := s.seq.Next()
	s.messages[id] = &domain.Message{
		Id:        id,
		Container: ref,
		Sender:    sender,
		Body:      body,
		CreatedAt: now,
	}
	s.threads[ref] = append([]domain.MsgId{id}, s.threads[ref]...)

	s.bumpMessagesSent(sender, now)
	s.workspace.messagesExist.bump(1, now)
	s.appendNotifications(notifs, now)

	return id, nil
}

// GetMessage returns a deep copy, so callers can read it without the lock.
// Removed messages are invisible.
func (s *Storage) GetMessage(id domain.MsgId) (*domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[id]
	if !ok || msg.Removed {
		return nil, &internal_errors.NotFoundError{Message: "Message does not exist"}
	}
	cp := copyMessage(msg)
	return &cp, nil
}

// EditMessage replaces the body and appends the re-evaluated tag
// notifications. Id, sender and creation time stay untouched.
func (s *Storage) EditMessage(id domain.MsgId, body domain.MsgText, notifs []domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok || msg.Removed {
		return &internal_errors.NotFoundError{Message: "Message does not exist"}
	}
	msg.Body = body
	s.appendNotifications(notifs, time.Now().UTC())
	return nil
}

// RemoveMessage tombstones the message. The id is never reused; the
// workspace messages_exist series drops by one while the sender's
// messages_sent series stays as it was.
func (s *Storage) RemoveMessage(id domain.MsgId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok || msg.Removed {
		return &internal_errors.NotFoundError{Message: "Message does not exist"}
	}
	msg.Removed = true
	msg.Body = ""
	msg.Pinned = false
	msg.Reacts = nil
	s.workspace.messagesExist.bump(-1, time.Now().UTC())
	return nil
}

// Messages returns one pagination window of non-removed messages,
// most-recent-first, plus whether more remain past the window.
func (s *Storage) Messages(ref domain.ContainerRef, start, limit int) ([]domain.Message, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.containerExists(ref) {
		return nil, false, &internal_errors.NotFoundError{Message: fmt.Sprintf("%s does not exist", ref.Kind)}
	}

	listable := s.listableIds(ref)
	if start > len(listable) {
		return nil, false, &internal_errors.ValidationError{Message: "Start is greater than the total number of messages"}
	}

	page := make([]domain.Message, 0, limit)
	for _, id := range listable[start:] {
		if len(page) == limit {
			return page, true, nil
		}
		page = append(page, copyMessage(s.messages[id]))
	}
	return page, false, nil
}

// AddReaction appends the reactor to the kind bucket and, when notif is not
// nil, logs the reaction notification under the same lock hold.
func (s *Storage) AddReaction(id domain.MsgId, uid domain.UserId, kind domain.ReactKind, notif *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok || msg.Removed {
		return &internal_errors.NotFoundError{Message: "Message does not exist"}
	}
	react := msg.React(kind)
	if react == nil {
		react = &domain.Reaction{Kind: kind}
		msg.Reacts = append(msg.Reacts, react)
	}
	if react.Has(uid) {
		return &internal_errors.ConflictError{Message: "Already reacted with this kind"}
	}
	react.Reactors = append(react.Reactors, uid)

	if notif != nil {
		s.appendNotifications([]domain.Notification{*notif}, time.Now().UTC())
	}
	return nil
}

func (s *Storage) RemoveReaction(id domain.MsgId, uid domain.UserId, kind domain.ReactKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok || msg.Removed {
		return &internal_errors.NotFoundError{Message: "Message does not exist"}
	}
	react := msg.React(kind)
	if react == nil || !react.Has(uid) {
		return &internal_errors.ConflictError{Message: "No reaction of this kind to remove"}
	}
	reactors := react.Reactors[:0]
	for _, rid := range react.Reactors {
		if rid != uid {
			reactors = append(reactors, rid)
		}
	}
	react.Reactors = reactors
	return nil
}

// SetPinned flips the pin flag. Repeating the current state is a conflict.
func (s *Storage) SetPinned(id domain.MsgId, pinned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok || msg.Removed {
		return &internal_errors.NotFoundError{Message: "Message does not exist"}
	}
	if msg.Pinned == pinned {
		if pinned {
			return &internal_errors.ConflictError{Message: "Message is already pinned"}
		}
		return &internal_errors.ConflictError{Message: "Message is not pinned"}
	}
	msg.Pinned = pinned
	return nil
}

// Search walks every container of uid under one read lock: channels first,
// then DMs, each group in join/creation order, most-recent-first inside a
// container. Matching is a case-sensitive substring test over non-removed
// bodies.
func (s *Storage) Search(uid domain.UserId, query string) ([]domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Message
	for _, kind := range []domain.ContainerKind{domain.KindChannel, domain.KindDm} {
		for _, ref := range s.memberships[uid] {
			if ref.Kind != kind {
				continue
			}
			for _, id := range s.threads[ref] {
				msg := s.messages[id]
				if msg.Removed || !strings.Contains(msg.Body, query) {
					continue
				}
				out = append(out, copyMessage(msg))
			}
		}
	}
	return out, nil
}

// listableIds must be called with the lock held.
func (s *Storage) listableIds(ref domain.ContainerRef) []domain.MsgId {
	ids := make([]domain.MsgId, 0, len(s.threads[ref]))
	for _, id := range s.threads[ref] {
		if !s.messages[id].Removed {
			ids = append(ids, id)
		}
	}
	return ids
}

func copyMessage(msg *domain.Message) domain.Message {
	cp := *msg
	cp.Reacts = make([]*domain.Reaction, 0, len(msg.Reacts))
	for _, r := range msg.Reacts {
		rc := &domain.Reaction{Kind: r.Kind, Reactors: append([]domain.UserId(nil), r.Reactors...)}
		cp.Reacts = append(cp.Reacts, rc)
	}
	return cp
}
