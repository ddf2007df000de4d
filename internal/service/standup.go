package service

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"
	"github.com/crewchat-dev/crewchat/internal/logger"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

type StandupService interface {
	Start(ref domain.ContainerRef, actor domain.UserId, lengthSeconds int) (time.Time, error)
	Active(ref domain.ContainerRef, actor domain.UserId) (bool, *time.Time, error)
	Send(ref domain.ContainerRef, actor domain.UserId, line string) error
}

// Standup aggregates lines sent during a timed window into a single message,
// flushed through the normal delivery pipeline when the window expires. At
// most one session per container; a session only ends via its timer.
type Standup struct {
	scheduler  *Scheduler
	messages   *Message
	membership Membership
	clock      Clock

	mu       sync.Mutex
	sessions map[domain.ContainerRef]*standupSession
}

type standupSession struct {
	starter domain.UserId
	endAt   time.Time
	buffer  []standupLine
}

type standupLine struct {
	handle domain.Handle
	line   string
}

func NewStandup(scheduler *Scheduler, messages *Message, membership Membership, clock Clock) *Standup {
	return &Standup{
		scheduler:  scheduler,
		messages:   messages,
		membership: membership,
		clock:      clock,
		sessions:   make(map[domain.ContainerRef]*standupSession),
	}
}

// Start opens a session lasting lengthSeconds and schedules its flush.
func (s *Standup) Start(ref domain.ContainerRef, actor domain.UserId, lengthSeconds int) (time.Time, error) {
	if lengthSeconds < 0 {
		return time.Time{}, &internal_errors.ValidationError{Message: "Length must not be negative"}
	}
	if !s.membership.IsMember(ref, actor) {
		return time.Time{}, &internal_errors.NotFoundError{Message: fmt.Sprintf("%s does not exist", ref.Kind)}
	}

	endAt := s.clock.Now().Add(time.Duration(lengthSeconds) * time.Second)

	s.mu.Lock()
	if _, active := s.sessions[ref]; active {
		s.mu.Unlock()
		return time.Time{}, &internal_errors.ConflictError{Message: "Standup is already active"}
	}
	s.sessions[ref] = &standupSession{starter: actor, endAt: endAt}
	s.mu.Unlock()

	s.scheduler.Schedule(endAt, func() { s.flush(ref) })
	return endAt, nil
}

// Active reports whether a session is running and when it finishes.
func (s *Standup) Active(ref domain.ContainerRef, actor domain.UserId) (bool, *time.Time, error) {
	if !s.membership.IsMember(ref, actor) {
		return false, nil, &internal_errors.NotFoundError{Message: fmt.Sprintf("%s does not exist", ref.Kind)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, active := s.sessions[ref]
	if !active {
		return false, nil, nil
	}
	endAt := session.endAt
	return true, &endAt, nil
}

// Send buffers one line. The actor's handle is captured now, so a later
// handle change does not rewrite already-buffered lines.
func (s *Standup) Send(ref domain.ContainerRef, actor domain.UserId, line string) error {
	if utf8.RuneCountInString(line) > domain.MaxMsgLen {
		return &internal_errors.ValidationError{Message: "Line is too long"}
	}
	if !s.membership.IsMember(ref, actor) {
		return &internal_errors.ValidationError{Message: "Not a member of this container"}
	}
	handle, err := s.membership.HandleOf(actor)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, active := s.sessions[ref]
	if !active {
		return &internal_errors.ValidationError{Message: "No active standup"}
	}
	session.buffer = append(session.buffer, standupLine{handle: handle, line: line})
	return nil
}

// Reset drops every open session. Only the workspace clear path may call
// this; the sessions' flush tasks are dropped by the scheduler reset in the
// same clear.
func (s *Standup) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[domain.ContainerRef]*standupSession)
}

// flush runs on the scheduler timeline. An empty buffer produces no message;
// otherwise exactly one message, "<handle>: <line>\n" per entry in send
// order, goes through the full tagging pipeline with the starter as sender.
func (s *Standup) flush(ref domain.ContainerRef) {
	s.mu.Lock()
	session, ok := s.sessions[ref]
	delete(s.sessions, ref)
	s.mu.Unlock()

	if !ok || len(session.buffer) == 0 {
		return
	}

	var body strings.Builder
	for _, entry := range session.buffer {
		fmt.Fprintf(&body, "%s: %s\n", entry.handle, entry.line)
	}

	if _, err := s.messages.deliver(ref, session.starter, body.String()); err != nil {
		logger.Log.Warn("standup flush dropped",
			"component", "scheduler",
			"container", ref.String(),
			"error", err)
	}
}
