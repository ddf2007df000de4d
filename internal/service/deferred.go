package service

import (
	"fmt"
	"time"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"
	"github.com/crewchat-dev/crewchat/internal/logger"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

type DeferredService interface {
	SendLater(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText, fireAt time.Time) error
}

// Deferred handles sendlater/sendlaterdm. Validation happens synchronously
// at schedule time; the eventual fire is fire-and-forget through the normal
// delivery path, with id allocation reflecting actual fire order.
type Deferred struct {
	scheduler  *Scheduler
	messages   *Message
	membership Membership
	validator  MessageValidator
	clock      Clock
}

func NewDeferred(scheduler *Scheduler, messages *Message, membership Membership, validator MessageValidator, clock Clock) *Deferred {
	return &Deferred{scheduler, messages, membership, validator, clock}
}

// SendLater schedules a message creation and returns without creating it.
func (d *Deferred) SendLater(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText, fireAt time.Time) error {
	if err := d.validator.Text(body); err != nil {
		return err
	}
	if fireAt.Before(d.clock.Now()) {
		return &internal_errors.ValidationError{Message: "Time is in the past"}
	}
	if !d.membership.IsMember(ref, sender) {
		return &internal_errors.NotFoundError{Message: fmt.Sprintf("%s does not exist", ref.Kind)}
	}

	jobId := d.scheduler.Schedule(fireAt, func() {
		if _, err := d.messages.deliver(ref, sender, body); err != nil {
			// container gone since scheduling: drop the job
			logger.Log.Warn("deferred send dropped",
				"component", "scheduler",
				"container", ref.String(),
				"sender", sender,
				"error", err)
		}
	})
	logger.Log.Debug("deferred send scheduled",
		"component", "scheduler",
		"job_id", jobId,
		"container", ref.String(),
		"fire_at", fireAt)
	return nil
}
