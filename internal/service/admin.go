package service

import (
	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"
	"github.com/crewchat-dev/crewchat/internal/logger"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

type AdminService interface {
	Clear(actor domain.UserId) error
}

// Admin hosts the workspace reset collaborator: one atomic wipe of storage,
// the deferred task queue and any open standup sessions. Container ids
// restart from 1 after a clear, so session state keyed by ref must go with
// the queue or a recreated container would inherit it.
type Admin struct {
	storage    AdminStorage
	scheduler  *Scheduler
	standup    *Standup
	membership Membership
}

type AdminStorage interface {
	Clear()
}

func NewAdmin(storage AdminStorage, scheduler *Scheduler, standup *Standup, membership Membership) *Admin {
	return &Admin{storage, scheduler, standup, membership}
}

func (a *Admin) Clear(actor domain.UserId) error {
	if !a.membership.IsGlobalOwner(actor) {
		return &internal_errors.PermissionError{Message: "Global owner rights required"}
	}
	a.scheduler.Reset()
	a.standup.Reset()
	a.storage.Clear()
	logger.Log.Info("workspace cleared", "actor", actor)
	return nil
}
