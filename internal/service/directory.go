package service

import (
	"fmt"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

type DirectoryService interface {
	CreateChannel(creator domain.UserId, name domain.ContainerName, isPublic bool) (domain.ContainerId, error)
	JoinChannel(cid domain.ContainerId, uid domain.UserId) error
	InviteToChannel(cid domain.ContainerId, inviter, invitee domain.UserId) error
	LeaveChannel(cid domain.ContainerId, uid domain.UserId) error
	CreateDm(creator domain.UserId, members []domain.UserId) (domain.ContainerId, domain.ContainerName, error)
	Containers(uid domain.UserId) []domain.ContainerListing
}

// Directory is the membership collaborator: channel/DM creation and
// membership changes. It feeds the counter series through storage and emits
// "added you to X" notifications through the notification log interface.
type Directory struct {
	storage    DirectoryStorage
	membership Membership
	validator  NameValidator
}

type DirectoryStorage interface {
	CreateChannel(creator domain.UserId, name domain.ContainerName, isPublic bool) (domain.ContainerId, error)
	JoinChannel(cid domain.ContainerId, uid domain.UserId) error
	InviteToChannel(cid domain.ContainerId, inviter, invitee domain.UserId, notif domain.Notification) error
	LeaveChannel(cid domain.ContainerId, uid domain.UserId) error
	CreateDm(creator domain.UserId, members []domain.UserId, notifText func(name domain.ContainerName) string) (domain.ContainerId, domain.ContainerName, error)
}

type NameValidator interface {
	Name(name string) error
}

func NewDirectory(storage DirectoryStorage, membership Membership, validator NameValidator) *Directory {
	return &Directory{storage, membership, validator}
}

func (d *Directory) CreateChannel(creator domain.UserId, name domain.ContainerName, isPublic bool) (domain.ContainerId, error) {
	if err := d.validator.Name(name); err != nil {
		return 0, err
	}
	return d.storage.CreateChannel(creator, name, isPublic)
}

func (d *Directory) JoinChannel(cid domain.ContainerId, uid domain.UserId) error {
	return d.storage.JoinChannel(cid, uid)
}

// InviteToChannel adds invitee and logs the membership-add notification in
// the same storage transaction.
func (d *Directory) InviteToChannel(cid domain.ContainerId, inviter, invitee domain.UserId) error {
	handle, err := d.membership.HandleOf(inviter)
	if err != nil {
		return err
	}
	name, err := d.membership.ContainerName(domain.ChannelRef(cid))
	if err != nil {
		return err
	}
	notif := domain.Notification{
		Recipient: invitee,
		Kind:      domain.NotificationAdded,
		Container: domain.ChannelRef(cid),
		Text:      fmt.Sprintf("%s added you to %s", handle, name),
	}
	return d.storage.InviteToChannel(cid, inviter, invitee, notif)
}

func (d *Directory) LeaveChannel(cid domain.ContainerId, uid domain.UserId) error {
	return d.storage.LeaveChannel(cid, uid)
}

// CreateDm builds the DM and the invitees' notifications together. The DM
// name is derived from the member handles inside the storage transaction, so
// the notification text is rendered via callback once the name is known.
func (d *Directory) CreateDm(creator domain.UserId, members []domain.UserId) (domain.ContainerId, domain.ContainerName, error) {
	handle, err := d.membership.HandleOf(creator)
	if err != nil {
		return 0, "", err
	}
	return d.storage.CreateDm(creator, members, func(name domain.ContainerName) string {
		return fmt.Sprintf("%s added you to %s", handle, name)
	})
}

// Containers lists uid's channels and DMs in join order with their current
// names. A container the user was removed from mid-iteration is skipped.
func (d *Directory) Containers(uid domain.UserId) []domain.ContainerListing {
	refs := d.membership.ContainersOf(uid)
	listings := make([]domain.ContainerListing, 0, len(refs))
	for _, ref := range refs {
		name, err := d.membership.ContainerName(ref)
		if err != nil {
			continue
		}
		listings = append(listings, domain.ContainerListing{Ref: ref, Name: name})
	}
	return listings
}
