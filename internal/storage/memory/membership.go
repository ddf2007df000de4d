package memory

import (
	"sort"
	"strings"
	"time"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

// CreateChannel makes the creator the first owner and member and feeds the
// channels_joined / channels_exist series.
func (s *Storage) CreateChannel(creator domain.UserId, name domain.ContainerName, isPublic bool) (domain.ContainerId, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[creator]; !ok {
		return 0, &internal_errors.NotFoundError{Message: "User does not exist"}
	}

	now := time.Now().UTC()
	s.nextChannelId++
	ch := &channel{
		id:        s.nextChannelId,
		name:      name,
		isPublic:  isPublic,
		owners:    map[domain.UserId]bool{creator: true},
		members:   []domain.UserId{creator},
		createdAt: now,
	}
	s.channels[ch.id] = ch

	ref := domain.ChannelRef(ch.id)
	s.memberships[creator] = append(s.memberships[creator], ref)
	s.userStats[creator].channelsJoined.bump(1, now)
	s.workspace.channelsExist.bump(1, now)

	return ch.id, nil
}

// JoinChannel adds uid as a member. Private channels admit only the global
// owner without an invite.
func (s *Storage) JoinChannel(cid domain.ContainerId, uid domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.channels[cid]
	if !ok {
		return &internal_errors.NotFoundError{Message: "Channel does not exist"}
	}
	user, ok := s.users[uid]
	if !ok {
		return &internal_errors.NotFoundError{Message: "User does not exist"}
	}
	if s.isMember(domain.ChannelRef(cid), uid) {
		return &internal_errors.ConflictError{Message: "Already a member"}
	}
	if !ch.isPublic && !user.GlobalOwner {
		return &internal_errors.PermissionError{Message: "Channel is private"}
	}

	s.addChannelMember(ch, uid, time.Now().UTC())
	return nil
}

// InviteToChannel adds invitee on behalf of a member and logs the
// "added you to" notification in the same critical section.
func (s *Storage) InviteToChannel(cid domain.ContainerId, inviter, invitee domain.UserId, notif domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.channels[cid]
	if !ok {
		return &internal_errors.NotFoundError{Message: "Channel does not exist"}
	}
	if _, ok := s.users[invitee]; !ok {
		return &internal_errors.NotFoundError{Message: "User does not exist"}
	}
	if !s.isMember(domain.ChannelRef(cid), inviter) {
		return &internal_errors.NotFoundError{Message: "Channel does not exist"}
	}
	if s.isMember(domain.ChannelRef(cid), invitee) {
		return &internal_errors.ConflictError{Message: "Already a member"}
	}

	now := time.Now().UTC()
	s.addChannelMember(ch, invitee, now)
	s.appendNotifications([]domain.Notification{notif}, now)
	return nil
}

// LeaveChannel drops membership and ownership. The append-only
// channels_joined series is left as it was.
func (s *Storage) LeaveChannel(cid domain.ContainerId, uid domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.channels[cid]
	if !ok {
		return &internal_errors.NotFoundError{Message: "Channel does not exist"}
	}
	ref := domain.ChannelRef(cid)
	if !s.isMember(ref, uid) {
		return &internal_errors.NotFoundError{Message: "Channel does not exist"}
	}

	ch.members = removeId(ch.members, uid)
	delete(ch.owners, uid)
	s.memberships[uid] = removeRef(s.memberships[uid], ref)
	return nil
}

// CreateDm creates a DM owned by its creator. members must not contain the
// creator; they all become members at once and the invitees get their
// "added you to" notifications in the same critical section. The DM name is
// the comma-joined sorted handle list of everyone in it.
func (s *Storage) CreateDm(creator domain.UserId, members []domain.UserId, notifText func(name domain.ContainerName) string) (domain.ContainerId, domain.ContainerName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[creator]; !ok {
		return 0, "", &internal_errors.NotFoundError{Message: "User does not exist"}
	}
	seen := map[domain.UserId]bool{creator: true}
	for _, uid := range members {
		if _, ok := s.users[uid]; !ok {
			return 0, "", &internal_errors.NotFoundError{Message: "User does not exist"}
		}
		if seen[uid] {
			return 0, "", &internal_errors.ValidationError{Message: "Duplicate member"}
		}
		seen[uid] = true
	}

	all := append([]domain.UserId{creator}, members...)
	handles := make([]string, 0, len(all))
	for _, uid := range all {
		handles = append(handles, s.users[uid].Handle)
	}
	sort.Strings(handles)
	name := strings.Join(handles, ", ")

	now := time.Now().UTC()
	s.nextDmId++
	d := &dm{
		id:        s.nextDmId,
		name:      name,
		creator:   creator,
		members:   all,
		createdAt: now,
	}
	s.dms[d.id] = d

	ref := domain.DmRef(d.id)
	notifs := make([]domain.Notification, 0, len(members))
	for _, uid := range all {
		s.memberships[uid] = append(s.memberships[uid], ref)
		s.userStats[uid].dmsJoined.bump(1, now)
		if uid != creator {
			notifs = append(notifs, domain.Notification{
				Recipient: uid,
				Kind:      domain.NotificationAdded,
				Container: ref,
				Text:      notifText(name),
			})
		}
	}
	s.workspace.dmsExist.bump(1, now)
	s.appendNotifications(notifs, now)

	return d.id, name, nil
}

// addChannelMember must be called with the write lock held.
func (s *Storage) addChannelMember(ch *channel, uid domain.UserId, now time.Time) {
	ch.members = append(ch.members, uid)
	s.memberships[uid] = append(s.memberships[uid], domain.ChannelRef(ch.id))
	s.userStats[uid].channelsJoined.bump(1, now)
}

// Membership oracle. The engine services only see these through the
// service.Membership interface.

func (s *Storage) IsMember(ref domain.ContainerRef, uid domain.UserId) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isMember(ref, uid)
}

// RoleOf reports owner/member. For DMs the creator is the only owner.
func (s *Storage) RoleOf(ref domain.ContainerRef, uid domain.UserId) (domain.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isMember(ref, uid) {
		return domain.RoleMember, &internal_errors.NotFoundError{Message: "Not a member"}
	}
	if ref.IsChannel() {
		if s.channels[ref.Id].owners[uid] {
			return domain.RoleOwner, nil
		}
		return domain.RoleMember, nil
	}
	if s.dms[ref.Id].creator == uid {
		return domain.RoleOwner, nil
	}
	return domain.RoleMember, nil
}

func (s *Storage) IsGlobalOwner(uid domain.UserId) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[uid]
	return ok && user.GlobalOwner
}

func (s *Storage) HandleOf(uid domain.UserId) (domain.Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[uid]
	if !ok {
		return "", &internal_errors.NotFoundError{Message: "User does not exist"}
	}
	return user.Handle, nil
}

// ResolveHandle maps a handle to a user id only when that user is a live
// member of ref. Tagging leans on this for its membership filter.
func (s *Storage) ResolveHandle(ref domain.ContainerRef, handle domain.Handle) (domain.UserId, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uid, ok := s.usersByHandle[handle]
	if !ok || !s.isMember(ref, uid) {
		return 0, false
	}
	return uid, true
}

func (s *Storage) ContainerName(ref domain.ContainerRef) (domain.ContainerName, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ref.IsChannel() {
		if ch, ok := s.channels[ref.Id]; ok {
			return ch.name, nil
		}
	} else if d, ok := s.dms[ref.Id]; ok {
		return d.name, nil
	}
	return "", &internal_errors.NotFoundError{Message: "Container does not exist"}
}

// ContainersOf returns uid's containers in join/creation order.
func (s *Storage) ContainersOf(uid domain.UserId) []domain.ContainerRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ContainerRef(nil), s.memberships[uid]...)
}

func removeId(ids []domain.UserId, uid domain.UserId) []domain.UserId {
	out := ids[:0]
	for _, id := range ids {
		if id != uid {
			out = append(out, id)
		}
	}
	return out
}

func removeRef(refs []domain.ContainerRef, ref domain.ContainerRef) []domain.ContainerRef {
	out := refs[:0]
	for _, r := range refs {
		if r != ref {
			out = append(out, r)
		}
	}
	return out
}
