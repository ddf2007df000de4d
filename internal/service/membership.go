package service

import "github.com/crewchat-dev/crewchat/internal/domain"

// Membership is the oracle every engine service consults for live
// membership, roles and names. Nothing here is cached by consumers:
// the message, tagging and pin services all resolve through it on
// every call so container renames and membership changes take effect
// immediately.
type Membership interface {
	IsMember(ref domain.ContainerRef, uid domain.UserId) bool
	RoleOf(ref domain.ContainerRef, uid domain.UserId) (domain.Role, error)
	IsGlobalOwner(uid domain.UserId) bool
	HandleOf(uid domain.UserId) (domain.Handle, error)
	ResolveHandle(ref domain.ContainerRef, handle domain.Handle) (domain.UserId, bool)
	ContainerName(ref domain.ContainerRef) (domain.ContainerName, error)
	ContainersOf(uid domain.UserId) []domain.ContainerRef
}
