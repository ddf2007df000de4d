package domain

import "fmt"

type ContainerKind string

const (
	KindChannel ContainerKind = "channel"
	KindDm      ContainerKind = "dm"
)

// ContainerRef addresses one message container. Channel and DM id spaces
// are independent, so the kind is part of the identity.
type ContainerRef struct {
	Kind ContainerKind
	Id   ContainerId
}

func ChannelRef(id ContainerId) ContainerRef {
	return ContainerRef{Kind: KindChannel, Id: id}
}

func DmRef(id ContainerId) ContainerRef {
	return ContainerRef{Kind: KindDm, Id: id}
}

func (r ContainerRef) IsChannel() bool {
	return r.Kind == KindChannel
}

func (r ContainerRef) String() string {
	return fmt.Sprintf("%s/%d", r.Kind, r.Id)
}

// ContainerListing pairs a ref with its current name, for sidebar-style
// listings of a user's containers.
type ContainerListing struct {
	Ref  ContainerRef
	Name ContainerName
}
