package domain

// Aliases are used instead of named types so storage and handlers can pass
// values to stdlib and driver code without conversion noise.
type (
	UserId      = int64
	MsgId       = int64
	ContainerId = int64

	Email         = string
	Password      = string
	Handle        = string
	MsgText       = string
	ContainerName = string
)

type Role int

const (
	RoleMember Role = iota
	RoleOwner
)
