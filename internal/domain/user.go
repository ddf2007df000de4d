package domain

import "time"

type User struct {
	Id           UserId
	Email        Email
	PassHash     []byte
	NameFirst    string
	NameLast     string
	Handle       Handle
	GlobalOwner  bool
	RegisteredAt time.Time
}

type Credentials struct {
	Email    Email
	Password Password
}
