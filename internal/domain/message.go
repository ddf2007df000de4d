package domain

import "time"

const MaxMsgLen = 1000

type ReactKind = string

// Supported reaction kinds. Anything else fails validation.
var reactKinds = map[ReactKind]bool{
	"thumbs_up": true,
	"heart":     true,
	"smile":     true,
	"fire":      true,
}

func ValidReactKind(kind ReactKind) bool {
	return reactKinds[kind]
}

// Reaction holds every reactor of one kind on one message.
// Reactors keeps insertion order and never contains duplicates.
type Reaction struct {
	Kind     ReactKind
	Reactors []UserId
}

func (r *Reaction) Has(uid UserId) bool {
	for _, id := range r.Reactors {
		if id == uid {
			return true
		}
	}
	return false
}

type Message struct {
	Id        MsgId
	Container ContainerRef
	Sender    UserId
	Body      MsgText
	CreatedAt time.Time
	Removed   bool
	Pinned    bool
	Reacts    []*Reaction
}

// React returns the reaction bucket for kind, or nil.
func (m *Message) React(kind ReactKind) *Reaction {
	for _, r := range m.Reacts {
		if r.Kind == kind {
			return r
		}
	}
	return nil
}
