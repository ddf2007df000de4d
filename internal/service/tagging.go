package service

import (
	"fmt"
	"regexp"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

// mention tokens: maximal @-prefixed alphanumeric runs
var mentionRe = regexp.MustCompile(`@([A-Za-z0-9]+)`)

// Tagging scans message bodies for @handle mentions. A token counts only
// when it matches, case-sensitively, the handle of a live member of the
// container; anything else is ignored without error.
type Tagging struct {
	membership Membership
	previewLen int
}

func NewTagging(membership Membership, previewLen int) *Tagging {
	return &Tagging{membership, previewLen}
}

// Notifications builds one tag notification per distinct mentioned member.
// A handle repeated in the body still yields a single notification for this
// evaluation; a later edit evaluates fresh and may notify the same person
// again.
func (t *Tagging) Notifications(ref domain.ContainerRef, sender domain.UserId, body domain.MsgText) []domain.Notification {
	matches := mentionRe.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	senderHandle, err := t.membership.HandleOf(sender)
	if err != nil {
		return nil
	}
	name, err := t.membership.ContainerName(ref)
	if err != nil {
		return nil
	}
	preview := []rune(body)
	if len(preview) > t.previewLen {
		preview = preview[:t.previewLen]
	}
	text := fmt.Sprintf("%s tagged you in %s: %s", senderHandle, name, string(preview))

	seen := make(map[domain.UserId]bool)
	var notifs []domain.Notification
	for _, match := range matches {
		uid, ok := t.membership.ResolveHandle(ref, match[1])
		if !ok || seen[uid] {
			continue
		}
		seen[uid] = true
		notifs = append(notifs, domain.Notification{
			Recipient: uid,
			Kind:      domain.NotificationTag,
			Container: ref,
			Text:      text,
		})
	}
	return notifs
}
