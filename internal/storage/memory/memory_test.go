package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

func newTestStorage() *Storage {
	return New(domain.NewSequence())
}

// registerUser is a fixture shortcut: base handle only, the storage dedupes.
func registerUser(t *testing.T, s *Storage, email, handle string) domain.User {
	t.Helper()
	user, err := s.SaveUser(domain.User{Email: email, Handle: handle})
	require.NoError(t, err)
	return user
}

func TestSaveUser(t *testing.T) {
	s := newTestStorage()

	first := registerUser(t, s, "alice@example.com", "alice")
	assert.Equal(t, domain.UserId(1), first.Id)
	assert.True(t, first.GlobalOwner, "first registered user is the global owner")

	second := registerUser(t, s, "bob@example.com", "bob")
	assert.Equal(t, domain.UserId(2), second.Id)
	assert.False(t, second.GlobalOwner)

	// Duplicate email, case-insensitively
	_, err := s.SaveUser(domain.User{Email: "Alice@Example.COM", Handle: "alice2"})
	assert.True(t, internal_errors.Is[*internal_errors.ValidationError](err), "got %v", err)
}

func TestSaveUserHandleSuffixes(t *testing.T) {
	s := newTestStorage()

	a := registerUser(t, s, "a@example.com", "alice")
	b := registerUser(t, s, "b@example.com", "alice")
	c := registerUser(t, s, "c@example.com", "alice")

	assert.Equal(t, "alice", a.Handle)
	assert.Equal(t, "alice0", b.Handle)
	assert.Equal(t, "alice1", c.Handle)
}

func TestUserLookups(t *testing.T) {
	s := newTestStorage()
	saved := registerUser(t, s, "alice@example.com", "alice")

	byId, err := s.User(saved.Id)
	require.NoError(t, err)
	assert.Equal(t, saved.Handle, byId.Handle)

	byEmail, err := s.UserByEmail("ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, saved.Id, byEmail.Id)

	_, err = s.User(99)
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err), "got %v", err)
	_, err = s.UserByEmail("nobody@example.com")
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err), "got %v", err)
}

func TestClear(t *testing.T) {
	s := newTestStorage()
	alice := registerUser(t, s, "alice@example.com", "alice")
	cid, err := s.CreateChannel(alice.Id, "general", true)
	require.NoError(t, err)
	_, err = s.CreateMessage(domain.ChannelRef(cid), alice.Id, "hello", nil)
	require.NoError(t, err)

	s.Clear()

	// Everything is gone and id spaces restart from 1
	_, err = s.User(alice.Id)
	assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err), "got %v", err)

	bob := registerUser(t, s, "bob@example.com", "bob")
	assert.Equal(t, domain.UserId(1), bob.Id)
	assert.True(t, bob.GlobalOwner, "first user after clear is the global owner")

	cid2, err := s.CreateChannel(bob.Id, "fresh", true)
	require.NoError(t, err)
	assert.Equal(t, domain.ContainerId(1), cid2)

	id, err := s.CreateMessage(domain.ChannelRef(cid2), bob.Id, "first again", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.MsgId(1), id)
}
