package memory

import (
	"fmt"
	"strings"
	"time"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

// SaveUser registers a user. user.Handle is treated as the desired base
// handle: collisions get a numeric suffix, resolved under the write lock so
// two concurrent registrations can never end up with the same handle.
// The first registered user becomes the global owner.
func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, ok := s.usersByEmail[email]; ok {
		return domain.User{}, &internal_errors.ValidationError{Message: "Email is already used"}
	}

	handle := user.Handle
	for suffix := 0; ; suffix++ {
		if _, taken := s.usersByHandle[handle]; !taken {
			break
		}
		handle = fmt.Sprintf("%s%d", user.Handle, suffix)
	}

	s.nextUserId++
	now := time.Now().UTC()

	user.Id = s.nextUserId
	user.Email = email
	user.Handle = handle
	user.GlobalOwner = len(s.users) == 0
	user.RegisteredAt = now

	s.users[user.Id] = &user
	s.usersByEmail[email] = user.Id
	s.usersByHandle[handle] = user.Id
	s.userStats[user.Id] = newUserSeries(now)

	return user, nil
}

func (s *Storage) User(uid domain.UserId) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[uid]
	if !ok {
		return domain.User{}, &internal_errors.NotFoundError{Message: "User does not exist"}
	}
	return *user, nil
}

func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uid, ok := s.usersByEmail[strings.ToLower(email)]
	if !ok {
		return domain.User{}, &internal_errors.NotFoundError{Message: "User does not exist"}
	}
	return *s.users[uid], nil
}
