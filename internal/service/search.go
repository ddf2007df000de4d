package service

import (
	"github.com/crewchat-dev/crewchat/internal/domain"
)

type SearchService interface {
	Search(actor domain.UserId, query string) ([]domain.Message, error)
}

// Search is a read-only consumer over the message store. Grouping and
// ordering live in the storage query so one snapshot covers the whole walk:
// channels before DMs, each in the actor's join/creation order,
// most-recent-first within a container.
type Search struct {
	storage   SearchStorage
	validator QueryValidator
}

type SearchStorage interface {
	Search(uid domain.UserId, query string) ([]domain.Message, error)
}

type QueryValidator interface {
	Query(query string) error
}

func NewSearch(storage SearchStorage, validator QueryValidator) *Search {
	return &Search{storage, validator}
}

func (s *Search) Search(actor domain.UserId, query string) ([]domain.Message, error) {
	if err := s.validator.Query(query); err != nil {
		return nil, err
	}
	msgs, err := s.storage.Search(actor, query)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}
